package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/akave-ai/eventcap/internal/clock"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EVENTCAP_"

type Config struct {
	Primary   Primary         `koanf:"primary" validate:"required"`
	Server    ServerConfig    `koanf:"server" validate:"required"`
	Timestamp TimestampConfig `koanf:"timestamp" validate:"required"`
	Log       LogConfig       `koanf:"log" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1,dive,required"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type TimestampConfig struct {
	Location string `koanf:"location" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "18001",
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       15 * time.Second,
			IdleTimeout:        60 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Timestamp: TimestampConfig{Location: clock.DefaultLocation},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads PORT and EVENTCAP_* variables over the defaults and validates
// the result. EVENTCAP_SERVER_PORT wins over PORT.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("PORT", ".", func(key, value string) (string, interface{}) {
		if key != "PORT" || value == "" {
			return "", nil
		}
		return "server.port", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load PORT: %w", err)
	}

	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = envKey(key)
		if key == "server.cors_allowed_origins" {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and that the timestamp zone can be loaded.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.Timestamp.Location); err != nil {
		return fmt.Errorf("invalid config: timestamp location: %w", err)
	}
	return nil
}

// envKey maps EVENTCAP_SERVER_READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
