package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/akave-ai/eventcap/internal/clock"
	"github.com/akave-ai/eventcap/internal/config"
	"github.com/akave-ai/eventcap/internal/logger"
	"github.com/akave-ai/eventcap/internal/server"
	"github.com/akave-ai/eventcap/internal/store"
)

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// .env is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		boot.Warn().Err(err).Msg("could not read .env")
	}

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("could not load config")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format == "console")

	stamper, err := clock.NewStamper(cfg.Timestamp.Location)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up timestamps")
	}

	srv, err := server.New(cfg, store.New(), stamper, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
