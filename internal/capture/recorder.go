// Package capture turns inbound requests into log entries.
package capture

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akave-ai/eventcap/internal/clock"
	"github.com/akave-ai/eventcap/internal/model"
)

// ClearPath is the endpoint that empties the log.
const ClearPath = "/clear"

// Appender receives finished entries.
type Appender interface {
	Append(model.LogEntry)
	Len() int
}

// Receipt acknowledges a capture. Stored is false for suppressed paths.
type Receipt struct {
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
	Stored   bool   `json:"-"`
}

// Recorder builds log entries and appends them to a store.
type Recorder struct {
	store  Appender
	clock  clock.Source
	logger zerolog.Logger
	newID  func() string
}

// NewRecorder returns a Recorder writing into store.
func NewRecorder(store Appender, src clock.Source, logger zerolog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		clock:  src,
		logger: logger.With().Str("component", "capture").Logger(),
		newID:  uuid.NewString,
	}
}

// Normalize returns path with exactly one leading slash.
func Normalize(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

// Suppressed reports whether requests to path are kept out of the log: the
// viewer root and the clear action.
func Suppressed(path string) bool {
	switch Normalize(path) {
	case "/", ClearPath:
		return true
	}
	return false
}

// CarriesBody reports whether the method's body is decoded as JSON.
func CarriesBody(method string) bool {
	switch strings.ToUpper(method) {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// Capture records one request. body is only read for POST, PUT and PATCH.
// Malformed or missing JSON is stored as a parse-error marker; Capture itself
// never fails.
func (r *Recorder) Capture(method, path string, body io.Reader) Receipt {
	receipt := Receipt{
		Endpoint: Normalize(path),
		Method:   strings.ToUpper(method),
	}
	if Suppressed(path) {
		return receipt
	}

	var data any
	if CarriesBody(receipt.Method) {
		v, err := ParseBody(body)
		if err != nil {
			r.logger.Info().Err(err).
				Str("endpoint", receipt.Endpoint).
				Str("method", receipt.Method).
				Msg("body is not valid JSON")
			data = model.ParseErrorBody(err.Error())
		} else {
			data = v
		}
	}

	r.store.Append(model.LogEntry{
		ID:        r.newID(),
		Timestamp: r.clock.Stamp(),
		Endpoint:  receipt.Endpoint,
		Method:    receipt.Method,
		Body:      data,
	})
	receipt.Stored = true

	if ev := r.logger.Debug(); ev.Enabled() {
		ev.Str("endpoint", receipt.Endpoint).
			Str("method", receipt.Method).
			Int("entries", r.store.Len()).
			Msg("request captured")
	}
	return receipt
}
