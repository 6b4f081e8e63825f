package capture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errEmptyBody = errors.New("empty body")

// ParseError reports why a request body could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// ParseBody reads r fully and decodes exactly one JSON value from it.
// Numbers are kept as json.Number so they round-trip unchanged.
func ParseBody(r io.Reader) (any, error) {
	if r == nil {
		return nil, &ParseError{Err: errEmptyBody}
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("read body: %w", err)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &ParseError{Err: errEmptyBody}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("unexpected data after top-level value")}
	}
	return v, nil
}
