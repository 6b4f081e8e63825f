package model

// ParseErrorMessage is the `_error` value recorded when a body-bearing
// request does not carry valid JSON.
const ParseErrorMessage = "Invalid or no JSON body"

// LogEntry is one captured request. Entries are built completely before they
// reach the store and are never modified afterwards.
type LogEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // display string, see clock.Stamper
	Endpoint  string `json:"endpoint"`  // always starts with "/"
	Method    string `json:"method"`
	Body      any    `json:"json"` // decoded JSON, parse-error marker, or nil
}

// ParseErrorBody returns the marker stored in place of a body that could not
// be decoded.
func ParseErrorBody(detail string) map[string]any {
	return map[string]any{
		"_error": ParseErrorMessage,
		"detail": detail,
	}
}
