package store

import "github.com/akave-ai/eventcap/internal/model"

// NewestFirst returns entries in reverse order as a new slice.
func NewestFirst(entries []model.LogEntry) []model.LogEntry {
	out := make([]model.LogEntry, len(entries))
	for i, j := 0, len(entries)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = entries[j]
	}
	return out
}
