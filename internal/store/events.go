package store

import (
	"github.com/mitchellh/copystructure"

	"github.com/akave-ai/eventcap/internal/model"
)

// Provenance keys attached to every flattened event.
const (
	ReceivedAtKey     = "_received_at"
	SourceEndpointKey = "_source_endpoint"
)

// Event is one element of a captured body's "events" array.
type Event map[string]any

// Flatten collects the elements of every `{"events": [...]}` body in entries,
// in entry order and then array order. Each event is a deep copy of the
// stored element with the entry's timestamp and endpoint attached; stored
// bodies are never touched. Elements that are not JSON objects are skipped.
func Flatten(entries []model.LogEntry) []Event {
	out := make([]Event, 0)
	for _, entry := range entries {
		payload, ok := entry.Body.(map[string]any)
		if !ok {
			continue
		}
		events, ok := payload["events"].([]any)
		if !ok {
			continue
		}
		for _, ev := range events {
			obj, ok := ev.(map[string]any)
			if !ok {
				continue
			}
			cp, err := copystructure.Copy(obj)
			if err != nil {
				continue
			}
			event := Event(cp.(map[string]any))
			event[ReceivedAtKey] = entry.Timestamp
			event[SourceEndpointKey] = entry.Endpoint
			out = append(out, event)
		}
	}
	return out
}

// Events flattens the current contents of the store.
func (s *Store) Events() []Event {
	return Flatten(s.Entries())
}
