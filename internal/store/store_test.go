package store

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/akave-ai/eventcap/internal/model"
)

func entry(endpoint string, body any) model.LogEntry {
	return model.LogEntry{
		ID:        "id" + endpoint,
		Timestamp: "10:00:00:000",
		Endpoint:  endpoint,
		Method:    "POST",
		Body:      body,
	}
}

func endpoints(entries []model.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Endpoint)
	}
	return out
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := New()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(entry(fmt.Sprintf("/hook/%d", i), map[string]any{"i": i}))
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	if len(snap) != n {
		t.Fatalf("expected %d entries, got %d", n, len(snap))
	}
	seen := make(map[string]bool, n)
	for _, e := range snap {
		if seen[e.Endpoint] {
			t.Fatalf("duplicate entry %s", e.Endpoint)
		}
		seen[e.Endpoint] = true
		want := entry(e.Endpoint, nil)
		if e.ID != want.ID || e.Timestamp != want.Timestamp || e.Method != want.Method {
			t.Fatalf("entry %s was modified: %+v", e.Endpoint, e)
		}
	}
	if s.Len() != n {
		t.Fatalf("expected Len %d, got %d", n, s.Len())
	}
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Append(entry("/a", nil))
	s.Append(entry("/b", nil))

	s.Clear()

	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("expected empty snapshot after clear, got %v", endpoints(got))
	}
	if got := s.Events(); len(got) != 0 {
		t.Fatalf("expected no events after clear, got %v", got)
	}

	s.Append(entry("/c", nil))
	if got := endpoints(s.Snapshot()); !reflect.DeepEqual(got, []string{"/c"}) {
		t.Fatalf("expected [/c] after clear+append, got %v", got)
	}
}

func TestStore_ClearRacingAppends(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Append(entry(fmt.Sprintf("/%d", i), nil))
		}(i)
		go func() {
			defer wg.Done()
			s.Clear()
		}()
	}
	wg.Wait()

	s.Clear()
	if n := len(s.Snapshot()); n != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", n)
	}
}

func TestStore_SnapshotOrder(t *testing.T) {
	s := New()
	s.Append(entry("/a", nil))
	s.Append(entry("/b", nil))
	s.Append(entry("/c", nil))

	if got := endpoints(s.Snapshot()); !reflect.DeepEqual(got, []string{"/c", "/b", "/a"}) {
		t.Fatalf("snapshot order: got %v", got)
	}
	if got := endpoints(s.Entries()); !reflect.DeepEqual(got, []string{"/a", "/b", "/c"}) {
		t.Fatalf("entries order: got %v", got)
	}
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := New()
	s.Append(entry("/a", nil))

	snap := s.Snapshot()
	snap[0].Endpoint = "/changed"
	s.Append(entry("/b", nil))

	if got := endpoints(s.Entries()); !reflect.DeepEqual(got, []string{"/a", "/b"}) {
		t.Fatalf("store observed caller mutation: %v", got)
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot grew with the store: %d", len(snap))
	}
}

func TestStore_SnapshotIdempotent(t *testing.T) {
	s := New()
	s.Append(entry("/a", map[string]any{"x": "1"}))
	s.Append(entry("/b", nil))

	first := s.Snapshot()
	second := s.Snapshot()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("snapshots differ:\n%v\n%v", first, second)
	}
}

func TestNewestFirst(t *testing.T) {
	in := []model.LogEntry{entry("/a", nil), entry("/b", nil), entry("/c", nil)}

	got := NewestFirst(in)

	if !reflect.DeepEqual(endpoints(got), []string{"/c", "/b", "/a"}) {
		t.Fatalf("got %v", endpoints(got))
	}
	if !reflect.DeepEqual(endpoints(in), []string{"/a", "/b", "/c"}) {
		t.Fatalf("input was reordered: %v", endpoints(in))
	}
	if got := NewestFirst(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
