package clock

import (
	"testing"
	"time"
)

func TestStamper_FormatsInZone(t *testing.T) {
	s, err := NewStamper("")
	if err != nil {
		t.Fatalf("new stamper: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2024, 1, 15, 6, 30, 5, 7*int(time.Millisecond)+999, time.UTC)
	}

	// 06:30 UTC is 12:00 in Asia/Kolkata.
	if got, want := s.Stamp(), "12:00:05:007"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNewStamper_UnknownZone(t *testing.T) {
	if _, err := NewStamper("Not/AZone"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 1, 1, 23, 59, 59, 123456789, time.UTC)
	if got := Format(ts); got != "23:59:59:123" {
		t.Fatalf("got %q", got)
	}
}
