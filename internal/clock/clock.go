// Package clock produces the display timestamps attached to captured
// requests.
package clock

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultLocation is used when no zone is configured.
const DefaultLocation = "Asia/Kolkata"

// Source hands out one timestamp string per captured request.
type Source interface {
	Stamp() string
}

// Stamper formats the current time as HH:MM:SS:mmm in a fixed zone.
type Stamper struct {
	loc *time.Location
	now func() time.Time
}

// NewStamper loads the named zone. An empty name selects DefaultLocation.
func NewStamper(zone string) (*Stamper, error) {
	if zone == "" {
		zone = DefaultLocation
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", zone, err)
	}
	return &Stamper{loc: loc, now: time.Now}, nil
}

// Stamp returns the current time in the stamper's zone.
func (s *Stamper) Stamp() string {
	return Format(s.now().In(s.loc))
}

// Format renders t as HH:MM:SS:mmm.
func Format(t time.Time) string {
	return fmt.Sprintf("%s:%03d", t.Format("15:04:05"), t.Nanosecond()/int(time.Millisecond))
}
