// Package timezone implements the timezone converter: translate a
// wall-clock time from one IANA zone into a saved set of target zones.
package timezone

import (
	"context"
	"fmt"
	"time"

	"github.com/deskhub/deskhub/internal/record"
)

// DefaultZones is the starter zone list shown before the user saves one.
var DefaultZones = []string{
	"UTC",
	"America/New_York",
	"Europe/London",
	"Asia/Tokyo",
}

// Conversion is one target-zone result. Error is set inline when the
// zone name does not resolve, leaving the other results intact.
type Conversion struct {
	Zone     string `json:"zone"`
	Time     string `json:"time,omitempty"`   // RFC3339 in the target zone
	Clock    string `json:"clock,omitempty"`  // 15:04, for the at-a-glance row
	Offset   string `json:"offset,omitempty"` // e.g. -05:00
	DayDelta int    `json:"day_delta"`        // -1, 0 or +1 relative to the source day
	Error    string `json:"error,omitempty"`
}

// Store keeps the saved zone list as a whole-document record.
type Store struct {
	records *record.Store
}

func NewStore(records *record.Store) *Store {
	return &Store{records: records}
}

// Zones returns the saved zone list, falling back to the default set.
func (s *Store) Zones(ctx context.Context) ([]string, error) {
	var zones []string
	_, err := s.records.Load(ctx, record.KeyTimezones, &zones, func() {
		zones = append([]string(nil), DefaultZones...)
	})
	if err != nil {
		return nil, fmt.Errorf("loading zone list: %w", err)
	}
	if len(zones) == 0 {
		zones = append([]string(nil), DefaultZones...)
	}
	return zones, nil
}

// SaveZones replaces the saved zone list. Unknown zone names are rejected
// so a bad save cannot poison later conversions.
func (s *Store) SaveZones(ctx context.Context, zones []string) error {
	if len(zones) == 0 {
		return fmt.Errorf("zone list cannot be empty")
	}
	for _, z := range zones {
		if _, err := time.LoadLocation(z); err != nil {
			return fmt.Errorf("unknown zone %q", z)
		}
	}
	return s.records.Save(ctx, record.KeyTimezones, zones)
}

// Convert interprets clock ("2006-01-02T15:04") as wall time in fromZone
// and renders it in each target zone. Per-zone failures are inline.
func Convert(clock, fromZone string, targets []string) ([]Conversion, error) {
	from, err := time.LoadLocation(fromZone)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q", fromZone)
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", clock, from)
	if err != nil {
		return nil, fmt.Errorf("time must be YYYY-MM-DDTHH:MM: %w", err)
	}

	results := make([]Conversion, 0, len(targets))
	for _, zone := range targets {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			results = append(results, Conversion{Zone: zone, Error: "unknown zone"})
			continue
		}

		local := t.In(loc)
		results = append(results, Conversion{
			Zone:     zone,
			Time:     local.Format(time.RFC3339),
			Clock:    local.Format("15:04"),
			Offset:   local.Format("-07:00"),
			DayDelta: dayDelta(t, local),
		})
	}
	return results, nil
}

// dayDelta reports whether the converted wall date falls on the previous,
// same or next day as the source wall date.
func dayDelta(src, dst time.Time) int {
	srcDay := time.Date(src.Year(), src.Month(), src.Day(), 0, 0, 0, 0, time.UTC)
	dstDay := time.Date(dst.Year(), dst.Month(), dst.Day(), 0, 0, 0, 0, time.UTC)
	return int(dstDay.Sub(srcDay).Hours() / 24)
}
