// Package calendar implements the week/month planner: timed events on
// specific days, queried by date range.
package calendar

import "time"

// Event is a scheduled block on a single day. Times are stored as minutes
// from midnight so the planner stays timezone-agnostic; both nil means an
// untimed (all-day) event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	Color       string    `json:"color,omitempty"`
	Day         string    `json:"day"` // YYYY-MM-DD
	StartMinute *int      `json:"start_minute,omitempty"`
	EndMinute   *int      `json:"end_minute,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Untimed reports whether the event is an all-day entry without times.
func (e Event) Untimed() bool {
	return e.StartMinute == nil && e.EndMinute == nil
}

// DayFormat is the wire format for event days.
const DayFormat = "2006-01-02"
