// Package activity records a lightweight trail of mutations across the
// dashboard tools, shown on the home screen as recent activity.
package activity

import "time"

// Entry is one recorded action.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Tool      string    `json:"tool"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entity_id,omitempty"`
	Summary   string    `json:"summary"`
}

// ListFilter controls which entries to return.
type ListFilter struct {
	Tool  string
	Limit int
}
