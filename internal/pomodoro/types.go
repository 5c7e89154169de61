package pomodoro

import "time"

// Kind classifies a timer session.
type Kind string

const (
	KindWork       Kind = "work"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// Valid reports whether k is a known session kind.
func (k Kind) Valid() bool {
	switch k {
	case KindWork, KindShortBreak, KindLongBreak:
		return true
	}
	return false
}

// Settings are the timer durations, persisted as one whole-document record.
type Settings struct {
	WorkMinutes       int `json:"work_minutes"`
	ShortBreakMinutes int `json:"short_break_minutes"`
	LongBreakMinutes  int `json:"long_break_minutes"`
	LongBreakInterval int `json:"long_break_interval"`
}

// Session is one completed (or abandoned) timer run.
type Session struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	StartedAt   time.Time `json:"started_at"`
	DurationSec int       `json:"duration_sec"`
	Completed   bool      `json:"completed"`
}

// DayStats summarizes a day of pomodoro sessions.
type DayStats struct {
	Day           string `json:"day"`
	WorkSessions  int    `json:"work_sessions"`
	FocusSeconds  int    `json:"focus_seconds"`
	BreakSessions int    `json:"break_sessions"`
}
