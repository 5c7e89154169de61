package tasks

import "time"

// Task represents a single board item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category"`
	Position  int       `json:"position"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilter controls which tasks to return.
type ListFilter struct {
	Category string
	Done     *bool
	Limit    int
}
