package notes

import "time"

// Note is a sticky note on the board. Unlike mind-map nodes, its position
// is user-dragged state and is persisted.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
