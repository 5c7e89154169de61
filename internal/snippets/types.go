// Package snippets implements the code snippet manager: tagged, titled
// pieces of code with substring search and highlighted rendering.
package snippets

import "time"

// Snippet is one saved piece of code. Tags is a comma-separated list kept
// as entered by the user.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language,omitempty"`
	Code      string    `json:"code"`
	Tags      string    `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
