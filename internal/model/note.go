// Package model defines the core note data types.
package model

import "time"

// Note is a single note. Content is the plain-text projection of the styled
// document held in Styled.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Styled    []byte    `json:"-"`
	Tags      []string  `json:"tags,omitempty"`
	Category  string    `json:"category"`
	Favorite  bool      `json:"favorite"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sidebar selectors that are not real categories.
const (
	AllNotes  = "All Notes"
	Favorites = "Favorites"
)

const (
	DefaultCategory = "Uncategorized"
	DefaultColor    = "blue"
)

// ValidColors are the allowed color tags.
var ValidColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"red":    true,
	"yellow": true,
	"purple": true,
}
