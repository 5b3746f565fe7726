// Package store provides the note storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/inkwell/internal/model"
)

// ErrNotFound is returned when no note has the requested ID.
var ErrNotFound = errors.New("note not found")

// CreateParams holds parameters for creating a note.
type CreateParams struct {
	Title    string
	Content  string
	Styled   []byte
	Tags     []string
	Category string
	Favorite bool
	Color    string
}

// UpdateParams holds the metadata fields to change. Nil fields are left as is.
type UpdateParams struct {
	ID       string
	Title    *string
	Tags     *[]string
	Category *string
	Favorite *bool
	Color    *string
}

// ListParams holds the filters of the note list.
type ListParams struct {
	// Category is a category name, model.AllNotes (or empty) for every note,
	// or model.Favorites for favorites only.
	Category string
	Tag      string
	// Query is matched case-insensitively against title, content and tags.
	Query string
	Limit int
}

// Store defines the note storage interface.
type Store interface {
	// Create stores a new note and returns it.
	Create(ctx context.Context, p CreateParams) (*model.Note, error)

	// Get retrieves a note by ID.
	Get(ctx context.Context, id string) (*model.Note, error)

	// Update changes note metadata and bumps UpdatedAt.
	Update(ctx context.Context, p UpdateParams) (*model.Note, error)

	// SaveContent writes both projections of the note body.
	SaveContent(ctx context.Context, id, content string, styled []byte) (*model.Note, error)

	// Delete permanently removes a note.
	Delete(ctx context.Context, id string) error

	// List returns notes matching the filters, most recently updated first.
	List(ctx context.Context, p ListParams) ([]model.Note, error)

	// Close closes the store.
	Close() error
}
