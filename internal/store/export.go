package store

import (
	"context"

	"github.com/rcliao/inkwell/internal/model"
)

// ExportAll returns every note, oldest first.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, styled, tags, category, favorite, color, created_at, updated_at
		 FROM notes ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Import stores notes from an export package in a single transaction. Every
// note gets a fresh ID; timestamps are kept when present. Styled content is
// not part of the package, so imported notes start from their plain text.
func (s *SQLiteStore) Import(ctx context.Context, notes []model.Note) ([]model.Note, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := s.now()
	imported := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		n.ID = s.newID()
		n.Styled = nil
		n.Tags = normalizeTags(n.Tags)
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = n.CreatedAt
		}
		if !model.ValidColors[n.Color] {
			n.Color = model.DefaultColor
		}
		if err := s.insert(ctx, tx, &n); err != nil {
			return nil, err
		}
		imported = append(imported, n)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return imported, nil
}
