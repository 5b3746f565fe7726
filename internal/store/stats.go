package store

import (
	"context"
	"os"

	"github.com/rcliao/inkwell/internal/richtext"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	TotalNotes  int             `json:"total_notes"`
	Favorites   int             `json:"favorites"`
	Tags        int             `json:"tags"`
	Categories  []CategoryStats `json:"categories"`
	// Checklist sums the checkbox lines over every note.
	Checklist richtext.Checklist `json:"checklist"`
}

// CategoryStats holds per-category counts.
type CategoryStats struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&st.TotalNotes)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE favorite = 1`).Scan(&st.Favorites)

	if tags, err := s.Tags(ctx); err == nil {
		st.Tags = len(tags)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) AS cnt
		FROM notes
		GROUP BY category ORDER BY cnt DESC, category`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CategoryStats
		rows.Scan(&c.Category, &c.Count)
		st.Categories = append(st.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	st.Checklist, err = s.checklistTotals(ctx)
	return st, err
}

func (s *SQLiteStore) checklistTotals(ctx context.Context) (richtext.Checklist, error) {
	var total richtext.Checklist
	rows, err := s.db.QueryContext(ctx,
		`SELECT content FROM notes WHERE content LIKE ? OR content LIKE ?`,
		"%"+richtext.UncheckedMarker+"%", "%"+richtext.CheckedMarker+"%")
	if err != nil {
		return total, err
	}
	defer rows.Close()

	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return total, err
		}
		c := richtext.CountChecklist(richtext.New(content, richtext.Attrs{}))
		total.Total += c.Total
		total.Checked += c.Checked
	}
	return total, rows.Err()
}
