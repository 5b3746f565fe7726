package store

import (
	"context"
	"sort"
	"strings"

	"github.com/rcliao/inkwell/internal/model"
)

// MatchQuery reports whether the note's title, content or any tag contains
// query, ignoring case. An empty query matches everything.
func MatchQuery(n model.Note, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasTag(n model.Note, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Categories returns every category in use plus the AllNotes and Favorites
// selectors, sorted.
func (s *SQLiteStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := map[string]bool{model.AllNotes: true, model.Favorites: true}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		set[c] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sortedKeys(set), nil
}

// Tags returns the sorted union of all note tags.
func (s *SQLiteStore) Tags(ctx context.Context) ([]string, error) {
	notes, err := s.List(ctx, ListParams{})
	if err != nil {
		return nil, err
	}
	set := map[string]bool{}
	for _, n := range notes {
		for _, t := range n.Tags {
			set[t] = true
		}
	}
	return sortedKeys(set), nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
