package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/inkwell/internal/model"
)

// timeLayout sorts lexically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
	now     func() time.Time
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     func() time.Time { return time.Now().UTC() },
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		content     TEXT NOT NULL DEFAULT '',
		styled      BLOB,
		tags        TEXT,
		category    TEXT NOT NULL DEFAULT 'Uncategorized',
		favorite    INTEGER NOT NULL DEFAULT 0,
		color       TEXT NOT NULL DEFAULT 'blue',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC);
	CREATE INDEX IF NOT EXISTS idx_notes_category ON notes(category);
	CREATE INDEX IF NOT EXISTS idx_notes_favorite ON notes(favorite);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Create(ctx context.Context, p CreateParams) (*model.Note, error) {
	now := s.now()
	n := &model.Note{
		ID:        s.newID(),
		Title:     strings.TrimSpace(p.Title),
		Content:   p.Content,
		Styled:    p.Styled,
		Tags:      normalizeTags(p.Tags),
		Category:  p.Category,
		Favorite:  p.Favorite,
		Color:     p.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.insert(ctx, s.db, n); err != nil {
		return nil, err
	}
	return n, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// insert writes n as given, filling defaults for empty fields.
func (s *SQLiteStore) insert(ctx context.Context, db execer, n *model.Note) error {
	if n.Title == "" {
		n.Title = "Untitled"
	}
	if n.Category == "" {
		n.Category = model.DefaultCategory
	}
	if n.Color == "" {
		n.Color = model.DefaultColor
	}
	if !model.ValidColors[n.Color] {
		return fmt.Errorf("invalid color %q", n.Color)
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, styled, tags, category, favorite, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.Styled, encodeTags(n.Tags), n.Category, n.Favorite, n.Color,
		n.CreatedAt.UTC().Format(timeLayout), n.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, styled, tags, category, favorite, color, created_at, updated_at
		 FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *SQLiteStore) Update(ctx context.Context, p UpdateParams) (*model.Note, error) {
	set := []string{"updated_at = ?"}
	args := []interface{}{s.now().Format(timeLayout)}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			title = "Untitled"
		}
		set = append(set, "title = ?")
		args = append(args, title)
	}
	if p.Tags != nil {
		set = append(set, "tags = ?")
		args = append(args, encodeTags(normalizeTags(*p.Tags)))
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		if category == "" || category == model.AllNotes || category == model.Favorites {
			return nil, fmt.Errorf("invalid category %q", *p.Category)
		}
		set = append(set, "category = ?")
		args = append(args, category)
	}
	if p.Favorite != nil {
		set = append(set, "favorite = ?")
		args = append(args, *p.Favorite)
	}
	if p.Color != nil {
		if !model.ValidColors[*p.Color] {
			return nil, fmt.Errorf("invalid color %q", *p.Color)
		}
		set = append(set, "color = ?")
		args = append(args, *p.Color)
	}

	args = append(args, p.ID)
	if err := s.execOne(ctx, `UPDATE notes SET `+strings.Join(set, ", ")+` WHERE id = ?`, p.ID, args...); err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

func (s *SQLiteStore) SaveContent(ctx context.Context, id, content string, styled []byte) (*model.Note, error) {
	err := s.execOne(ctx,
		`UPDATE notes SET content = ?, styled = ?, updated_at = ? WHERE id = ?`, id,
		content, styled, s.now().Format(timeLayout), id)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ToggleFavorite flips the favorite flag of a note.
func (s *SQLiteStore) ToggleFavorite(ctx context.Context, id string) (*model.Note, error) {
	err := s.execOne(ctx,
		`UPDATE notes SET favorite = NOT favorite, updated_at = ? WHERE id = ?`, id,
		s.now().Format(timeLayout), id)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	return s.execOne(ctx, `DELETE FROM notes WHERE id = ?`, id, id)
}

// DeleteAll removes every note and returns how many were deleted.
func (s *SQLiteStore) DeleteAll(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// execOne runs a statement that must affect the note with the given id.
func (s *SQLiteStore) execOne(ctx context.Context, query, id string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Note, error) {
	where := []string{"1 = 1"}
	args := []interface{}{}

	switch p.Category {
	case "", model.AllNotes:
	case model.Favorites:
		where = append(where, "favorite = 1")
	default:
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}

	// Tag filtering narrows on the JSON text; exact membership is checked below.
	if p.Tag != "" {
		where = append(where, "tags LIKE ?")
		args = append(args, "%"+p.Tag+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, title, content, styled, tags, category, favorite, color, created_at, updated_at
		FROM notes
		WHERE %s
		ORDER BY updated_at DESC, id DESC`, strings.Join(where, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
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
		if p.Tag != "" && !hasTag(n, p.Tag) {
			continue
		}
		if !MatchQuery(n, p.Query) {
			continue
		}
		notes = append(notes, n)
		if p.Limit > 0 && len(notes) == p.Limit {
			break
		}
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row scanner) (model.Note, error) {
	var n model.Note
	var tagsJSON sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Styled, &tagsJSON,
		&n.Category, &n.Favorite, &n.Color, &createdAt, &updatedAt,
	)
	if err != nil {
		return n, err
	}

	n.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	n.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &n.Tags)
	}
	return n, nil
}

func encodeTags(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	b, _ := json.Marshal(tags)
	s := string(b)
	return &s
}

// normalizeTags trims, drops empties and removes duplicates, keeping order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
