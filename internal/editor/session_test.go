package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/inkwell/internal/model"
	"github.com/rcliao/inkwell/internal/richtext"
)

// memStore is an in-memory Store that can be told to fail writes.
type memStore struct {
	notes   map[string]model.Note
	failErr error
	saves   int
}

func newMemStore(notes ...model.Note) *memStore {
	m := &memStore{notes: map[string]model.Note{}}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *memStore) Get(_ context.Context, id string) (*model.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &n, nil
}

func (m *memStore) SaveContent(_ context.Context, id, content string, styled []byte) (*model.Note, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	m.saves++
	n := m.notes[id]
	n.Content = content
	n.Styled = styled
	m.notes[id] = n
	return &n, nil
}

func mustOp(t *testing.T, name string) richtext.Op {
	t.Helper()
	op, err := richtext.ParseOp(name)
	require.NoError(t, err)
	return op
}

func TestSession_ChecklistPersistsBothProjections(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "Buy milk\nCall mom"})

	s, err := Open(ctx, st, "n1")
	require.NoError(t, err)
	s.Select(richtext.Span(0, 17))

	require.NoError(t, s.Apply(ctx, mustOp(t, "checklist")))

	saved := st.notes["n1"]
	assert.Equal(t, "☐ Buy milk\n☐ Call mom", saved.Content)
	doc, err := richtext.UnmarshalStyled(saved.Styled)
	require.NoError(t, err)
	assert.True(t, doc.Equal(s.Document()))
	assert.Equal(t, richtext.Span(0, 21), s.Selection())
}

func TestSession_ReopenKeepsStyles(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "Hello"})

	s, err := Open(ctx, st, "n1")
	require.NoError(t, err)
	s.Select(richtext.Span(0, 5))
	require.NoError(t, s.Apply(ctx, mustOp(t, "bold")))

	again, err := Open(ctx, st, "n1")
	require.NoError(t, err)
	_, a := again.Document().At(0)
	assert.True(t, a.Bold)
}

func TestSession_StaleStyledFallsBackToPlain(t *testing.T) {
	ctx := context.Background()
	styled, err := richtext.MarshalStyled(richtext.New("old text", richtext.Attrs{Bold: true}))
	require.NoError(t, err)
	st := newMemStore(
		model.Note{ID: "stale", Content: "new text", Styled: styled},
		model.Note{ID: "broken", Content: "plain", Styled: []byte("garbage")},
	)

	s, err := Open(ctx, st, "stale")
	require.NoError(t, err)
	assert.Equal(t, "new text", s.Document().String())
	_, a := s.Document().At(0)
	assert.False(t, a.Bold)

	s, err = Open(ctx, st, "broken")
	require.NoError(t, err)
	assert.Equal(t, "plain", s.Document().String())
}

func TestSession_FailedSaveKeepsDocument(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "Hello"})
	s, err := Open(ctx, st, "n1")
	require.NoError(t, err)

	st.failErr = errors.New("disk full")
	s.Select(richtext.Span(0, 5))
	err = s.Apply(ctx, mustOp(t, "underline"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")

	_, a := s.Document().At(0)
	assert.True(t, a.Underline, "in-memory change must survive")
	assert.Empty(t, st.notes["n1"].Styled)
	assert.True(t, s.Dirty())

	st.failErr = nil
	require.NoError(t, s.Save(ctx))
	assert.False(t, s.Dirty())
	assert.NotEmpty(t, st.notes["n1"].Styled)
}

func TestSession_AutoSaveOffWaitsForSave(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "Hello"})
	s, err := Open(ctx, st, "n1", WithAutoSave(false, 0))
	require.NoError(t, err)

	s.Select(richtext.Span(0, 5))
	require.NoError(t, s.Apply(ctx, mustOp(t, "bold")))
	require.NoError(t, s.Apply(ctx, mustOp(t, "h2")))
	assert.Equal(t, 0, st.saves)
	assert.True(t, s.Dirty())

	require.NoError(t, s.Save(ctx))
	assert.Equal(t, 1, st.saves)
	assert.False(t, s.Dirty())
	doc, err := richtext.UnmarshalStyled(st.notes["n1"].Styled)
	require.NoError(t, err)
	assert.True(t, doc.Equal(s.Document()))

	require.NoError(t, s.Save(ctx))
	assert.Equal(t, 1, st.saves, "clean session writes nothing")
}

func TestSession_AutoSaveInterval(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "Hello"})
	s, err := Open(ctx, st, "n1", WithAutoSave(true, 5*time.Second))
	require.NoError(t, err)

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return clock }
	s.Select(richtext.Span(0, 5))

	require.NoError(t, s.Apply(ctx, mustOp(t, "bold")))
	assert.Equal(t, 1, st.saves, "first change is written")

	clock = clock.Add(2 * time.Second)
	require.NoError(t, s.Apply(ctx, mustOp(t, "italic")))
	assert.Equal(t, 1, st.saves)
	assert.True(t, s.Dirty())

	clock = clock.Add(4 * time.Second)
	require.NoError(t, s.Apply(ctx, mustOp(t, "underline")))
	assert.Equal(t, 2, st.saves)
	assert.False(t, s.Dirty())
}

func TestSession_ClickCheckbox(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "☑ Done\nplain"})
	s, err := Open(ctx, st, "n1")
	require.NoError(t, err)

	ok, err := s.ClickCheckbox(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "☐ Done\nplain", st.notes["n1"].Content)

	ok, err = s.ClickCheckbox(ctx, 9)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, richtext.Caret(9), s.Selection())
	assert.Equal(t, 1, st.saves)
}

func TestSession_InsertLinkAndSetText(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(model.Note{ID: "n1", Content: "read "})
	s, err := Open(ctx, st, "n1", WithEngine(richtext.NewEngine(14)))
	require.NoError(t, err)

	s.Select(richtext.Caret(5))
	require.NoError(t, s.InsertLink(ctx, "https://go.dev", "Go"))
	assert.Equal(t, "read Go", st.notes["n1"].Content)

	assert.Error(t, s.InsertLink(ctx, "nope", ""))

	require.NoError(t, s.SetText(ctx, "fresh"))
	assert.Equal(t, "fresh", st.notes["n1"].Content)
	_, a := s.Document().At(0)
	assert.Equal(t, richtext.Attrs{Size: 14}, a)
	assert.Equal(t, richtext.Caret(5), s.Selection())
}

func TestOpenMissingNote(t *testing.T) {
	_, err := Open(context.Background(), newMemStore(), "nope")
	assert.Error(t, err)
}
