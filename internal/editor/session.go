// Package editor holds the editing session of a single note.
package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rcliao/inkwell/internal/model"
	"github.com/rcliao/inkwell/internal/richtext"
)

// Store is the persistence a session needs.
type Store interface {
	Get(ctx context.Context, id string) (*model.Note, error)
	SaveContent(ctx context.Context, id, content string, styled []byte) (*model.Note, error)
}

type options struct {
	logger   *slog.Logger
	engine   *richtext.Engine
	autoSave bool
	interval time.Duration
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEngine sets the formatting engine, typically built from the configured
// font size.
func WithEngine(e *richtext.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithAutoSave controls when mutations are written. With enabled false nothing
// is written until Save. Otherwise a mutation is written unless the previous
// write happened less than interval ago; Save flushes what is left. The
// default is enabled with no interval, so every mutation is written.
func WithAutoSave(enabled bool, interval time.Duration) Option {
	return func(o *options) {
		o.autoSave = enabled
		o.interval = interval
	}
}

// Session owns the document of one note while it is being edited. A session
// is not safe for concurrent use.
//
// Writes store both the plain-text and the styled projection. A failed write
// is logged and returned, but the in-memory document keeps the change and
// stays dirty.
type Session struct {
	store  Store
	engine *richtext.Engine
	logger *slog.Logger

	autoSave bool
	interval time.Duration
	now      func() time.Time
	lastSave time.Time
	dirty    bool

	note *model.Note
	doc  richtext.Document
	sel  richtext.Selection
}

// Open loads a note into a new session with a caret at the start.
func Open(ctx context.Context, st Store, id string, opts ...Option) (*Session, error) {
	o := &options{autoSave: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.engine == nil {
		o.engine = richtext.NewEngine(richtext.DefaultBaseSize)
	}

	note, err := st.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s := &Session{
		store:  st,
		engine: o.engine,
		logger:   o.logger.With("note", note.ID),
		autoSave: o.autoSave,
		interval: o.interval,
		now:      time.Now,
		note:     note,
		sel:      richtext.Caret(0),
	}
	s.doc = s.load(note)
	return s, nil
}

// load builds the document from the styled blob, falling back to the plain
// text when the blob is missing, unreadable or out of date.
func (s *Session) load(note *model.Note) richtext.Document {
	if len(note.Styled) == 0 {
		return richtext.New(note.Content, richtext.Attrs{})
	}
	doc, err := richtext.UnmarshalStyled(note.Styled)
	if err != nil {
		s.logger.Warn("styled content unreadable, using plain text", "err", err)
		return richtext.New(note.Content, richtext.Attrs{})
	}
	if doc.String() != note.Content {
		s.logger.Debug("styled content stale, using plain text")
		return richtext.New(note.Content, richtext.Attrs{})
	}
	return doc
}

func (s *Session) Note() model.Note { return *s.note }

func (s *Session) Document() richtext.Document { return s.doc }

func (s *Session) Selection() richtext.Selection { return s.sel }

// Select replaces the selection. It is clamped to the document.
func (s *Session) Select(sel richtext.Selection) {
	s.sel = sel.Normalize(s.doc.Len())
}

// Apply runs a formatting operation over the current selection.
func (s *Session) Apply(ctx context.Context, op richtext.Op) error {
	doc, sel := s.engine.Apply(s.doc, s.sel, op)
	s.logger.Debug("apply", "op", op.Name, "selection", sel.String())
	return s.commit(ctx, doc, sel)
}

// ClickCheckbox handles a click at rune offset i. It reports whether the click
// toggled a checkbox.
func (s *Session) ClickCheckbox(ctx context.Context, i int) (bool, error) {
	doc, ok := s.engine.ToggleCheckboxAt(s.doc, i)
	if !ok {
		s.Select(richtext.Caret(i))
		return false, nil
	}
	return true, s.commit(ctx, doc, s.sel)
}

// InsertLink links the first selected range, or inserts a titled link at the
// caret.
func (s *Session) InsertLink(ctx context.Context, url, title string) error {
	doc, sel, err := s.engine.InsertLink(s.doc, s.sel, url, title)
	if err != nil {
		return err
	}
	return s.commit(ctx, doc, sel)
}

// SetText replaces the whole body with unstyled text.
func (s *Session) SetText(ctx context.Context, text string) error {
	doc := richtext.New(text, s.engine.BodyAttrs())
	return s.commit(ctx, doc, richtext.Caret(doc.Len()))
}

// Dirty reports whether the document has changes that are not written yet.
func (s *Session) Dirty() bool { return s.dirty }

// Save writes pending changes. It does nothing when the session is clean.
func (s *Session) Save(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	return s.persist(ctx)
}

func (s *Session) commit(ctx context.Context, doc richtext.Document, sel richtext.Selection) error {
	s.doc, s.sel = doc, sel
	s.dirty = true
	if !s.autoSave {
		return nil
	}
	if !s.lastSave.IsZero() && s.now().Sub(s.lastSave) < s.interval {
		s.logger.Debug("write deferred", "interval", s.interval)
		return nil
	}
	return s.persist(ctx)
}

func (s *Session) persist(ctx context.Context) error {
	styled, err := richtext.MarshalStyled(s.doc)
	if err != nil {
		s.logger.Error("encode styled content", "err", err)
		return fmt.Errorf("encode styled content: %w", err)
	}
	note, err := s.store.SaveContent(ctx, s.note.ID, s.doc.String(), styled)
	if err != nil {
		s.logger.Error("save note", "err", err)
		return fmt.Errorf("save note: %w", err)
	}
	s.note = note
	s.dirty = false
	s.lastSave = s.now()
	return nil
}
