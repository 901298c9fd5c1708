package storage

import (
	"context"
	"slices"
	"time"
)

// Repository is what the UI talks to. Notebook keeps everything in memory;
// a remote implementation can satisfy the same interface.
type Repository interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id int) (Note, error)
	Create(ctx context.Context, buf Buffer) (Note, error)
	Update(ctx context.Context, id int, buf Buffer) (Note, error)
	Delete(ctx context.Context, id int) error
	ToggleFavorite(ctx context.Context, id int) (Note, error)
}

// Notebook is an in-memory Repository. It is not safe for concurrent use.
type Notebook struct {
	notes  []Note
	nextID int
	now    func() time.Time
}

type Option func(*Notebook)

// WithClock replaces time.Now as the source of UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(nb *Notebook) {
		nb.now = now
	}
}

// NewNotebook returns a notebook holding seed in the given order. Ids handed
// out later start after the largest seeded id and are never reused.
func NewNotebook(seed []Note, opts ...Option) *Notebook {
	nb := &Notebook{
		notes:  slices.Clone(seed),
		nextID: NextID(seed),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(nb)
	}
	return nb
}

// WelcomeNotes is the starter content shown on first launch.
func WelcomeNotes(now time.Time) []Note {
	return []Note{{
		ID:        1,
		Title:     "Welcome Note",
		Content:   "Start writing your personal notes here!",
		UpdatedAt: now,
	}}
}

var _ Repository = (*Notebook)(nil)

func (nb *Notebook) List(ctx context.Context) ([]Note, error) {
	return slices.Clone(nb.notes), nil
}

func (nb *Notebook) Get(ctx context.Context, id int) (Note, error) {
	i := indexOf(nb.notes, id)
	if i < 0 {
		return Note{}, ErrNoteNotFound
	}
	return nb.notes[i], nil
}

func (nb *Notebook) Create(ctx context.Context, buf Buffer) (Note, error) {
	notes, n, err := Create(nb.notes, nb.nextID, buf, nb.now())
	if err != nil {
		return Note{}, err
	}
	nb.notes = notes
	nb.nextID++
	return n, nil
}

func (nb *Notebook) Update(ctx context.Context, id int, buf Buffer) (Note, error) {
	notes, n, err := Update(nb.notes, id, buf, nb.now())
	if err != nil {
		return Note{}, err
	}
	nb.notes = notes
	return n, nil
}

// Delete removes note id. Deleting a missing note is not an error.
func (nb *Notebook) Delete(ctx context.Context, id int) error {
	nb.notes, _ = Delete(nb.notes, id)
	return nil
}

func (nb *Notebook) ToggleFavorite(ctx context.Context, id int) (Note, error) {
	notes, n, ok := ToggleFavorite(nb.notes, id)
	if !ok {
		return Note{}, ErrNoteNotFound
	}
	nb.notes = notes
	return n, nil
}
