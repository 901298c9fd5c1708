package model

import (
	"context"
	"errors"

	"github.com/electr1fy0/jot/storage"
	"github.com/rs/zerolog"
)

// Controller owns the selection and the form buffer and moves data between
// them and the repository. It knows nothing about the terminal.
type Controller struct {
	repo storage.Repository
	log  zerolog.Logger

	selected int
	editing  bool

	Buffer storage.Buffer
}

func NewController(repo storage.Repository, log zerolog.Logger) *Controller {
	return &Controller{repo: repo, log: log}
}

func (c *Controller) Editing() bool {
	return c.editing
}

// Selected returns the id of the note loaded into the buffer, if any.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.editing
}

// SelectForEdit loads note id into the buffer. A missing note leaves the
// selection set and the buffer empty.
func (c *Controller) SelectForEdit(ctx context.Context, id int) error {
	n, err := c.repo.Get(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNoteNotFound):
		n = storage.Note{}
	case err != nil:
		return err
	}
	c.selected = id
	c.editing = true
	c.Buffer = n.Buffer()
	return nil
}

func (c *Controller) StartNew() {
	c.selected = 0
	c.editing = false
	c.Buffer = storage.Buffer{}
}

// Submit creates or updates a note from the buffer. A buffer that fails
// validation is returned as an error and nothing changes.
func (c *Controller) Submit(ctx context.Context) (storage.Note, error) {
	if err := c.Buffer.Validate(); err != nil {
		c.log.Warn().Err(err).Bool("editing", c.editing).Msg("submit rejected")
		return storage.Note{}, err
	}

	var (
		n   storage.Note
		err error
	)
	if c.editing {
		n, err = c.repo.Update(ctx, c.selected, c.Buffer)
		if errors.Is(err, storage.ErrNoteNotFound) {
			c.log.Info().Int("id", c.selected).Msg("update skipped, note is gone")
			err = nil
		}
		if err == nil && n.ID != 0 {
			c.log.Info().Int("id", n.ID).Msg("note updated")
		}
	} else {
		n, err = c.repo.Create(ctx, c.Buffer)
		if err == nil {
			c.log.Info().Int("id", n.ID).Msg("note created")
		}
	}
	if err != nil {
		return storage.Note{}, err
	}

	c.StartNew()
	return n, nil
}

// DeleteSelected removes the note being edited and goes back to creating.
func (c *Controller) DeleteSelected(ctx context.Context) (int, error) {
	if !c.editing {
		return 0, nil
	}
	id := c.selected
	_, err := c.repo.Get(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNoteNotFound):
		c.log.Info().Int("id", id).Msg("delete skipped, note is gone")
	case err != nil:
		return 0, err
	default:
		if err := c.repo.Delete(ctx, id); err != nil {
			return 0, err
		}
		c.log.Info().Int("id", id).Msg("note deleted")
	}
	c.StartNew()
	return id, nil
}

func (c *Controller) ToggleFavorite(ctx context.Context, id int) (storage.Note, error) {
	n, err := c.repo.ToggleFavorite(ctx, id)
	if err != nil {
		return storage.Note{}, err
	}
	c.log.Info().Int("id", id).Bool("favorite", n.Favorite).Msg("favorite toggled")
	return n, nil
}
