package storage

import (
	"iter"
	"slices"
	"strings"
	"time"
)

// The functions in this file never modify the slice they are given; each
// returns a fresh slice when something changed.

// NextID returns one past the largest id in notes, or 1 for an empty list.
func NextID(notes []Note) int {
	highest := 0
	for _, n := range notes {
		highest = max(highest, n.ID)
	}
	return highest + 1
}

func Create(notes []Note, id int, buf Buffer, now time.Time) ([]Note, Note, error) {
	if err := buf.Validate(); err != nil {
		return notes, Note{}, err
	}
	n := Note{
		ID:        id,
		Title:     buf.Title,
		Content:   buf.Content,
		Favorite:  buf.Favorite,
		UpdatedAt: now,
	}
	out := make([]Note, 0, len(notes)+1)
	out = append(out, n)
	out = append(out, notes...)
	return out, n, nil
}

// Update replaces the editable fields of note id. The new timestamp never
// goes backwards, even if the clock does.
func Update(notes []Note, id int, buf Buffer, now time.Time) ([]Note, Note, error) {
	if err := buf.Validate(); err != nil {
		return notes, Note{}, err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return notes, Note{}, ErrNoteNotFound
	}
	prev := notes[i]
	if now.Before(prev.UpdatedAt) {
		now = prev.UpdatedAt
	}
	n := Note{
		ID:        id,
		Title:     buf.Title,
		Content:   buf.Content,
		Favorite:  buf.Favorite,
		UpdatedAt: now,
	}
	out := slices.Clone(notes)
	out[i] = n
	return out, n, nil
}

func Delete(notes []Note, id int) ([]Note, bool) {
	i := indexOf(notes, id)
	if i < 0 {
		return notes, false
	}
	out := make([]Note, 0, len(notes)-1)
	out = append(out, notes[:i]...)
	out = append(out, notes[i+1:]...)
	return out, true
}

func ToggleFavorite(notes []Note, id int) ([]Note, Note, bool) {
	i := indexOf(notes, id)
	if i < 0 {
		return notes, Note{}, false
	}
	out := slices.Clone(notes)
	out[i].Favorite = !out[i].Favorite
	return out, out[i], true
}

// Search yields the notes whose title or content contains query, ignoring
// case. The sequence is evaluated lazily and can be ranged over again.
func Search(notes []Note, query string) iter.Seq[Note] {
	q := strings.ToLower(query)
	return func(yield func(Note) bool) {
		for _, n := range notes {
			if !matches(n, q) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func matches(n Note, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery)
}

// Recent returns the first limit notes, which are the newest ones since
// creation prepends.
func Recent(notes []Note, limit int) []Note {
	if limit <= 0 {
		return nil
	}
	if len(notes) < limit {
		limit = len(notes)
	}
	return slices.Clone(notes[:limit])
}

func indexOf(notes []Note, id int) int {
	return slices.IndexFunc(notes, func(n Note) bool { return n.ID == id })
}
