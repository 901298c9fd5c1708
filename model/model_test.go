package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/jot/config"
	"github.com/electr1fy0/jot/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, cfg config.Config) (Model, *storage.Notebook) {
	t.Helper()
	clock := t0
	nb := storage.NewNotebook(storage.WelcomeNotes(t0), storage.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
	m := New(cfg, nb, zerolog.Nop())
	m.now = func() time.Time { return t0 }
	return m, nb
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelShowsWelcomeNote(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	require.Len(t, m.notes, 1)
	assert.Equal(t, "Welcome Note", m.notes[0].Title)
	assert.Len(t, m.filtered, 1)
	assert.Len(t, m.recent, 1)
	assert.Equal(t, focusTitle, m.focus)
	assert.False(t, m.ctrl.Editing())
}

func TestCreateNoteFromForm(t *testing.T) {
	m, nb := newTestModel(t, config.Default())

	m = send(m,
		typeText("Grocery List"),
		keyType(tea.KeyTab),
		typeText("Milk, eggs"),
		keyType(tea.KeyCtrlS),
	)

	assert.Equal(t, "Created: Grocery List", m.status)
	assert.Empty(t, m.lastError)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.contentInput.Value())

	notes := listNotes(t, nb)
	require.Len(t, notes, 2)
	assert.Equal(t, 2, notes[0].ID)
	assert.Equal(t, "Grocery List", notes[0].Title)
	assert.Equal(t, "Milk, eggs", notes[0].Content)
	assert.Equal(t, "Grocery List", m.recent[0].Title)
}

func TestSaveWithBlankTitleShowsError(t *testing.T) {
	m, nb := newTestModel(t, config.Default())

	m = send(m, keyType(tea.KeyCtrlS))

	assert.Equal(t, "Not saved: title is required", m.status)
	assert.NotEmpty(t, m.lastError)
	assert.Len(t, listNotes(t, nb), 1)
}

func TestSearchFiltersSidebar(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m,
		typeText("Grocery List"),
		keyType(tea.KeyTab),
		typeText("Milk"),
		keyType(tea.KeyCtrlS),
		keyType(tea.KeyCtrlF),
		typeText("MILK"),
	)

	require.Equal(t, focusSearch, m.focus)
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Grocery List", m.filtered[0].Title)
	assert.Len(t, m.notes, 2, "search never removes notes")

	m = send(m, keyType(tea.KeyEsc))
	assert.Empty(t, m.searchInput.Value())
	assert.Len(t, m.filtered, 2)
}

func TestSelectFromSidebarLoadsForm(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m,
		keyType(tea.KeyCtrlF),
		keyType(tea.KeyEnter),
	)
	require.Equal(t, focusSidebar, m.focus)

	m = send(m, keyType(tea.KeyEnter))

	assert.True(t, m.ctrl.Editing())
	assert.Equal(t, focusTitle, m.focus)
	assert.Equal(t, "Welcome Note", m.titleInput.Value())
	assert.Equal(t, "Start writing your personal notes here!", m.contentInput.Value())
	assert.Equal(t, "Editing: Welcome Note", m.status)

	it, ok := m.sidebar.Items()[0].(listItem)
	require.True(t, ok)
	assert.True(t, it.selected)
	assert.Equal(t, "▸ Welcome Note", it.Title())
}

func TestEditAndUpdateNote(t *testing.T) {
	m, nb := newTestModel(t, config.Default())
	m.selectNote(1)

	m = send(m,
		typeText("!"),
		keyType(tea.KeyCtrlS),
	)

	assert.Equal(t, "Updated: Welcome Note!", m.status)
	assert.False(t, m.ctrl.Editing())
	notes := listNotes(t, nb)
	require.Len(t, notes, 1)
	assert.Equal(t, "Welcome Note!", notes[0].Title)
	assert.True(t, notes[0].UpdatedAt.After(t0))
}

func TestDeleteSelectedNote(t *testing.T) {
	m, nb := newTestModel(t, config.Default())

	m = send(m, keyType(tea.KeyCtrlD))
	assert.Len(t, listNotes(t, nb), 1, "delete does nothing in create mode")

	m.selectNote(1)
	m = send(m, keyType(tea.KeyCtrlD))

	assert.Equal(t, "Deleted: Welcome Note", m.status)
	assert.Empty(t, listNotes(t, nb))
	assert.Empty(t, m.recent)
	assert.False(t, m.ctrl.Editing())
	assert.Empty(t, m.titleInput.Value())
}

func TestNewNoteDiscardsSelection(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m.selectNote(1)

	m = send(m, keyType(tea.KeyCtrlN))

	assert.False(t, m.ctrl.Editing())
	assert.Empty(t, m.titleInput.Value())
	assert.Equal(t, "New note", m.status)
	assert.Equal(t, focusTitle, m.focus)
}

func TestFavoriteCheckboxTogglesBuffer(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m,
		keyType(tea.KeyTab),
		keyType(tea.KeyTab),
	)
	require.Equal(t, focusFavorite, m.focus)

	m = send(m, keyType(tea.KeyEnter))
	assert.True(t, m.ctrl.Buffer.Favorite)

	m = send(m, typeText("f"))
	assert.False(t, m.ctrl.Buffer.Favorite)
}

func TestFavoriteFromRecentList(t *testing.T) {
	m, nb := newTestModel(t, config.Default())

	m = send(m,
		keyType(tea.KeyShiftTab),
		keyType(tea.KeyShiftTab),
		keyType(tea.KeyShiftTab),
	)
	require.Equal(t, focusRecent, m.focus)

	m = send(m, typeText("f"))
	assert.Equal(t, "Favorited: Welcome Note", m.status)
	assert.True(t, listNotes(t, nb)[0].Favorite)

	m = send(m, keyType(tea.KeySpace))
	assert.Equal(t, "Unfavorited: Welcome Note", m.status)
	assert.False(t, listNotes(t, nb)[0].Favorite)
}

func TestRecentListSelect(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m.setFocus(focusRecent)

	m = send(m, keyType(tea.KeyDown), keyType(tea.KeyEnter))

	assert.Equal(t, 0, m.recentIndex)
	assert.True(t, m.ctrl.Editing())
	assert.Equal(t, "Welcome Note", m.titleInput.Value())
}

func TestTabSkipsHiddenSidebarAndEmptyRecent(t *testing.T) {
	m, nb := newTestModel(t, config.Default())
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 30})
	require.False(t, m.sidebarVisible())

	var seen []focus
	for range focusCount {
		m = send(m, keyType(tea.KeyTab))
		seen = append(seen, m.focus)
	}
	assert.NotContains(t, seen, focusSidebar)
	assert.Contains(t, seen, focusRecent)

	m.selectNote(1)
	m = send(m, keyType(tea.KeyCtrlD))
	require.Empty(t, listNotes(t, nb))

	seen = nil
	for range focusCount {
		m = send(m, keyType(tea.KeyTab))
		seen = append(seen, m.focus)
	}
	assert.NotContains(t, seen, focusRecent)
}

func TestNarrowSidebarClosesAfterSelection(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.True(t, m.narrow())
	assert.False(t, m.sidebarVisible())

	m = send(m, keyType(tea.KeyCtrlB))
	assert.True(t, m.sidebarVisible())

	m = send(m,
		keyType(tea.KeyCtrlF),
		keyType(tea.KeyEnter),
		keyType(tea.KeyEnter),
	)
	assert.True(t, m.ctrl.Editing())
	assert.False(t, m.sidebarOpen)
	assert.False(t, m.sidebarVisible())
}

func TestShrinkMovesFocusOffHiddenSidebar(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m,
		tea.WindowSizeMsg{Width: 120, Height: 40},
		keyType(tea.KeyCtrlF),
		keyType(tea.KeyEnter),
	)
	require.Equal(t, focusSidebar, m.focus)

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 40})
	require.False(t, m.sidebarVisible())
	assert.Equal(t, focusTitle, m.focus)

	m = send(m, keyType(tea.KeyEnter))
	assert.False(t, m.ctrl.Editing(), "enter must not open a note from the hidden list")
	assert.Empty(t, m.titleInput.Value())
}

func TestWideTerminalAlwaysShowsSidebar(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.False(t, m.narrow())
	assert.True(t, m.sidebarVisible())
}

func TestPreviewToggle(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m.selectNote(1)

	m = send(m, keyType(tea.KeyCtrlP))
	require.Equal(t, statePreview, m.state)
	assert.Contains(t, m.viewContent, "Welcome")

	m = send(m, typeText("x"))
	assert.Equal(t, statePreview, m.state, "typing is ignored while previewing")
	assert.Equal(t, "Welcome Note", m.titleInput.Value())

	m = send(m, keyType(tea.KeyEsc))
	assert.Equal(t, stateEdit, m.state)
}

func TestEditorFinishedLoadsContent(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("from the editor\n"), 0o600))

	m = send(m, editorFinishedMsg{path: path})

	assert.Equal(t, "from the editor", m.contentInput.Value())
	assert.Equal(t, "from the editor", m.ctrl.Buffer.Content)
	assert.Equal(t, "Content updated from editor", m.status)
	assert.Equal(t, focusContent, m.focus)
	assert.NoFileExists(t, path)
}

func TestEditorFinishedWithError(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte("ignored"), 0o600))

	m = send(m, editorFinishedMsg{path: path, err: errors.New("exit status 1")})

	assert.Equal(t, "Editor failed: exit status 1", m.status)
	assert.Empty(t, m.contentInput.Value())
	assert.NoFileExists(t, path)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	_, cmd := m.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestListItem(t *testing.T) {
	it := listItem{note: storage.Note{Title: "Ideas", Favorite: true, UpdatedAt: t0}}

	assert.Equal(t, "Ideas ★", it.Title())
	assert.Equal(t, "Ideas", it.FilterValue())
	assert.Equal(t, t0.Local().Format("2006-01-02"), it.Description())
}
