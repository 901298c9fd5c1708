package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/jot/config"
	"github.com/electr1fy0/jot/storage"
	"github.com/electr1fy0/jot/utils"
	"github.com/rs/zerolog"
)

const (
	sidebarWidth  = 32
	contentHeight = 8
)

func (i listItem) FilterValue() string { return i.note.Title }

func (i listItem) Title() string {
	title := i.note.Title
	if i.selected {
		title = "▸ " + title
	}
	if i.note.Favorite {
		title += " ★"
	}
	return title
}

func (i listItem) Description() string {
	return formatDate(i.note.UpdatedAt)
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

func New(cfg config.Config, repo storage.Repository, log zerolog.Logger) Model {
	si := textinput.New()
	si.Placeholder = "Search notes…"
	si.Prompt = "/ "
	si.CharLimit = storage.MaxTitleLength
	si.Width = 30

	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.Prompt = ""
	ti.CharLimit = storage.MaxTitleLength
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Write your note here…"
	ta.ShowLineNumbers = false
	ta.CharLimit = storage.MaxContentLength
	ta.SetWidth(60)
	ta.SetHeight(contentHeight)

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), sidebarWidth, 20)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := Model{
		state:        stateEdit,
		cfg:          cfg,
		log:          log,
		repo:         repo,
		ctrl:         NewController(repo, log),
		searchInput:  si,
		titleInput:   ti,
		contentInput: ta,
		sidebar:      l,
		keys:         defaultKeyMap(),
		help:         help.New(),
		now:          time.Now,
	}
	m.refresh()
	m.setFocus(focusTitle)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.state == statePreview {
			m.viewContent = renderPreview(m.ctrl.Buffer.Title, m.ctrl.Buffer.Content, m.width)
		}
		if m.focus == focusSidebar && !m.sidebarVisible() {
			return m, m.setFocus(focusTitle)
		}
		return m, nil

	case editorFinishedMsg:
		content, readErr := utils.ReadEdited(msg.path)
		if msg.err != nil {
			m.setError("Editor failed", msg.err)
			return m, nil
		}
		if readErr != nil {
			m.setError("Editor failed", readErr)
			return m, nil
		}
		m.contentInput.SetValue(strings.TrimRight(content, "\n"))
		m.syncBuffer()
		m.setStatus("Content updated from editor")
		return m, m.setFocus(focusContent)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state == statePreview {
		if key.Matches(msg, m.keys.Back, m.keys.Preview) {
			m.state = stateEdit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.New):
		m.ctrl.StartNew()
		m.loadForm()
		m.afterSelection()
		m.refresh()
		m.setStatus("New note")
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.Save):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.sidebarOpen = !m.sidebarOpen
		m.resize()
		if m.focus == focusSidebar && !m.sidebarVisible() {
			return m, m.setFocus(focusTitle)
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.Preview):
		m.syncBuffer()
		m.viewContent = renderPreview(m.ctrl.Buffer.Title, m.ctrl.Buffer.Content, m.width)
		m.state = statePreview
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		return m, m.openEditor()
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.nextFocus(1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.nextFocus(-1))
	}

	switch m.focus {
	case focusSearch:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.searchInput.SetValue("")
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.sidebarVisible() {
				return m, m.setFocus(focusSidebar)
			}
			return m, nil
		}
	case focusSidebar:
		if key.Matches(msg, m.keys.Select) {
			if it, ok := m.sidebar.SelectedItem().(listItem); ok {
				m.selectNote(it.note.ID)
				return m, m.setFocus(focusTitle)
			}
			return m, nil
		}
	case focusTitle:
		if key.Matches(msg, m.keys.Select) {
			return m, m.setFocus(focusContent)
		}
	case focusFavorite:
		if key.Matches(msg, m.keys.Select, m.keys.Favorite) {
			m.ctrl.Buffer.Favorite = !m.ctrl.Buffer.Favorite
		}
		return m, nil
	case focusRecent:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.recentIndex = max(0, m.recentIndex-1)
		case key.Matches(msg, m.keys.Down):
			m.recentIndex = max(0, min(len(m.recent)-1, m.recentIndex+1))
		case key.Matches(msg, m.keys.Select):
			if n, ok := m.recentNote(); ok {
				m.selectNote(n.ID)
				return m, m.setFocus(focusTitle)
			}
		case key.Matches(msg, m.keys.Favorite):
			if n, ok := m.recentNote(); ok {
				m.toggleFavorite(n.ID)
			}
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused hands msg to whichever text widget or list has focus and
// copies any edits back into the controller's buffer.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		before := m.searchInput.Value()
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != before {
			m.refresh()
		}
	case focusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.syncBuffer()
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
		m.syncBuffer()
	}
	return m, cmd
}

func (m *Model) submit() {
	m.syncBuffer()
	wasEditing := m.ctrl.Editing()

	n, err := m.ctrl.Submit(context.Background())
	if err != nil {
		m.setError("Not saved", err)
		return
	}
	m.loadForm()
	m.refresh()

	switch {
	case !wasEditing:
		m.setStatus("Created: " + n.Title)
	case n.ID == 0:
		m.setStatus("Note no longer exists")
	default:
		m.setStatus("Updated: " + n.Title)
	}
}

func (m *Model) deleteSelected() {
	if !m.ctrl.Editing() {
		return
	}
	title := m.ctrl.Buffer.Title
	if _, err := m.ctrl.DeleteSelected(context.Background()); err != nil {
		m.setError("Delete failed", err)
		return
	}
	m.loadForm()
	m.refresh()
	m.setStatus("Deleted: " + title)
}

func (m *Model) selectNote(id int) {
	if err := m.ctrl.SelectForEdit(context.Background(), id); err != nil {
		m.setError("Open failed", err)
		return
	}
	m.loadForm()
	m.afterSelection()
	m.refresh()
	m.setStatus("Editing: " + m.ctrl.Buffer.Title)
}

func (m *Model) toggleFavorite(id int) {
	n, err := m.ctrl.ToggleFavorite(context.Background(), id)
	if err != nil {
		m.setError("Favorite failed", err)
		return
	}
	m.refresh()
	if n.Favorite {
		m.setStatus("Favorited: " + n.Title)
	} else {
		m.setStatus("Unfavorited: " + n.Title)
	}
}

func (m *Model) openEditor() tea.Cmd {
	m.syncBuffer()
	cmd, path, err := utils.EditorCommand(m.ctrl.Buffer.Content)
	if err != nil {
		m.setError("Editor failed", err)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (m *Model) recentNote() (storage.Note, bool) {
	if m.recentIndex < 0 || m.recentIndex >= len(m.recent) {
		return storage.Note{}, false
	}
	return m.recent[m.recentIndex], true
}

// refresh re-reads the repository and recomputes everything derived from
// it: the filtered sidebar and the recent list.
func (m *Model) refresh() {
	notes, err := m.repo.List(context.Background())
	if err != nil {
		m.setError("Load failed", err)
		return
	}
	m.notes = notes
	m.filtered = slices.Collect(storage.Search(notes, m.searchInput.Value()))
	m.recent = storage.Recent(notes, m.cfg.RecentLimit)
	if m.recentIndex >= len(m.recent) {
		m.recentIndex = max(0, len(m.recent)-1)
	}

	selected, editing := m.ctrl.Selected()
	items := make([]list.Item, 0, len(m.filtered))
	for _, n := range m.filtered {
		items = append(items, listItem{note: n, selected: editing && n.ID == selected})
	}
	m.sidebar.SetItems(items)
}

func (m *Model) loadForm() {
	m.titleInput.SetValue(m.ctrl.Buffer.Title)
	m.contentInput.SetValue(m.ctrl.Buffer.Content)
}

func (m *Model) syncBuffer() {
	m.ctrl.Buffer.Title = m.titleInput.Value()
	m.ctrl.Buffer.Content = m.contentInput.Value()
}

// afterSelection closes the sidebar on narrow terminals once the user has
// picked something from it.
func (m *Model) afterSelection() {
	if m.narrow() {
		m.sidebarOpen = false
		m.resize()
	}
}

func (m Model) narrow() bool {
	return m.width > 0 && m.width < m.cfg.NarrowWidth
}

func (m Model) sidebarVisible() bool {
	return !m.narrow() || m.sidebarOpen
}

func (m Model) nextFocus(step int) focus {
	f := m.focus
	for range focusCount {
		f = (f + focus(step) + focusCount) % focusCount
		if f == focusSidebar && !m.sidebarVisible() {
			continue
		}
		if f == focusRecent && len(m.recent) == 0 {
			continue
		}
		return f
	}
	return m.focus
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.searchInput.Blur()
	m.titleInput.Blur()
	m.contentInput.Blur()

	switch f {
	case focusSearch:
		return m.searchInput.Focus()
	case focusTitle:
		return m.titleInput.Focus()
	case focusContent:
		return m.contentInput.Focus()
	}
	return nil
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	mainWidth := m.width - 2
	if m.sidebarVisible() {
		mainWidth -= sidebarWidth + 2
	}
	mainWidth = max(mainWidth, 20)

	bodyHeight := max(m.height-10, 6)
	m.sidebar.SetSize(sidebarWidth, bodyHeight)
	m.searchInput.Width = min(30, max(m.width-40, 10))
	m.titleInput.Width = mainWidth - 4
	m.contentInput.SetWidth(mainWidth - 2)
	m.contentInput.SetHeight(contentHeight)
	m.help.Width = m.width
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.lastError = ""
}

func (m *Model) setError(prefix string, err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", "; ")
	m.lastError = msg
	m.status = fmt.Sprintf("%s: %s", prefix, msg)
	m.log.Error().Err(err).Msg(prefix)
}
