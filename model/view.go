package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/electr1fy0/jot/config"
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.headerView())
	s.WriteString("\n")

	if m.state == statePreview {
		s.WriteString("\n")
		s.WriteString(m.viewContent)
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("esc/ctrl+p: back to editor  ctrl+c: quit"))
		return s.String()
	}

	if !m.cfg.HasAPI() {
		s.WriteString(warningStyle.Render(fmt.Sprintf("⚠ Set %s to your notes API endpoint for real API calls.", config.EnvAPIURL)))
		s.WriteString("\n")
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.editorView(), m.recentView())
	if m.sidebarVisible() {
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main))
	} else {
		s.WriteString(main)
	}
	s.WriteString("\n")
	s.WriteString(m.footerView())
	return s.String()
}

func (m Model) headerView() string {
	parts := []string{
		titleStyle.Render("● My Notes"),
		m.searchInput.View(),
		warningStyle.Render("+ Add") + helpStyle.Render(" ctrl+n"),
	}
	// The toggle only does something on narrow terminals.
	if m.narrow() {
		toggle := "☰ open sidebar"
		if m.sidebarVisible() {
			toggle = "☰ close sidebar"
		}
		parts = append(parts, helpStyle.Render(toggle+" ctrl+b"))
	}
	return strings.Join(parts, "   ")
}

func (m Model) pane(f focus) lipgloss.Style {
	if m.focus == f {
		return focusedPaneStyle
	}
	return paneStyle
}

func (m Model) sidebarView() string {
	var body string
	if len(m.filtered) == 0 {
		body = headingStyle.Render("Notes") + "\n\n" + helpStyle.Render("No notes found.")
	} else {
		body = m.sidebar.View()
	}
	return m.pane(focusSidebar).Width(sidebarWidth).Render(body)
}

func (m Model) editorView() string {
	var s strings.Builder

	s.WriteString(headingStyle.Render("Title"))
	s.WriteString("\n")
	s.WriteString(m.titleInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.contentInput.View())
	s.WriteString("\n\n")

	box := "[ ]"
	if m.ctrl.Buffer.Favorite {
		box = "[x]"
	}
	checkbox := box + " Mark as favorite"
	if m.focus == focusFavorite {
		checkbox = cursorStyle.Render("> " + checkbox)
	} else {
		checkbox = "  " + checkbox
	}
	s.WriteString(checkbox)
	s.WriteString("   ")

	if m.ctrl.Editing() {
		s.WriteString(saveStyle.Render("Update"))
		s.WriteString(" ")
		s.WriteString(deleteStyle.Render("Delete"))
	} else {
		s.WriteString(saveStyle.Render("Create"))
	}

	style := paneStyle
	switch m.focus {
	case focusTitle, focusContent, focusFavorite:
		style = focusedPaneStyle
	}
	return style.Render(s.String())
}

func (m Model) recentView() string {
	var s strings.Builder
	s.WriteString(headingStyle.Render("Recent Notes"))

	selected, editing := m.ctrl.Selected()
	for i, n := range m.recent {
		s.WriteString("\n")

		cursor := "  "
		if m.focus == focusRecent && i == m.recentIndex {
			cursor = cursorStyle.Render("> ")
		}
		star := starOffStyle.Render("★")
		if n.Favorite {
			star = starOnStyle.Render("★")
		}
		title := n.Title
		if editing && n.ID == selected {
			title = activeStyle.Render(title)
		}
		s.WriteString(cursor + star + " " + title)
	}

	return m.pane(focusRecent).Render(s.String())
}

func (m Model) footerView() string {
	var s strings.Builder
	if m.status != "" {
		if m.lastError != "" {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
		s.WriteString("\n")
	}

	keys := m.keys
	keys.Delete.SetEnabled(m.ctrl.Editing())
	s.WriteString(m.help.View(keys))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(fmt.Sprintf("© %d Notes App", m.now().Year())))
	return s.String()
}
