package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/electr1fy0/jot/config"
	"github.com/electr1fy0/jot/storage"
	"github.com/rs/zerolog"
)

// focus is the part of the screen receiving keys. Tab walks it in order.
type focus int

const (
	focusSearch focus = iota
	focusSidebar
	focusTitle
	focusContent
	focusFavorite
	focusRecent
	focusCount
)

type state int

const (
	stateEdit state = iota
	statePreview
)

type listItem struct {
	note     storage.Note
	selected bool
}

// editorFinishedMsg carries the result of an $EDITOR session.
type editorFinishedMsg struct {
	path string
	err  error
}

type Model struct {
	state state
	focus focus

	cfg config.Config
	log zerolog.Logger

	repo storage.Repository
	ctrl *Controller

	width  int
	height int

	searchInput  textinput.Model
	titleInput   textinput.Model
	contentInput textarea.Model

	sidebar     list.Model
	sidebarOpen bool

	notes       []storage.Note
	filtered    []storage.Note
	recent      []storage.Note
	recentIndex int

	keys keyMap
	help help.Model

	viewContent string

	status    string
	lastError string

	now func() time.Time
}
