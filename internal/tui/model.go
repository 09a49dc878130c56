package tui

import (
	"context"

	"splashgen/internal/report"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LineKind tells how a status line is rendered.
type LineKind int

const (
	LineHeader LineKind = iota
	LineSuccess
	LineFailure
)

// Line is one status line received from the run.
type Line struct {
	Kind LineKind
	Text string
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Lines   []Line
	Summary *report.Summary
	Err     error
	Done    bool

	// UI State
	Current    string // Title of the last header, shown next to the spinner
	Created    int
	Failed     int
	WindowSize tea.WindowSizeMsg

	// Components
	Spinner spinner.Model

	cancel context.CancelFunc
}

// InitialModel returns the initial state. cancel is called when the user
// quits before the run finished.
func InitialModel(cancel context.CancelFunc) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return AppModel{
		Spinner: s,
		Current: "Starting",
		cancel:  cancel,
	}
}

// Init starts the spinner.
func (m AppModel) Init() tea.Cmd {
	return m.Spinner.Tick
}
