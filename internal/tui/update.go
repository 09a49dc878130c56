package tui

import (
	"context"
	"errors"

	"splashgen/internal/report"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgLine carries one status line from the run.
type MsgLine Line

// MsgDone indicates that the run has completed.
type MsgDone struct {
	Summary *report.Summary
	Err     error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgLine:
		m.Lines = append(m.Lines, Line(msg))
		switch msg.Kind {
		case LineHeader:
			m.Current = msg.Text
		case LineSuccess:
			m.Created++
		case LineFailure:
			m.Failed++
		}
		return m, nil

	case MsgDone:
		m.Done = true
		m.Summary = msg.Summary
		m.Err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	}

	return m, nil
}

// sender forwards status lines into the running program.
type sender struct {
	p *tea.Program
}

func (s sender) Header(title string) { s.p.Send(MsgLine{Kind: LineHeader, Text: title}) }
func (s sender) Success(msg string)  { s.p.Send(MsgLine{Kind: LineSuccess, Text: msg}) }
func (s sender) Failure(msg string)  { s.p.Send(MsgLine{Kind: LineFailure, Text: msg}) }

// Run shows the progress of run in an interactive view and returns its
// outcome. run receives a Reporter feeding the view and a context that is
// canceled when the user quits early.
func Run(ctx context.Context, run func(context.Context, report.Reporter) (*report.Summary, error), opts ...tea.ProgramOption) (*report.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(InitialModel(cancel), opts...)
	go func() {
		summary, err := run(ctx, sender{p})
		p.Send(MsgDone{Summary: summary, Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(AppModel)
	if !ok {
		return nil, errors.New("unexpected model type")
	}
	if !m.Done {
		return m.Summary, context.Canceled
	}
	return m.Summary, m.Err
}
