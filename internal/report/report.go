// Package report is the status channel: one line per check or generated
// file, plus a Summary of the whole run.
package report

import (
	"fmt"
	"io"
	"sync"

	"splashgen/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives status lines. Implementations must be safe for
// concurrent use, splashes of one platform report from parallel goroutines.
type Reporter interface {
	Header(title string)
	Success(msg string)
	Failure(msg string)
}

// Console prints status lines the way a terminal user expects them:
// a cyan underlined header, then indented ✓/✗ lines.
type Console struct {
	mu sync.Mutex
	w  io.Writer

	headerStyle  lipgloss.Style
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
}

// NewConsole returns a Console writing to w. Colors are dropped when w is
// not a terminal.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:            w,
		headerStyle:  r.NewStyle().Foreground(lipgloss.Color("6")).Underline(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("2")),
		failureStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (c *Console) Header(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "\n %s\n\n", c.headerStyle.Render(title))
}

func (c *Console) Success(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "  %s  %s\n", c.successStyle.Render(model.IconSuccess), msg)
}

func (c *Console) Failure(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "  %s  %s\n", c.failureStyle.Render(model.IconFailure), msg)
}

// Discard drops every status line.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Header(string)  {}
func (discard) Success(string) {}
func (discard) Failure(string) {}

// FailuresOnly forwards failure lines to r and drops everything else.
func FailuresOnly(r Reporter) Reporter {
	return failuresOnly{r}
}

type failuresOnly struct{ r Reporter }

func (failuresOnly) Header(string)        {}
func (failuresOnly) Success(string)       {}
func (f failuresOnly) Failure(msg string) { f.r.Failure(msg) }

// Tee forwards every line to all reporters in order.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Header(title string) {
	for _, r := range t {
		r.Header(title)
	}
}

func (t tee) Success(msg string) {
	for _, r := range t {
		r.Success(msg)
	}
}

func (t tee) Failure(msg string) {
	for _, r := range t {
		r.Failure(msg)
	}
}
