package report

import (
	"encoding/json"
	"io"
	"sync"
)

// File is one generated splash.
type File struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Source   string `json:"source"` // Master or override the splash was cropped from
}

// Failure is one splash that could not be generated.
type Failure struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Error    string `json:"error"`
}

// Summary collects the outcome of a run. Safe for concurrent use.
type Summary struct {
	mu sync.Mutex

	Platforms []string  `json:"platforms"`
	Created   []File    `json:"created"`
	Failures  []Failure `json:"failures"`
	Error     string    `json:"error,omitempty"` // Why the run stopped early, if it did
}

func (s *Summary) AddPlatform(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Platforms = append(s.Platforms, name)
}

func (s *Summary) AddCreated(f File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, f)
}

func (s *Summary) AddFailure(f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failures = append(s.Failures, f)
}

// SetError records the error that ended the run.
func (s *Summary) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.Error = ""
		return
	}
	s.Error = err.Error()
}

// Counts returns the number of created and failed splashes.
func (s *Summary) Counts() (created, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Created), len(s.Failures)
}

// WriteJSON encodes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
