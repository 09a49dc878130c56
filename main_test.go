package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"splashgen/internal/crop"
	"splashgen/internal/generate"
	"splashgen/internal/model"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       int
		wantStderr bool
	}{
		{"success", nil, exitOK, false},
		{"config missing", generate.ErrConfigMissing, exitConfigMissing, false},
		{"splash missing", fmt.Errorf("preflight: %w", generate.ErrSplashMissing), exitSplashMissing, false},
		{"no platforms", generate.ErrNoPlatforms, exitNoPlatforms, false},
		{"canceled", context.Canceled, exitError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := exitCode(tt.err, &stderr); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if (stderr.Len() > 0) != tt.wantStderr {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

// newProject returns settings for a project with config.xml, splash.png and
// the given platform folders.
func newProject(t *testing.T, dirs ...string) model.RunSettings {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "config.xml"), []byte("<widget/>"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(root, "splash.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 32, 32))); err != nil {
		t.Fatal(err)
	}
	return model.RunSettings{
		ConfigFile: filepath.Join(root, "config.xml"),
		SplashFile: filepath.Join(root, "splash.png"),
		Backend:    crop.DefaultBackend,
	}
}

type jsonSummary struct {
	Platforms []string          `json:"platforms"`
	Created   []json.RawMessage `json:"created"`
	Error     string            `json:"error"`
}

func TestRunOnceJSONPreflightFailure(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(s *model.RunSettings)
		wantCode   int
		wantStderr string
	}{
		{
			name:       "config missing",
			mutate:     func(s *model.RunSettings) { s.ConfigFile += ".missing" },
			wantCode:   exitConfigMissing,
			wantStderr: "does not exist",
		},
		{
			name:       "splash missing",
			mutate:     func(s *model.RunSettings) { s.SplashFile += ".missing" },
			wantCode:   exitSplashMissing,
			wantStderr: "does not exist",
		},
		{
			name:       "no platforms",
			mutate:     func(s *model.RunSettings) {},
			wantCode:   exitNoPlatforms,
			wantStderr: "No cordova platforms found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProject(t)
			tt.mutate(&s)

			var stdout, stderr bytes.Buffer
			code := runOnce(context.Background(), s, true, false, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.wantStderr)
			}

			var got jsonSummary
			if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
				t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
			}
			if got.Error == "" {
				t.Errorf("summary has no error field:\n%s", stdout.String())
			}
		})
	}
}

func TestRunOnceJSONSuccess(t *testing.T) {
	s := newProject(t, "platforms/windows/images")

	var stdout, stderr bytes.Buffer
	if code := runOnce(context.Background(), s, true, false, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want nothing", stderr.String())
	}

	var got jsonSummary
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
	}
	if len(got.Created) != 10 || got.Error != "" {
		t.Errorf("summary = %+v", got)
	}
}

func TestRunOnceStatusLines(t *testing.T) {
	s := newProject(t)
	s.ConfigFile += ".missing"

	var stdout, stderr bytes.Buffer
	if code := runOnce(context.Background(), s, false, false, &stdout, &stderr); code != exitConfigMissing {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "does not exist") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestCheckUpdateUnconfigured(t *testing.T) {
	var out bytes.Buffer
	if err := checkUpdate(&out, model.Version); !errors.Is(err, errUpdateUnconfigured) {
		t.Errorf("checkUpdate() error = %v, want errUpdateUnconfigured", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q", out.String())
	}
}
