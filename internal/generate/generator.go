package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"splashgen/internal/crop"
	"splashgen/internal/model"
	"splashgen/internal/project"
	"splashgen/internal/report"
)

// Generator writes the splash files of active platforms.
type Generator struct {
	Master   string // Master splash image
	Cropper  crop.Cropper
	Reporter report.Reporter
	Summary  *report.Summary // Optional
}

// Generate crops one splash into the platform's asset folder, creating
// intermediate directories as needed. Errors are returned, never retried.
func (g *Generator) Generate(ctx context.Context, p model.ActivePlatform, s model.SplashSpec) error {
	src := project.Locate(g.Master, p.Name)
	dst := filepath.Join(p.Path, filepath.FromSlash(s.Name))

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.Name, err)
	}

	err := g.Cropper.Crop(ctx, crop.Request{
		Src:     src,
		Dst:     dst,
		Width:   s.Width,
		Height:  s.Height,
		Format:  "png",
		Quality: 1,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}

	g.Reporter.Success(s.Name + " created")
	if g.Summary != nil {
		g.Summary.AddCreated(report.File{
			Platform: p.Name,
			Name:     s.Name,
			Path:     dst,
			Width:    s.Width,
			Height:   s.Height,
			Source:   src,
		})
	}
	return nil
}

// Platform generates every splash of p concurrently and waits for all of
// them. A failed splash is reported and does not stop its siblings; the
// failures are returned in no particular order.
func (g *Generator) Platform(ctx context.Context, p model.ActivePlatform) []error {
	g.Reporter.Header("Generating splash screen for " + p.Name)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, s := range p.Splashes {
		wg.Add(1)
		go func(s model.SplashSpec) {
			defer wg.Done()
			err := g.Generate(ctx, p, s)
			if err == nil {
				return
			}
			g.Reporter.Failure(err.Error())
			if g.Summary != nil {
				g.Summary.AddFailure(report.Failure{Platform: p.Name, Name: s.Name, Error: err.Error()})
			}
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	return errs
}
