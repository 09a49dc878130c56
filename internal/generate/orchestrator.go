// Package generate drives a run: pre-flight checks, platform discovery,
// then splash generation platform by platform.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"splashgen/internal/catalog"
	"splashgen/internal/crop"
	"splashgen/internal/model"
	"splashgen/internal/project"
	"splashgen/internal/report"
	"splashgen/internal/settings"

	"github.com/spf13/pflag"
)

// Pre-flight failures. Each one ends the run before anything is generated.
var (
	ErrConfigMissing = errors.New("config file missing")
	ErrSplashMissing = errors.New("splash file missing")
	ErrNoPlatforms   = project.ErrNoPlatforms
)

// Orchestrator runs one generation pass with fixed settings.
type Orchestrator struct {
	Settings model.RunSettings
	Cropper  crop.Cropper
	Reporter report.Reporter

	// Catalog returns the known platforms, catalog.Build when nil.
	Catalog func(model.RunSettings) []model.PlatformSpec
}

// NewOrchestrator returns an Orchestrator using the crop backend named in s.
func NewOrchestrator(s model.RunSettings, r report.Reporter) (*Orchestrator, error) {
	c, err := crop.New(s.Backend)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{Settings: s, Cropper: c, Reporter: r}, nil
}

// Run checks the project and generates every splash of every active
// platform. Platforms are processed one after the other in catalog order,
// the splashes of one platform concurrently.
//
// Only pre-flight failures, an invalid catalog and cancellation are
// returned. Failed splashes are reported and recorded in the Summary.
func (o *Orchestrator) Run(ctx context.Context) (*report.Summary, error) {
	summary := &report.Summary{}
	r := o.Reporter
	s := o.Settings

	r.Header("Checking Project & Splash")

	if !model.FileExists(s.ConfigFile) {
		r.Failure("cordova's " + s.ConfigFile + " does not exist")
		return summary, ErrConfigMissing
	}
	r.Success(s.ConfigFile + " exists")

	if !model.FileExists(s.SplashFile) {
		r.Failure(s.SplashFile + " does not exist")
		return summary, ErrSplashMissing
	}
	r.Success(s.SplashFile + " exists")

	build := o.Catalog
	if build == nil {
		build = catalog.Build
	}
	platforms := build(s)
	if err := catalog.Validate(platforms); err != nil {
		r.Failure("invalid platform catalog: " + err.Error())
		return summary, fmt.Errorf("invalid platform catalog: %w", err)
	}

	active, err := project.Scan(platforms, r)
	if err != nil {
		return summary, err
	}

	g := &Generator{
		Master:   s.SplashFile,
		Cropper:  o.Cropper,
		Reporter: r,
		Summary:  summary,
	}
	for _, p := range active {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.AddPlatform(p.Name)
		g.Platform(ctx, p)
	}
	// Canceled while the last platform was generating.
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	return summary, nil
}

// Run is the programmatic entry point. args are command-line flags
// (--config, --splash, --xcode-old, --android-old, --backend, --settings);
// opts take precedence over them. Status lines go to out.
func Run(ctx context.Context, opts model.Options, args []string, out io.Writer) (*report.Summary, error) {
	fs := pflag.NewFlagSet("splashgen", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := settings.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	s, err := settings.Resolve(opts, flags)
	if err != nil {
		return nil, err
	}

	o, err := NewOrchestrator(s, report.NewConsole(out))
	if err != nil {
		return nil, err
	}
	return o.Run(ctx)
}
