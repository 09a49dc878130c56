package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"splashgen/internal/catalog"
	"splashgen/internal/generate"
	"splashgen/internal/model"
	"splashgen/internal/report"
	"splashgen/internal/settings"
	"splashgen/internal/tui"
	"splashgen/internal/watch"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Exit codes.
const (
	exitOK = iota
	exitError
	exitConfigMissing
	exitSplashMissing
	exitNoPlatforms
)

// Repository checked by --update. Set at build time with
// -ldflags "-X main.updateOwner=... -X main.updateRepo=...".
var (
	updateOwner = ""
	updateRepo  = ""
)

var errUpdateUnconfigured = errors.New("update check not configured for this build")

func checkUpdate(out io.Writer, currentVer string) error {
	if updateOwner == "" || updateRepo == "" {
		return errUpdateUnconfigured
	}
	githubTag := &latest.GithubTag{
		Owner:      updateOwner,
		Repository: updateRepo,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return fmt.Errorf("could not check for updates: %w", err)
	}

	if res.Outdated {
		fmt.Fprintf(out, "✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(out, "👉 Download it from https://github.com/%s/%s/releases\n", updateOwner, updateRepo)
	} else {
		fmt.Fprintf(out, "✅ You are using the latest version: %s\n", currentVer)
	}
	return nil
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: splashgen [options]\n\n")
		fmt.Fprintf(os.Stderr, "splashgen crops one master splash image into every splash screen\n")
		fmt.Fprintf(os.Stderr, "your Cordova platforms (ios, android, windows) expect.\n")
		fmt.Fprintf(os.Stderr, "A splash-<platform>.png next to the master replaces it for that platform.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  splashgen                          # Use config.xml and splash.png\n")
		fmt.Fprintf(os.Stderr, "  splashgen --splash art/launch.png  # Different master image\n")
		fmt.Fprintf(os.Stderr, "  splashgen --android-old            # Android platform older than cordova-android 7\n")
		fmt.Fprintf(os.Stderr, "  splashgen -w                       # Regenerate when the splash changes\n")
	}

	flags := settings.RegisterFlags(pflag.CommandLine)
	jsonFlag := pflag.BoolP("json", "j", false, "Print the run summary as JSON instead of status lines")
	interactiveFlag := pflag.BoolP("interactive", "i", false, "Show progress in an interactive view")
	watchFlag := pflag.BoolP("watch", "w", false, "Regenerate whenever the master splash or an override changes")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("splashgen version %s\n", model.Version)
		return
	}

	if *updateFlag {
		if err := checkUpdate(os.Stdout, model.Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		return
	}

	s, err := settings.Resolve(model.Options{}, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func(ctx context.Context) int {
		return runOnce(ctx, s, *jsonFlag, *interactiveFlag, os.Stdout, os.Stderr)
	}

	code := run(ctx)
	if *watchFlag && code == exitOK {
		code = runWatchMode(ctx, s, run)
	}
	stop()
	os.Exit(code)
}

// runOnce performs one generation pass and maps its outcome to an exit code.
// With jsonOut, stdout carries only the summary; failure lines still reach
// stderr.
func runOnce(ctx context.Context, s model.RunSettings, jsonOut, interactive bool, stdout, stderr io.Writer) int {
	var r report.Reporter = report.NewConsole(stdout)
	if jsonOut {
		r = report.FailuresOnly(report.NewConsole(stderr))
	}

	o, err := generate.NewOrchestrator(s, r)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	var summary *report.Summary
	if interactive && !jsonOut {
		summary, err = tui.Run(ctx, func(ctx context.Context, r report.Reporter) (*report.Summary, error) {
			o.Reporter = r
			return o.Run(ctx)
		})
	} else {
		summary, err = o.Run(ctx)
		if !jsonOut {
			fmt.Fprintln(stdout)
		}
	}

	if jsonOut && summary != nil {
		summary.SetError(err)
		if err := summary.WriteJSON(stdout); err != nil {
			fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return exitError
		}
	}

	return exitCode(err, stderr)
}

// exitCode maps err to an exit code. Pre-flight failures already printed
// their own status line, anything else is printed here.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, generate.ErrConfigMissing):
		return exitConfigMissing
	case errors.Is(err, generate.ErrSplashMissing):
		return exitSplashMissing
	case errors.Is(err, generate.ErrNoPlatforms):
		return exitNoPlatforms
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

func runWatchMode(ctx context.Context, s model.RunSettings, run func(context.Context) int) int {
	var names []string
	for _, p := range catalog.Build(s) {
		names = append(names, p.Name)
	}

	w, err := watch.New(s.SplashFile, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	if err := w.Run(ctx, func(ctx context.Context) { run(ctx) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
