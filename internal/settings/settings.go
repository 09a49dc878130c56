// Package settings resolves the RunSettings of one run. Later layers win:
// built-in defaults, the YAML settings file, command-line flags, then
// programmatic options.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"splashgen/internal/crop"
	"splashgen/internal/model"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when --settings is not given.
const DefaultFile = ".splashgen.yaml"

// Defaults returns the built-in settings.
func Defaults() model.RunSettings {
	return model.RunSettings{
		ConfigFile: "config.xml",
		SplashFile: "splash.png",
		Backend:    crop.DefaultBackend,
	}
}

// File mirrors the settings file. Absent keys stay nil.
type File struct {
	Config     *string `yaml:"config"`
	Splash     *string `yaml:"splash"`
	XcodeOld   *bool   `yaml:"xcode-old"`
	AndroidOld *bool   `yaml:"android-old"`
	Backend    *string `yaml:"backend"`
}

// LoadFile reads a settings file. A missing file yields an empty File
// unless required is set.
func LoadFile(path string, required bool) (File, error) {
	var f File
	data, err := os.ReadFile(model.ExpandHome(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return f, nil
		}
		return f, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return f, nil
}

// Flags holds the flags that feed RunSettings.
type Flags struct {
	fs *pflag.FlagSet

	Settings   *string
	Config     *string
	Splash     *string
	XcodeOld   *bool
	AndroidOld *bool
	Backend    *string
}

// RegisterFlags defines the settings flags on fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Defaults()
	return &Flags{
		fs:         fs,
		Settings:   fs.StringP("settings", "s", DefaultFile, "YAML settings file"),
		Config:     fs.String("config", d.ConfigFile, "Cordova config file; platforms are looked up next to it"),
		Splash:     fs.String("splash", d.SplashFile, "Master splash image"),
		XcodeOld:   fs.Bool("xcode-old", false, "Use the legacy iOS folder (Resources/splash)"),
		AndroidOld: fs.Bool("android-old", false, "Use the legacy Android folder (res)"),
		Backend:    fs.StringP("backend", "b", d.Backend, "Crop backend: imaging, xdraw or magick"),
	}
}

func (f *Flags) changed(name string) bool {
	return f.fs.Changed(name)
}

// Resolve layers defaults, the settings file, changed flags and opts.
// flags may be nil when no command line is involved.
func Resolve(opts model.Options, flags *Flags) (model.RunSettings, error) {
	s := Defaults()

	// A stray value such as "--xcode-old false" ends up here.
	if flags != nil && flags.fs.NArg() > 0 {
		return s, fmt.Errorf("unexpected argument %q (boolean flags take the form --flag=false)", flags.fs.Arg(0))
	}

	path, required := DefaultFile, false
	if flags != nil && flags.changed("settings") {
		path, required = *flags.Settings, true
	}
	file, err := LoadFile(path, required)
	if err != nil {
		return s, err
	}
	apply(&s, file.Config, file.Splash, file.XcodeOld, file.AndroidOld, file.Backend)

	if flags != nil {
		apply(&s,
			flagString(flags, "config", flags.Config),
			flagString(flags, "splash", flags.Splash),
			flagBool(flags, "xcode-old", flags.XcodeOld),
			flagBool(flags, "android-old", flags.AndroidOld),
			flagString(flags, "backend", flags.Backend),
		)
	}

	apply(&s, opts.Config, opts.Splash, opts.XcodeOld, opts.AndroidOld, opts.Backend)

	s.ConfigFile = model.ExpandHome(s.ConfigFile)
	s.SplashFile = model.ExpandHome(s.SplashFile)

	if _, err := crop.New(s.Backend); err != nil {
		return s, err
	}
	return s, nil
}

func apply(s *model.RunSettings, config, splash *string, xcodeOld, androidOld *bool, backend *string) {
	if config != nil && *config != "" {
		s.ConfigFile = *config
	}
	if splash != nil && *splash != "" {
		s.SplashFile = *splash
	}
	if xcodeOld != nil {
		s.OldXcodePath = *xcodeOld
	}
	if androidOld != nil {
		s.OldAndroidPath = *androidOld
	}
	if backend != nil && *backend != "" {
		s.Backend = *backend
	}
}

func flagString(f *Flags, name string, v *string) *string {
	if f.changed(name) {
		return v
	}
	return nil
}

func flagBool(f *Flags, name string, v *bool) *bool {
	if f.changed(name) {
		return v
	}
	return nil
}
