package model

// Version is the splashgen release, compared against the latest GitHub tag by --update.
const Version = "1.4.0"

// SplashSpec describes one splash file a platform expects.
type SplashSpec struct {
	Name   string `json:"name"`   // Relative file name, may contain subdirectories (e.g. drawable-land-hdpi/screen.png)
	Width  int    `json:"width"`  // Target width in pixels
	Height int    `json:"height"` // Target height in pixels
}

// PlatformSpec lists where a platform keeps its splash assets and which files it needs.
type PlatformSpec struct {
	Name     string       `json:"name"`    // "ios", "android" or "windows"
	Pattern  string       `json:"pattern"` // Glob matched against the project to find the asset folder
	Splashes []SplashSpec `json:"splashes"`
}

// ActivePlatform is a PlatformSpec whose Pattern matched a folder in the project.
type ActivePlatform struct {
	PlatformSpec
	Path string `json:"path"` // First folder matched by Pattern
}

// RunSettings is resolved once per run and read-only afterwards.
type RunSettings struct {
	ConfigFile     string `json:"config" yaml:"config"`
	SplashFile     string `json:"splash" yaml:"splash"`
	OldXcodePath   bool   `json:"xcodeOld" yaml:"xcode-old"`
	OldAndroidPath bool   `json:"androidOld" yaml:"android-old"`
	Backend        string `json:"backend" yaml:"backend"` // Crop backend name, see crop.New
}

// Options are programmatic overrides. Nil fields leave the lower layers in charge.
type Options struct {
	Config     *string
	Splash     *string
	XcodeOld   *bool
	AndroidOld *bool
	Backend    *string
}
