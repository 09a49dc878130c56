// Package catalog holds the static table of supported platforms and the
// splash files each one expects.
package catalog

import (
	"fmt"
	"path/filepath"

	"splashgen/internal/model"
)

// Asset folders relative to a platform directory.
const (
	XcodeFolder        = "Images.xcassets/LaunchImage.launchimage"
	XcodeFolderOld     = "Resources/splash"
	AndroidFolder      = "app/src/main/res"
	AndroidFolderOld   = "res"
	WindowsFolder      = "images"
	platformsDirectory = "platforms"
)

var iosSplashes = []model.SplashSpec{
	// iPhone
	{Name: "Default~iphone.png", Width: 320, Height: 480},
	{Name: "Default@2x~iphone.png", Width: 640, Height: 960},
	{Name: "Default-568h@2x~iphone.png", Width: 640, Height: 1136},
	{Name: "Default-667h.png", Width: 750, Height: 1334},
	{Name: "Default-736h.png", Width: 1242, Height: 2208},
	{Name: "Default-Landscape-736h.png", Width: 2208, Height: 1242},
	{Name: "Default-2436h.png", Width: 1125, Height: 2436},
	{Name: "Default-Landscape-2436h.png", Width: 2436, Height: 1125},
	{Name: "Default-2688h.png", Width: 1242, Height: 2688},
	{Name: "Default-Landscape-2688h.png", Width: 2688, Height: 1242},
	{Name: "Default-1792h.png", Width: 828, Height: 1792},
	{Name: "Default-Landscape-1792h.png", Width: 1792, Height: 828},
	// iPad
	{Name: "Default-Portrait~ipad.png", Width: 768, Height: 1024},
	{Name: "Default-Portrait@2x~ipad.png", Width: 1536, Height: 2048},
	{Name: "Default-Landscape~ipad.png", Width: 1024, Height: 768},
	{Name: "Default-Landscape@2x~ipad.png", Width: 2048, Height: 1536},
}

var androidSplashes = []model.SplashSpec{
	// Landscape
	{Name: "drawable-land-ldpi/screen.png", Width: 320, Height: 200},
	{Name: "drawable-land-mdpi/screen.png", Width: 480, Height: 320},
	{Name: "drawable-land-hdpi/screen.png", Width: 800, Height: 480},
	{Name: "drawable-land-xhdpi/screen.png", Width: 1280, Height: 720},
	{Name: "drawable-land-xxhdpi/screen.png", Width: 1600, Height: 960},
	{Name: "drawable-land-xxxhdpi/screen.png", Width: 1920, Height: 1280},
	// Portrait
	{Name: "drawable-port-ldpi/screen.png", Width: 200, Height: 320},
	{Name: "drawable-port-mdpi/screen.png", Width: 320, Height: 480},
	{Name: "drawable-port-hdpi/screen.png", Width: 480, Height: 800},
	{Name: "drawable-port-xhdpi/screen.png", Width: 720, Height: 1280},
	{Name: "drawable-port-xxhdpi/screen.png", Width: 960, Height: 1600},
	{Name: "drawable-port-xxxhdpi/screen.png", Width: 1280, Height: 1920},
}

var windowsSplashes = []model.SplashSpec{
	// Landscape
	{Name: "SplashScreen.scale-100.png", Width: 620, Height: 300},
	{Name: "SplashScreen.scale-125.png", Width: 775, Height: 375},
	{Name: "SplashScreen.scale-140.png", Width: 868, Height: 420},
	{Name: "SplashScreen.scale-150.png", Width: 930, Height: 450},
	{Name: "SplashScreen.scale-180.png", Width: 1116, Height: 540},
	{Name: "SplashScreen.scale-200.png", Width: 1240, Height: 600},
	{Name: "SplashScreen.scale-400.png", Width: 2480, Height: 1200},
	// Portrait
	{Name: "SplashScreenPhone.scale-240.png", Width: 1152, Height: 1920},
	{Name: "SplashScreenPhone.scale-140.png", Width: 672, Height: 1120},
	{Name: "SplashScreenPhone.scale-100.png", Width: 480, Height: 800},
}

// Build returns the known platforms in catalog order (ios, android, windows).
// Patterns are rooted at the directory holding the config file.
func Build(settings model.RunSettings) []model.PlatformSpec {
	root := filepath.Dir(settings.ConfigFile)

	xcodeFolder := XcodeFolder
	if settings.OldXcodePath {
		xcodeFolder = XcodeFolderOld
	}
	androidFolder := AndroidFolder
	if settings.OldAndroidPath {
		androidFolder = AndroidFolderOld
	}

	return []model.PlatformSpec{
		{
			Name:     "ios",
			Pattern:  filepath.Join(root, platformsDirectory, "ios", "*", filepath.FromSlash(xcodeFolder)),
			Splashes: clone(iosSplashes),
		},
		{
			Name:     "android",
			Pattern:  filepath.Join(root, platformsDirectory, "android", filepath.FromSlash(androidFolder)),
			Splashes: clone(androidSplashes),
		},
		{
			Name:     "windows",
			Pattern:  filepath.Join(root, platformsDirectory, "windows", WindowsFolder),
			Splashes: clone(windowsSplashes),
		},
	}
}

// Lookup returns the platform with the given name.
func Lookup(platforms []model.PlatformSpec, name string) (model.PlatformSpec, bool) {
	for _, p := range platforms {
		if p.Name == name {
			return p, true
		}
	}
	return model.PlatformSpec{}, false
}

// Validate checks that every splash has a unique, non-empty name within its
// platform and a positive size.
func Validate(platforms []model.PlatformSpec) error {
	for _, p := range platforms {
		seen := make(map[string]bool, len(p.Splashes))
		for _, s := range p.Splashes {
			if s.Name == "" {
				return fmt.Errorf("%s: splash with empty name", p.Name)
			}
			if seen[s.Name] {
				return fmt.Errorf("%s: duplicate splash %q", p.Name, s.Name)
			}
			seen[s.Name] = true
			if s.Width <= 0 || s.Height <= 0 {
				return fmt.Errorf("%s: %s has invalid size %dx%d", p.Name, s.Name, s.Width, s.Height)
			}
		}
	}
	return nil
}

// callers may mutate what Build returns without touching the tables
func clone(s []model.SplashSpec) []model.SplashSpec {
	return append([]model.SplashSpec(nil), s...)
}
