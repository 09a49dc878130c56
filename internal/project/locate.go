package project

import (
	"path/filepath"

	"splashgen/internal/model"
)

// OverridePath returns the platform-specific replacement for master:
// "splash.png" becomes "splash-ios.png".
func OverridePath(master, platform string) string {
	ext := filepath.Ext(master)
	return master[:len(master)-len(ext)] + "-" + platform + ext
}

// Locate picks the image a platform's splashes are cropped from: the
// override when it exists, otherwise the master.
func Locate(master, platform string) string {
	if override := OverridePath(master, platform); model.FileExists(override) {
		return override
	}
	return master
}
