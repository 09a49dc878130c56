// Package project finds which platforms are present in a Cordova project
// and which master image each platform should be cropped from.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"splashgen/internal/model"
	"splashgen/internal/report"
)

// ErrNoPlatforms is returned by Scan when no platform folder matched.
var ErrNoPlatforms = errors.New("no platforms found")

// Scan resolves the asset folder of every platform in catalog order and
// drops the platforms whose folder does not exist. filepath.Glob returns
// matches in lexical order, so the lexically smallest folder wins.
//
// A malformed pattern is reported and the platform treated as absent.
func Scan(platforms []model.PlatformSpec, r report.Reporter) ([]model.ActivePlatform, error) {
	var active []model.ActivePlatform

	for _, p := range platforms {
		path, err := firstDir(p.Pattern)
		if err != nil {
			r.Failure(fmt.Sprintf("%s: invalid asset pattern %q: %v", p.Name, p.Pattern, err))
			continue
		}
		if path == "" {
			continue
		}
		active = append(active, model.ActivePlatform{PlatformSpec: p, Path: path})
	}

	if len(active) == 0 {
		r.Failure("No cordova platforms found. " +
			"Make sure you are in the root folder of your Cordova project " +
			"and add platforms with 'cordova platform add'")
		return nil, ErrNoPlatforms
	}

	names := make([]string, len(active))
	for i, a := range active {
		names[i] = a.Name
	}
	r.Success("platforms found: " + strings.Join(names, ", "))

	return active, nil
}

// firstDir returns the first directory matching pattern, or "" if none does.
func firstDir(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		if model.DirExists(m) {
			return m, nil
		}
	}
	return "", nil
}
