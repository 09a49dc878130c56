package catalog

import (
	"path/filepath"
	"strings"
	"testing"

	"splashgen/internal/model"
)

func TestBuildTables(t *testing.T) {
	platforms := Build(model.RunSettings{ConfigFile: "config.xml"})

	want := []struct {
		name  string
		count int
	}{
		{"ios", 16},
		{"android", 12},
		{"windows", 10},
	}
	if len(platforms) != len(want) {
		t.Fatalf("got %d platforms, want %d", len(platforms), len(want))
	}
	for i, w := range want {
		if platforms[i].Name != w.name {
			t.Errorf("platform %d = %q, want %q", i, platforms[i].Name, w.name)
		}
		if got := len(platforms[i].Splashes); got != w.count {
			t.Errorf("%s has %d splashes, want %d", w.name, got, w.count)
		}
	}

	if err := Validate(platforms); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBuildSpotCheckSizes(t *testing.T) {
	platforms := Build(model.RunSettings{ConfigFile: "config.xml"})

	tests := []struct {
		platform string
		splash   string
		width    int
		height   int
	}{
		{"ios", "Default~iphone.png", 320, 480},
		{"ios", "Default-Landscape-2688h.png", 2688, 1242},
		{"ios", "Default-Landscape@2x~ipad.png", 2048, 1536},
		{"android", "drawable-land-xxxhdpi/screen.png", 1920, 1280},
		{"android", "drawable-port-ldpi/screen.png", 200, 320},
		{"windows", "SplashScreen.scale-400.png", 2480, 1200},
		{"windows", "SplashScreenPhone.scale-240.png", 1152, 1920},
	}

	for _, tt := range tests {
		t.Run(tt.platform+"/"+tt.splash, func(t *testing.T) {
			p, ok := Lookup(platforms, tt.platform)
			if !ok {
				t.Fatalf("platform %q not in catalog", tt.platform)
			}
			for _, s := range p.Splashes {
				if s.Name == tt.splash {
					if s.Width != tt.width || s.Height != tt.height {
						t.Errorf("size = %dx%d, want %dx%d", s.Width, s.Height, tt.width, tt.height)
					}
					return
				}
			}
			t.Errorf("splash %q not found", tt.splash)
		})
	}
}

func TestBuildLegacyPaths(t *testing.T) {
	tests := []struct {
		name     string
		settings model.RunSettings
		platform string
		suffix   string
	}{
		{"modern xcode", model.RunSettings{ConfigFile: "config.xml"}, "ios", XcodeFolder},
		{"old xcode", model.RunSettings{ConfigFile: "config.xml", OldXcodePath: true}, "ios", XcodeFolderOld},
		{"modern android", model.RunSettings{ConfigFile: "config.xml"}, "android", AndroidFolder},
		{"old android", model.RunSettings{ConfigFile: "config.xml", OldAndroidPath: true}, "android", "android/" + AndroidFolderOld},
		{"windows", model.RunSettings{ConfigFile: "config.xml", OldXcodePath: true}, "windows", "windows/" + WindowsFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := Lookup(Build(tt.settings), tt.platform)
			if got := filepath.ToSlash(p.Pattern); !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("pattern %q does not end in %q", got, tt.suffix)
			}
		})
	}
}

func TestBuildRootsAtConfigDir(t *testing.T) {
	p, _ := Lookup(Build(model.RunSettings{ConfigFile: filepath.Join("app", "config.xml")}), "windows")
	want := filepath.Join("app", "platforms", "windows", "images")
	if p.Pattern != want {
		t.Errorf("pattern = %q, want %q", p.Pattern, want)
	}
}

func TestBuildReturnsCopies(t *testing.T) {
	first := Build(model.RunSettings{ConfigFile: "config.xml"})
	first[0].Splashes[0].Width = 1

	second := Build(model.RunSettings{ConfigFile: "config.xml"})
	if second[0].Splashes[0].Width != 320 {
		t.Errorf("table mutated through Build result: width = %d", second[0].Splashes[0].Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		splash  []model.SplashSpec
		wantErr bool
	}{
		{"ok", []model.SplashSpec{{Name: "a.png", Width: 1, Height: 1}}, false},
		{"empty name", []model.SplashSpec{{Width: 1, Height: 1}}, true},
		{"duplicate", []model.SplashSpec{{Name: "a.png", Width: 1, Height: 1}, {Name: "a.png", Width: 2, Height: 2}}, true},
		{"zero width", []model.SplashSpec{{Name: "a.png", Height: 1}}, true},
		{"negative height", []model.SplashSpec{{Name: "a.png", Width: 1, Height: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]model.PlatformSpec{{Name: "x", Splashes: tt.splash}})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
