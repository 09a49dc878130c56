// Package crop scales a source image to cover a target size and cuts the
// centered window out of it, the way ImageMagick's resize-then-crop does.
package crop

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"sort"
	"strings"
)

// Request describes one crop.
type Request struct {
	Src     string
	Dst     string
	Width   int
	Height  int
	Format  string  // Output format, "png" unless stated otherwise
	Quality float64 // 0..1, 1 is maximum fidelity
}

func (r Request) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid target size %dx%d", r.Width, r.Height)
	}
	if r.Src == "" || r.Dst == "" {
		return fmt.Errorf("source and destination are required")
	}
	return nil
}

func (r Request) format() string {
	if r.Format == "" {
		return "png"
	}
	return strings.ToLower(r.Format)
}

// Cropper produces Dst from Src at exactly Width x Height.
type Cropper interface {
	Crop(ctx context.Context, req Request) error
}

// DefaultBackend is used when no backend is configured.
const DefaultBackend = "imaging"

var backends = map[string]func() Cropper{
	"imaging": func() Cropper { return Imaging{} },
	"xdraw":   func() Cropper { return XDraw{} },
	"magick":  func() Cropper { return NewMagick("") },
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the backend registered under name. An empty name selects
// DefaultBackend.
func New(name string) (Cropper, error) {
	if name == "" {
		name = DefaultBackend
	}
	mk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown crop backend %q (use one of %s)", name, strings.Join(Backends(), ", "))
	}
	return mk(), nil
}

// coverRect returns the centered region of src with the aspect ratio of
// width x height, so that scaling it fills the target without distortion.
func coverRect(src image.Rectangle, width, height int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	// compare sw/sh with width/height without floats
	if sw*height > sh*width {
		cw := sh * width / height
		x := src.Min.X + (sw-cw)/2
		return image.Rect(x, src.Min.Y, x+cw, src.Max.Y)
	}
	ch := sw * height / width
	y := src.Min.Y + (sh-ch)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+ch)
}

// writeImage creates dst and fills it with encode. A failed encode leaves
// no partial file behind.
func writeImage(dst string, encode func(io.Writer) error) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}
