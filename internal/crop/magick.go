package crop

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Magick shells out to ImageMagick. Binary is the executable to run, see
// NewMagick for how it is picked by default.
type Magick struct {
	Binary string
}

// NewMagick returns a Magick backend running binary, defaulting to
// "magick" when ImageMagick 7 is installed and "convert" otherwise.
func NewMagick(binary string) Magick {
	if binary == "" {
		binary = "convert"
		if _, err := exec.LookPath("magick"); err == nil {
			binary = "magick"
		}
	}
	return Magick{Binary: binary}
}

// Args returns the ImageMagick arguments for req: resize to cover the
// target, then crop the centered window.
func (m Magick) Args(req Request) []string {
	size := strconv.Itoa(req.Width) + "x" + strconv.Itoa(req.Height)
	quality := int(req.Quality * 100)
	if quality <= 0 || quality > 100 {
		quality = 100
	}
	return []string{
		req.Src,
		"-auto-orient",
		"-resize", size + "^",
		"-gravity", "center",
		"-crop", size + "+0+0",
		"+repage",
		"-quality", strconv.Itoa(quality),
		req.format() + ":" + req.Dst,
	}
}

func (m Magick) Crop(ctx context.Context, req Request) error {
	if err := req.validate(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, m.Binary, m.Args(req)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", m.Binary, err, msg)
		}
		return fmt.Errorf("%s: %w", m.Binary, err)
	}
	return nil
}
