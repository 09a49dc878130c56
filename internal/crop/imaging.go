package crop

import (
	"context"
	"fmt"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Imaging crops in-process with github.com/disintegration/imaging.
type Imaging struct{}

func (Imaging) Crop(ctx context.Context, req Request) error {
	if err := req.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := imaging.FormatFromExtension("." + req.format())
	if err != nil {
		return fmt.Errorf("output format %q: %w", req.Format, err)
	}

	src, err := imaging.Open(req.Src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", req.Src, err)
	}

	dst := imaging.Fill(src, req.Width, req.Height, imaging.Center, imaging.Lanczos)

	return writeImage(req.Dst, func(w io.Writer) error {
		if err := imaging.Encode(w, dst, format, encodeOptions(req)...); err != nil {
			return fmt.Errorf("failed to encode %s: %w", req.Dst, err)
		}
		return nil
	})
}

func encodeOptions(req Request) []imaging.EncodeOption {
	quality := int(req.Quality * 100)
	if quality <= 0 || quality > 100 {
		quality = 100
	}
	// PNG is lossless whatever the level; spend the time on size.
	return []imaging.EncodeOption{
		imaging.JPEGQuality(quality),
		imaging.PNGCompressionLevel(png.BestCompression),
	}
}
