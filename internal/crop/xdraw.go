package crop

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// XDraw crops in-process with golang.org/x/image/draw's Catmull-Rom scaler.
// It only writes PNG and JPEG.
type XDraw struct{}

func (XDraw) Crop(ctx context.Context, req Request) error {
	if err := req.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(req.Src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", req.Src, err)
	}
	src, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", req.Src, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, req.Width, req.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), req.Width, req.Height), draw.Src, nil)

	return writeImage(req.Dst, func(w io.Writer) error {
		switch req.format() {
		case "png":
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			return enc.Encode(w, dst)
		case "jpg", "jpeg":
			quality := int(req.Quality * 100)
			if quality <= 0 || quality > 100 {
				quality = 100
			}
			return jpeg.Encode(w, dst, &jpeg.Options{Quality: quality})
		default:
			return fmt.Errorf("unsupported output format %q", req.Format)
		}
	})
}
