// Package imageio decodes input images into 8-bit RGBA, inspects image
// headers and writes PNG output.
package imageio

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Formats beyond the ones imaging registers.
	_ "golang.org/x/image/webp"
)

// MaxPixels caps width*height of an input image before it is decoded.
const MaxPixels = 1 << 28

// Decoded is a source image normalised to non-premultiplied RGBA.
type Decoded struct {
	Image  *image.NRGBA // origin at (0,0); opaque alpha for formats without one
	Format string       // decoder name: "png", "jpeg", "gif", "webp", ...
	Width  int
	Height int
}

// Decode decodes an image from memory and converts it to NRGBA. EXIF
// orientation is applied, so Width and Height are the displayed size.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Decoded{
		Image:  nrgba,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
