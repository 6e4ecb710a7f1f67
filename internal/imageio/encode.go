package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncoderOptions controls PNG encoding.
type EncoderOptions struct {
	Compression png.CompressionLevel // zero value is png.DefaultCompression
}

// ParseCompression converts a compression name to a PNG compression level.
// The empty string selects the default level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown PNG compression: %q", s)
	}
}

// EncodePNG encodes img as PNG. NRGBA input keeps its alpha channel; an
// image whose pixels are all opaque is written without one.
func EncodePNG(img image.Image, opts EncoderOptions) ([]byte, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("cannot encode empty image %v", img.Bounds())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(opts.Compression)); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
