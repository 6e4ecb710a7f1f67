package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo contains metadata about an encoded image.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	ColorModel string
	ICC        []byte // extracted ICC profile, nil if absent
}

// GetInfo reads image metadata and extracts any ICC profile without fully decoding the image.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	icc, err := EmbeddedICC(format, data)
	if err != nil {
		return nil, fmt.Errorf("extracting ICC: %w", err)
	}

	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: colorModelName(cfg.ColorModel),
		ICC:        icc,
	}, nil
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	}
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("Paletted (%d colors)", len(p))
	}
	return "unknown"
}
