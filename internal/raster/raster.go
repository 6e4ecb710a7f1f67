// Package raster holds the pixel operations of the logo transform: pasting a
// source image through a mask onto a transparent canvas and trimming the
// canvas to its visible content.
package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Composite pastes src onto a fresh, fully transparent canvas of the same
// bounds, using m as a per-pixel opacity selector. A mask value of 0xff
// copies the source pixel unchanged, 0 leaves the canvas at (0,0,0,0), and
// anything in between scales every channel by m/0xff.
func Composite(src *image.NRGBA, m *image.Alpha) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := m.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			if a == 0xff {
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
				continue
			}
			for c := 0; c < 4; c++ {
				dst.Pix[di+c] = uint8((uint32(src.Pix[si+c])*uint32(a) + 0x7f) / 0xff)
			}
		}
	}
	return dst
}

// OpaqueBounds returns the smallest rectangle containing every pixel with
// non-zero alpha. ok is false when the image is fully transparent.
func OpaqueBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[row+(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return b, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Trim crops img to OpaqueBounds and returns the box used. A fully
// transparent image is returned unchanged, at its full size, with ok false.
func Trim(img *image.NRGBA) (out *image.NRGBA, box image.Rectangle, ok bool) {
	box, ok = OpaqueBounds(img)
	if !ok || box == img.Bounds() {
		return img, box, ok
	}
	return imaging.Crop(img, box), box, true
}

// HasTransparency reports whether any pixel of img is not fully opaque.
func HasTransparency(img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			if img.Pix[i+3] != 0xff {
				return true
			}
		}
	}
	return false
}
