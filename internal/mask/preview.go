package mask

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview converts a mask to a grayscale image (white = retained) so it can
// be written as an ordinary PNG and inspected.
func Preview(m *image.Alpha) *image.Gray {
	b := m.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), m, b.Min, draw.Src)
	return g
}
