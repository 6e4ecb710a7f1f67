// Package mask builds the circular retain-mask applied to logo images.
//
// The mask is always a hard-edged disk centred on the image and sized from
// the smaller image dimension, shrunk by a fixed inset. A pixel belongs to the
// disk when its centre lies within the disk radius of the image centre.
package mask

import (
	"fmt"
	"image"
	"image/color"
)

// Inset is the ring, in pixels, trimmed from the inscribed circle to drop
// anti-aliasing and checkerboard bleed at the badge edge. It does not scale
// with the image.
const Inset = 5

const (
	// Retain marks a mask pixel whose source pixel is kept.
	Retain = 0xff
	// Discard marks a mask pixel that stays transparent.
	Discard = 0x00
)

// Circle is the disk a mask is built from. Radius is already reduced by
// Inset; a Radius of zero or less describes an empty disk.
type Circle struct {
	Center image.Point
	Radius int
}

// ForBounds returns the circle used for an image with bounds b: centred at
// the floor of the midpoint, radius half the smaller dimension minus Inset.
func ForBounds(b image.Rectangle) Circle {
	w, h := b.Dx(), b.Dy()
	return Circle{
		Center: image.Pt(b.Min.X+w/2, b.Min.Y+h/2),
		Radius: min(w, h)/2 - Inset,
	}
}

// Empty reports whether the disk covers no pixel at all.
func (c Circle) Empty() bool {
	return c.Radius <= 0
}

// Diameter is the width of the disk in pixels.
func (c Circle) Diameter() int {
	if c.Empty() {
		return 0
	}
	return 2 * c.Radius
}

// Contains reports whether pixel (x, y) is inside the disk, boundary
// included. Distances are measured from the pixel centre and compared in
// doubled integer units so no rounding is involved.
func (c Circle) Contains(x, y int) bool {
	if c.Empty() {
		return false
	}
	dx := int64(2*(x-c.Center.X) + 1)
	dy := int64(2*(y-c.Center.Y) + 1)
	r2 := int64(2*c.Radius) * int64(2*c.Radius)
	return dx*dx+dy*dy <= r2
}

// Bounds is the smallest rectangle holding every pixel of the disk.
func (c Circle) Bounds() image.Rectangle {
	if c.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		c.Center.X-c.Radius, c.Center.Y-c.Radius,
		c.Center.X+c.Radius, c.Center.Y+c.Radius,
	)
}

func (c Circle) String() string {
	return fmt.Sprintf("center (%d,%d) radius %d", c.Center.X, c.Center.Y, c.Radius)
}

// Render rasterises the disk into a single-channel mask covering b.
// Pixels inside the disk are Retain, all others Discard.
func (c Circle) Render(b image.Rectangle) *image.Alpha {
	m := image.NewAlpha(b)
	r := c.Bounds().Intersect(b)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.Contains(x, y) {
				m.SetAlpha(x, y, color.Alpha{A: Retain})
			}
		}
	}
	return m
}

// New builds the mask for an image with bounds b.
func New(b image.Rectangle) (*image.Alpha, Circle) {
	c := ForBounds(b)
	return c.Render(b), c
}
