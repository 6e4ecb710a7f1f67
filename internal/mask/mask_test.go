package mask

import (
	"image"
	"math"
	"testing"
)

func TestForBoundsSquare(t *testing.T) {
	c := ForBounds(image.Rect(0, 0, 200, 200))
	if c.Center != image.Pt(100, 100) {
		t.Errorf("center = %v, want (100,100)", c.Center)
	}
	if c.Radius != 95 {
		t.Errorf("radius = %d, want 95", c.Radius)
	}
	if c.Diameter() != 190 {
		t.Errorf("diameter = %d, want 190", c.Diameter())
	}
}

func TestForBoundsUsesSmallerDimension(t *testing.T) {
	c := ForBounds(image.Rect(0, 0, 301, 120))
	if c.Center != image.Pt(150, 60) {
		t.Errorf("center = %v, want (150,60)", c.Center)
	}
	if c.Radius != 55 {
		t.Errorf("radius = %d, want 55", c.Radius)
	}
}

func TestForBoundsOffsetOrigin(t *testing.T) {
	c := ForBounds(image.Rect(10, 20, 110, 120))
	if c.Center != image.Pt(60, 70) {
		t.Errorf("center = %v, want (60,70)", c.Center)
	}
}

func TestSmallImagesGiveEmptyCircle(t *testing.T) {
	for _, size := range []int{0, 1, 9, 10, 11} {
		c := ForBounds(image.Rect(0, 0, size, size))
		if !c.Empty() {
			t.Errorf("%dx%d: expected empty circle, got %v", size, size, c)
		}
		m := c.Render(image.Rect(0, 0, size, size))
		for i, a := range m.Pix {
			if a != Discard {
				t.Fatalf("%dx%d: pixel %d = %d, want discard", size, size, i, a)
			}
		}
	}
}

func TestRenderExtent(t *testing.T) {
	b := image.Rect(0, 0, 200, 200)
	m, c := New(b)

	got := retainedBounds(m)
	want := image.Rect(5, 5, 195, 195)
	if got != want {
		t.Errorf("retained bounds = %v, want %v", got, want)
	}
	if c.Bounds() != want {
		t.Errorf("circle bounds = %v, want %v", c.Bounds(), want)
	}

	// Centre rows and columns span the full diameter.
	for x := 5; x < 195; x++ {
		if m.AlphaAt(x, 100).A != Retain {
			t.Fatalf("pixel (%d,100) not retained", x)
		}
	}
	if m.AlphaAt(0, 0).A != Discard || m.AlphaAt(199, 199).A != Discard {
		t.Error("corners should be discarded")
	}
}

func TestRenderIsSymmetric(t *testing.T) {
	b := image.Rect(0, 0, 64, 64)
	m, _ := New(b)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			a := m.AlphaAt(x, y).A
			if a != m.AlphaAt(63-x, y).A || a != m.AlphaAt(x, 63-y).A || a != m.AlphaAt(y, x).A {
				t.Fatalf("mask not symmetric at (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderContainment(t *testing.T) {
	for _, sz := range []image.Point{{200, 200}, {123, 77}, {40, 90}, {12, 12}} {
		b := image.Rect(0, 0, sz.X, sz.Y)
		m, c := New(b)
		limit := float64(min(sz.X, sz.Y)/2-Inset) + 1
		for y := 0; y < sz.Y; y++ {
			for x := 0; x < sz.X; x++ {
				if m.AlphaAt(x, y).A == Discard {
					continue
				}
				d := math.Hypot(float64(x-c.Center.X), float64(y-c.Center.Y))
				if d > limit {
					t.Fatalf("%v: retained pixel (%d,%d) at distance %.2f > %.2f", sz, x, y, d, limit)
				}
			}
		}
	}
}

func TestPreview(t *testing.T) {
	m, _ := New(image.Rect(0, 0, 40, 40))
	g := Preview(m)
	if g.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Fatalf("preview bounds = %v", g.Bounds())
	}
	if g.GrayAt(20, 20).Y != 0xff {
		t.Errorf("centre = %d, want 255", g.GrayAt(20, 20).Y)
	}
	if g.GrayAt(0, 0).Y != 0 {
		t.Errorf("corner = %d, want 0", g.GrayAt(0, 0).Y)
	}
}

func retainedBounds(m *image.Alpha) image.Rectangle {
	var r image.Rectangle
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.AlphaAt(x, y).A != Discard {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
