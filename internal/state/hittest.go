package state

import "math/rand"

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Square returns the size×size rect anchored at origin.
func Square(origin Point, size float32) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size, Height: size}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// HitTest reports whether a touch at p lands on a target of the given size
// anchored at origin.
func HitTest(p, origin Point, size float32) bool {
	return Square(origin, size).Contains(p)
}

// RandomOrigin picks a uniformly random origin for a size×size square so the
// square stays inside the canvas. A canvas smaller than the square pins that
// axis to 0.
func RandomOrigin(rnd *rand.Rand, canvas Size, size float32) Point {
	maxX := canvas.Width - size
	maxY := canvas.Height - size
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return Point{
		X: rnd.Float32() * maxX,
		Y: rnd.Float32() * maxY,
	}
}
