package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a size x size box centered on p.
func CenteredRect(p dmath.Vec2, size float64) Rect {
	return Rect{X: p.X - size/2, Y: p.Y - size/2, W: size, H: size}
}

// Overlaps reports whether the two boxes share any area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the midpoint of the box.
func (r Rect) Center() dmath.Vec2 {
	return dmath.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// OutOfBounds reports whether p lies outside the w x h arena extended by
// margin on every side. A zero-sized arena has no bounds.
func OutOfBounds(p dmath.Vec2, w, h, margin float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return p.X < -margin || p.Y < -margin || p.X > w+margin || p.Y > h+margin
}
