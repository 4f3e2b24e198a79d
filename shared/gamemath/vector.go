// Package gamemath provides pure geometry used by the simulation. Nothing
// here touches the ECS world.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Right is the default facing.
var Right = dmath.NewVec2(1, 0)

// Length returns the magnitude of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize returns v scaled to unit length. ok is false for a zero vector.
func Normalize(v dmath.Vec2) (dmath.Vec2, bool) {
	l := Length(v)
	if l == 0 {
		return dmath.Vec2{}, false
	}
	return dmath.NewVec2(v.X/l, v.Y/l), true
}

// Direction returns the unit vector from a to b, falling back to fallback
// when the points coincide.
func Direction(from, to, fallback dmath.Vec2) dmath.Vec2 {
	if d, ok := Normalize(dmath.NewVec2(to.X-from.X, to.Y-from.Y)); ok {
		return d
	}
	return fallback
}

// Scale multiplies v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.NewVec2(v.X*s, v.Y*s)
}

// Translate returns p moved by v*dt.
func Translate(p, v dmath.Vec2, dt float64) dmath.Vec2 {
	return dmath.NewVec2(p.X+v.X*dt, p.Y+v.Y*dt)
}

// FromAngle returns the unit vector at angle radians.
func FromAngle(angle float64) dmath.Vec2 {
	return dmath.NewVec2(math.Cos(angle), math.Sin(angle))
}

// Angle returns the heading of v in radians.
func Angle(v dmath.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Spread returns n unit vectors evenly spaced around the circle starting at
// phase radians.
func Spread(n int, phase float64) []dmath.Vec2 {
	if n <= 0 {
		return nil
	}
	dirs := make([]dmath.Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range dirs {
		dirs[i] = FromAngle(phase + step*float64(i))
	}
	return dirs
}

// RotateToward turns the unit heading toward desired by at most maxTurn
// radians, keeping unit length. A zero desired vector leaves the heading
// unchanged.
func RotateToward(heading, desired dmath.Vec2, maxTurn float64) dmath.Vec2 {
	want, ok := Normalize(desired)
	if !ok || maxTurn <= 0 {
		return heading
	}
	cur := Angle(heading)
	diff := wrapAngle(Angle(want) - cur)
	if math.Abs(diff) <= maxTurn {
		return want
	}
	return FromAngle(cur + math.Copysign(maxTurn, diff))
}

// wrapAngle maps a to (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Nearest returns the index of the candidate closest to origin. Ties go to
// the earlier candidate. A positive maxRange excludes anything farther away.
func Nearest(origin dmath.Vec2, candidates []dmath.Vec2, maxRange float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		d := Distance(origin, c)
		if maxRange > 0 && d > maxRange {
			continue
		}
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// WithinRadius reports whether p is at most r away from center.
func WithinRadius(center, p dmath.Vec2, r float64) bool {
	return Distance(center, p) <= r
}
