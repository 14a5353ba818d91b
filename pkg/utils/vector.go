package utils

import "math"

// Vec2 is a 2D vector in world units. Directions that the simulation treats as
// 3-vectors always have z = 0, so only x and y are stored.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated by +90 degrees: (-y, x).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Normalize returns the unit vector pointing along v. ok is false for a zero
// or non-finite vector, in which case the zero vector is returned.
func (v Vec2) Normalize() (Vec2, bool) {
	if !v.IsFinite() {
		return Vec2{}, false
	}
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Angle returns atan2(y, x) in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Down is the unit vector pointing to the bottom of the play area.
var Down = Vec2{0, -1}

// Up is the unit vector pointing to the top of the play area.
var Up = Vec2{0, 1}
