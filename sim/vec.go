package sim

import "math"

// Vec2 is a point or displacement on the tatami plane. It is a plain
// value type, every operation returns a new value.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist is the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	d := v.Sub(o)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// OriginDir is the bearing of v seen from the origin, as atan(x/y).
// This is deliberately not atan2: it folds quadrants together and goes
// non finite around the origin. Every collision and sensor bearing in
// the engine is computed with this exact formula, so callers compare
// against it knowing that NaN fails every comparison.
func (v Vec2) OriginDir() float64 {
	return math.Atan(v.X / v.Y)
}

// Round snaps both components to the nearest integer, for cell mapping
// in the renderer.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}
