package sim

import "math"

// SumoState is the full state of one robot: body center, heading in
// radians and the four corners of its square body. States are replaced
// wholesale every tick, never mutated in place.
//
// Corners translate rigidly with the center but are never re-oriented
// when the heading changes. That is a known fidelity gap of this model,
// kept on purpose.
type SumoState struct {
	Center  Vec2
	Dir     float64
	Corners [4]Vec2
}

// Translate moves every point of the robot by dv.
func (s SumoState) Translate(dv Vec2) SumoState {
	next := SumoState{Center: s.Center.Add(dv), Dir: s.Dir}
	for i, c := range s.Corners {
		next.Corners[i] = c.Add(dv)
	}
	return next
}

// apply integrates one robot over one tick under req, using the
// differential drive formulas: the heading turns with the speed gap
// between the wheels, the center advances along the new heading with
// the mean wheel speed.
func (e *Engine) apply(s SumoState, req MotorReq) SumoState {
	dir := math.Mod(s.Dir+e.cfg.StepSize*(req.MotorR-req.MotorL)/e.cfg.SumoSize, 2*math.Pi)
	vel := req.Vel()
	dv := Vec2{X: math.Cos(dir) * vel, Y: math.Sin(dir) * vel}
	next := s.Translate(dv)
	next.Dir = dir
	return next
}

// radiusTowards is the effective body radius of the robot in the
// bearing theta: a linear approximation of a square's radial extent,
// sliding between the face center distance and the corner distance as
// the relative bearing sweeps an octant.
func (e *Engine) radiusTowards(s SumoState, theta float64) float64 {
	rel := math.Mod(theta-s.Dir, math.Pi/2)
	if rel <= math.Pi/4 {
		return e.m*rel + e.cfg.SumoSize/2
	}
	return e.m*(math.Pi/2-rel) + e.cfg.SumoSize/2
}
