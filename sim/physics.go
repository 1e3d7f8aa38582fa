package sim

import "math"

// Loser identifies who dropped off the tatami and ended the round.
type Loser int

const (
	NoLoser Loser = iota
	Bot1Down
	Bot2Down
	BothDown
)

func (l Loser) String() string {
	switch l {
	case Bot1Down:
		return "robot 1 down"
	case Bot2Down:
		return "robot 2 down"
	case BothDown:
		return "both robots down"
	}
	return "no loser"
}

// Outcome of one physics step: either the round continues with the new
// state pair, or it is over and Loser names who fell.
type Outcome struct {
	Bots  [2]SumoState
	Over  bool
	Loser Loser
}

// step advances both robots one tick: integrate the motor requests,
// resolve contact, then check the tatami boundary. Falling off is a
// normal terminal state, reported as data and never as a panic.
func (e *Engine) step(bots [2]SumoState, reqs [2]MotorReq) Outcome {
	next := [2]SumoState{
		e.apply(bots[0], reqs[0]),
		e.apply(bots[1], reqs[1]),
	}

	// Contact when the gap between the centers is smaller than the sum
	// of both body radii in the bearing between them. The gap is taken
	// between the pre-step centers, the radii from the provisional
	// ones. A NaN bearing fails the comparison, which reads as no
	// contact.
	theta := next[0].Center.Sub(next[1].Center).OriginDir()
	gap := bots[0].Center.Dist(bots[1].Center)
	reach := e.radiusTowards(next[0], theta) + e.radiusTowards(next[1], theta) + e.cfg.CollisionSlack
	if gap < reach {
		next = e.push(bots, reqs)
	}

	down1 := next[0].Center.Dist(Vec2{}) >= e.cfg.TatamiSize
	down2 := next[1].Center.Dist(Vec2{}) >= e.cfg.TatamiSize
	switch {
	case down1 && down2:
		return Outcome{Bots: next, Over: true, Loser: BothDown}
	case down1:
		return Outcome{Bots: next, Over: true, Loser: Bot1Down}
	case down2:
		return Outcome{Bots: next, Over: true, Loser: Bot2Down}
	}
	return Outcome{Bots: next}
}

// push shoves the overlapping bodies apart. The displaced states are
// the pre-step ones: while in contact the drive integration for the
// tick is discarded and the shove alone moves the pair. The shove
// direction comes from casting the second robot's request through the
// drive kinematics at a zero state; which robot takes the positive
// half is keyed off the sign of vatt.
func (e *Engine) push(bots [2]SumoState, reqs [2]MotorReq) [2]SumoState {
	vatt := reqs[1].Vel() - reqs[0].Vel()

	cast := e.apply(SumoState{}, reqs[1])
	sin, cos := math.Sincos(cast.Dir)
	shove := Vec2{X: cos * vatt / e.cfg.PushFriction, Y: sin * vatt / e.cfg.PushFriction}

	if vatt > 0 {
		return [2]SumoState{
			bots[0].Translate(shove),
			bots[1].Translate(Vec2{}.Sub(shove)),
		}
	}
	return [2]SumoState{
		bots[0].Translate(Vec2{}.Sub(shove)),
		bots[1].Translate(shove),
	}
}
