package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// botAt builds a robot anywhere on the tatami from the square template.
func botAt(e *Engine, x, y, dir float64) SumoState {
	st := e.templateAt(0, dir)
	return st.Translate(Vec2{X: x, Y: y})
}

func TestApplyStraightDrive(t *testing.T) {
	e := NewEngine(DefaultConfig())
	st := e.templateAt(0, 0)

	next := e.apply(st, MotorReq{MotorL: 0.5, MotorR: 0.5})

	// equal motors: no turn, full speed along the heading
	assert.Equal(t, 0.0, next.Dir)
	assert.InDelta(t, 0.5, next.Center.X, 1e-12)
	assert.InDelta(t, 0.0, next.Center.Y, 1e-12)
	assert.InDelta(t, 1.75, next.Corners[0].X, 1e-12)
	assert.InDelta(t, 1.25, next.Corners[0].Y, 1e-12)

	tilted := e.apply(e.templateAt(0, math.Pi/3), MotorReq{MotorL: 0.5, MotorR: 0.5})
	assert.InDelta(t, math.Pi/3, tilted.Dir, 1e-12)
	assert.InDelta(t, math.Cos(math.Pi/3)*0.5, tilted.Center.X, 1e-12)
	assert.InDelta(t, math.Sin(math.Pi/3)*0.5, tilted.Center.Y, 1e-12)
}

func TestApplyPivot(t *testing.T) {
	e := NewEngine(DefaultConfig())
	st := e.templateAt(0, 0)

	next := e.apply(st, MotorReq{MotorL: -0.5, MotorR: 0.5})

	// opposite motors: the center stays put while the heading turns
	assert.Equal(t, Vec2{}, next.Center)
	assert.InDelta(t, 1.0/2.5, next.Dir, 1e-12)
}

func TestBoundary(t *testing.T) {
	e := NewEngine(DefaultConfig())
	idle := [2]MotorReq{}

	near := [2]SumoState{
		botAt(e, e.cfg.TatamiSize-1e-6, 0, 0),
		botAt(e, 0, 0, 0),
	}
	res := e.step(near, idle)
	assert.False(t, res.Over, "a center just inside the tatami keeps the round going")

	out1 := [2]SumoState{
		botAt(e, e.cfg.TatamiSize, 0, 0),
		botAt(e, 0, 0, 0),
	}
	res = e.step(out1, idle)
	require.True(t, res.Over)
	assert.Equal(t, Bot1Down, res.Loser)

	out2 := [2]SumoState{
		botAt(e, 0, 0, 0),
		botAt(e, -e.cfg.TatamiSize, 0, 0),
	}
	res = e.step(out2, idle)
	require.True(t, res.Over)
	assert.Equal(t, Bot2Down, res.Loser)

	both := [2]SumoState{
		botAt(e, e.cfg.TatamiSize+1, 0, 0),
		botAt(e, -e.cfg.TatamiSize-1, 0, 0),
	}
	res = e.step(both, idle)
	require.True(t, res.Over)
	assert.Equal(t, BothDown, res.Loser)
}

// Two robots stacked on the y axis so the bearing between them is zero
// and both effective radii are exactly half a body: contact begins at a
// center gap of one body length.
func TestCollisionThreshold(t *testing.T) {
	e := NewEngine(DefaultConfig())
	reqs := [2]MotorReq{{}, {MotorL: 0.25, MotorR: 0.25}}

	touching := [2]SumoState{
		botAt(e, 0, e.cfg.SumoSize-0.01, 0),
		botAt(e, 0, 0, math.Pi/2),
	}
	res := e.step(touching, reqs)
	require.False(t, res.Over)
	// the shove replaces the drive displacement for the tick
	assert.InDelta(t, 0.25, res.Bots[0].Center.X, 1e-12)
	assert.InDelta(t, e.cfg.SumoSize-0.01, res.Bots[0].Center.Y, 1e-12)
	assert.InDelta(t, -0.25, res.Bots[1].Center.X, 1e-12)
	assert.InDelta(t, 0.0, res.Bots[1].Center.Y, 1e-12)

	apart := [2]SumoState{
		botAt(e, 0, e.cfg.SumoSize+0.01, 0),
		botAt(e, 0, 0, math.Pi/2),
	}
	res = e.step(apart, reqs)
	require.False(t, res.Over)
	// no contact: the drive moves the second robot up its heading
	assert.InDelta(t, 0.0, res.Bots[0].Center.X, 1e-12)
	assert.InDelta(t, e.cfg.SumoSize+0.01, res.Bots[0].Center.Y, 1e-12)
	assert.InDelta(t, 0.0, res.Bots[1].Center.X, 1e-12)
	assert.InDelta(t, 0.25, res.Bots[1].Center.Y, 1e-12)
}

// The shove sign convention: when the second robot's drive is the
// slower one the shove flips, and the first robot still ends up
// displaced along +x here because the shove itself is negative.
func TestPushSignConvention(t *testing.T) {
	e := NewEngine(DefaultConfig())
	reqs := [2]MotorReq{{MotorL: 0.25, MotorR: 0.25}, {}}

	bots := [2]SumoState{
		botAt(e, 0, e.cfg.SumoSize-0.01, math.Pi/2),
		botAt(e, 0, 0, 0),
	}
	res := e.step(bots, reqs)
	require.False(t, res.Over)
	assert.InDelta(t, 0.25, res.Bots[0].Center.X, 1e-12)
	assert.InDelta(t, -0.25, res.Bots[1].Center.X, 1e-12)
}

// Round 1 with both robots idle is a fixed point: nothing moves, no
// round ever ends.
func TestIdleRoundIsFixedPoint(t *testing.T) {
	e := NewEngine(DefaultConfig())
	bots := e.roundStart(Round1)

	require.Equal(t, Vec2{X: 10}, bots[0].Center)
	require.Equal(t, Vec2{X: -10}, bots[1].Center)

	for i := 0; i < 100; i++ {
		res := e.step(bots, [2]MotorReq{})
		require.False(t, res.Over)
		require.Equal(t, bots, res.Bots)
	}
}

// Head-on creep at equal speed stalls the match: once the bodies touch,
// the velocity gap is zero, the shove is zero and the contact branch
// discards the drive displacement every tick.
func TestHeadOnCreepStalemate(t *testing.T) {
	e := NewEngine(DefaultConfig())
	bots := e.roundStart(Round1)
	creep := MotorReq{MotorL: 0.25, MotorR: 0.25}

	var frozen [2]SumoState
	for i := 0; i < 60; i++ {
		res := e.step(bots, [2]MotorReq{creep, creep})
		require.False(t, res.Over)
		bots = res.Bots
		if i == 44 {
			frozen = bots
		}
	}
	assert.Equal(t, frozen, bots, "contact froze both robots in place")
	assert.Less(t, bots[0].Center.Dist(bots[1].Center), e.cfg.SumoSize)
}
