package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIRSpan(t *testing.T) {
	e := NewEngine(DefaultConfig())
	target := e.templateAt(-10, 0)

	// corner bearings of the target from the origin: +-atan(7) and
	// +-atan(9), so the span is [-atan(9), atan(9)]
	spanMax := math.Atan(9)

	observer := e.templateAt(10, 1.0)
	assert.Equal(t, 20.0, ir(observer, target, 20))

	observer.Dir = spanMax
	assert.Equal(t, 20.0, ir(observer, target, 20), "span bounds are inclusive")

	observer.Dir = spanMax + 0.01
	assert.Equal(t, 0.0, ir(observer, target, 20))
	assert.Equal(t, 0.0, ir(observer, target, 1e9), "distance never matters outside the span")

	observer.Dir = -spanMax - 0.01
	assert.Equal(t, 0.0, ir(observer, target, 20))

	observer.Dir = math.Pi
	assert.Equal(t, 0.0, ir(observer, target, 20))
}

func TestIRToleratesNaN(t *testing.T) {
	e := NewEngine(DefaultConfig())
	target := e.templateAt(-10, 0)

	observer := e.templateAt(10, math.NaN())
	assert.Equal(t, 0.0, ir(observer, target, 20))

	// a target collapsed onto the origin has no corner bearings at all
	collapsed := SumoState{}
	assert.Equal(t, 0.0, ir(e.templateAt(10, 0), collapsed, 20))
}

func TestSenseForRoundStart(t *testing.T) {
	e := NewEngine(DefaultConfig())
	bots := e.roundStart(Round1)

	// robot 1 faces away from the span, robot 2 stares right into it
	assert.Equal(t, 0.0, e.senseFor(0, bots))
	assert.Equal(t, 20.0, e.senseFor(1, bots))
}
