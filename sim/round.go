package sim

import (
	"fmt"
	"math"

	log "github.com/s00500/env_logger"
)

// Round numbers one bout of the match. The three rounds differ only in
// the robots' initial facings: opposing, perpendicular, aligned.
type Round int

const (
	Round1 Round = iota + 1
	Round2
	Round3
)

const roundCount = 3

// RoundFromNumber converts a 1-based round number. Anything outside
// 1..3 is a programming error and aborts the process.
func RoundFromNumber(n int) Round {
	if n < 1 || n > roundCount {
		log.Fatalln("Bad round number:", n)
	}
	return Round(n)
}

func (r Round) String() string {
	return fmt.Sprintf("round %d", int(r))
}

// startDirs returns the initial headings, first robot then second.
func (r Round) startDirs() (float64, float64) {
	switch r {
	case Round1:
		return math.Pi, 0
	case Round2:
		return math.Pi / 2, 3 * math.Pi / 2
	case Round3:
		return 0, math.Pi
	}
	log.Fatalln("Bad round:", int(r))
	return 0, 0
}

// roundStart builds both robots from the fixed square template, facing
// whichever way the round dictates.
func (e *Engine) roundStart(r Round) [2]SumoState {
	d1, d2 := r.startDirs()
	return [2]SumoState{
		e.templateAt(e.cfg.XInitPos, d1),
		e.templateAt(-e.cfg.XInitPos, d2),
	}
}

func (e *Engine) templateAt(x, dir float64) SumoState {
	h := e.cfg.SumoSize / 2
	return SumoState{
		Center: Vec2{X: x},
		Dir:    dir,
		Corners: [4]Vec2{
			{X: x + h, Y: h},
			{X: x + h, Y: -h},
			{X: x - h, Y: h},
			{X: x - h, Y: -h},
		},
	}
}
