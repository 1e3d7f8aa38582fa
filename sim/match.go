package sim

import (
	"context"

	log "github.com/s00500/env_logger"
)

// Frame is one tick of the match as seen by a consumer. Frames arrive
// strictly in order; a closed frame channel is the end-of-match marker.
type Frame struct {
	Round Round
	Tick  int
	Bots  [2]SumoState
}

const frameBuffer = 50

// Run plays rounds 1 to 3 and streams one frame per tick on the
// returned channel, which is closed when the match ends or ctx is
// cancelled. This is the reference driver: a single goroutine computes
// every tick top to bottom, so the produced sequence is deterministic
// for deterministic strategies. The buffered channel decouples the
// consumer; a send only blocks until the consumer catches up or ctx
// ends, never indefinitely.
func (e *Engine) Run(ctx context.Context, strat1, strat2 Strategy) <-chan Frame {
	frames := make(chan Frame, frameBuffer)

	go func() {
		defer close(frames)
		for n := 1; n <= roundCount; n++ {
			round := RoundFromNumber(n)
			ticks, loser := e.RunRound(ctx, round, strat1, strat2, frames)
			if ctx.Err() != nil {
				log.Warnln("Match cancelled in", round)
				return
			}
			log.Infof("%v over after %d ticks: %v", round, ticks, loser)
		}
	}()

	return frames
}

// RunRound plays a single round until a robot drops off the tatami or
// ctx is cancelled, emitting one frame per tick to out. A nil out runs
// the round headless. It reports how many ticks the round lasted and
// who lost it (NoLoser when cancelled).
func (e *Engine) RunRound(ctx context.Context, round Round, strat1, strat2 Strategy, out chan<- Frame) (int, Loser) {
	bots := e.roundStart(round)
	for tick := 1; ; tick++ {
		reqs := [2]MotorReq{
			strat1(e.senseFor(0, bots)),
			strat2(e.senseFor(1, bots)),
		}
		res := e.step(bots, reqs)
		if res.Over {
			return tick, res.Loser
		}
		bots = res.Bots

		if out == nil {
			if ctx.Err() != nil {
				return tick, NoLoser
			}
			continue
		}
		select {
		case out <- Frame{Round: round, Tick: tick, Bots: bots}:
		case <-ctx.Done():
			return tick, NoLoser
		}
	}
}
