package sim

import (
	"context"
	"sync"

	log "github.com/s00500/env_logger"
	"golang.org/x/sync/errgroup"
)

// senseSlot publishes the latest pair of ir readings, or the terminal
// marker once the round is over. Strategies take shared read access,
// only the integrator writes.
type senseSlot struct {
	mu    sync.RWMutex
	reads [2]float64
	over  bool
}

func (s *senseSlot) read(i int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads[i], s.over
}

func (s *senseSlot) publish(reads [2]float64) {
	s.mu.Lock()
	s.reads = reads
	s.mu.Unlock()
}

func (s *senseSlot) terminate() {
	s.mu.Lock()
	s.over = true
	s.mu.Unlock()
}

// reqSlot holds the motor request pair for the tick in flight. Each
// strategy writes only its own half, inside a short critical section.
type reqSlot struct {
	mu   sync.Mutex
	reqs [2]MotorReq
}

func (s *reqSlot) put(i int, req MotorReq) {
	s.mu.Lock()
	s.reqs[i] = req
	s.mu.Unlock()
}

func (s *reqSlot) take() [2]MotorReq {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reqs
}

// barrier is a reusable rendezvous for a fixed number of parties.
// await blocks until every party has arrived or ctx ends; the last
// arrival resets the barrier for the next phase, so no party can lap a
// peer into the following tick.
type barrier struct {
	mu      sync.Mutex
	parties int
	waiting int
	gen     chan struct{}
}

func newBarrier(parties int) *barrier {
	return &barrier{parties: parties, gen: make(chan struct{})}
}

func (b *barrier) await(ctx context.Context) error {
	b.mu.Lock()
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		close(b.gen)
		b.gen = make(chan struct{})
		b.mu.Unlock()
		return nil
	}
	arrived := b.gen
	b.mu.Unlock()

	select {
	case <-arrived:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunLockstep plays the same match as Run, with the two strategy
// evaluations and the integrator running as three goroutines in lock
// step over shared slots. The historical variant of this simulator
// synchronized only the two strategy tasks and let the integrator race
// a half-written request pair; here the integrator is a third barrier
// party, so every tick the request pair is complete before it is
// consumed and both strategies compute against the same published
// readings. Trajectories are identical to Run for pure strategies.
func (e *Engine) RunLockstep(ctx context.Context, strat1, strat2 Strategy) <-chan Frame {
	frames := make(chan Frame, frameBuffer)

	go func() {
		defer close(frames)
		for n := 1; n <= roundCount; n++ {
			round := RoundFromNumber(n)
			if err := e.runLockstepRound(ctx, round, [2]Strategy{strat1, strat2}, frames); err != nil {
				log.Warnln("Match cancelled in", round, "-", err)
				return
			}
		}
	}()

	return frames
}

// Each tick crosses the barrier twice: once when both requests are in
// place (the integrator waits for that before taking the pair), once
// when the next readings are published (the strategies wait for that
// before reading them). On round end the integrator flips the sense
// slot to terminal and releases the strategies one last time, so nobody
// is ever left waiting on a barrier its peers have abandoned.
func (e *Engine) runLockstepRound(ctx context.Context, round Round, strats [2]Strategy, out chan<- Frame) error {
	bots := e.roundStart(round)

	senses := &senseSlot{}
	reqs := &reqSlot{}
	rendezvous := newBarrier(3)

	senses.publish([2]float64{e.senseFor(0, bots), e.senseFor(1, bots)})

	grp, ctx := errgroup.WithContext(ctx)

	for i := 0; i < 2; i++ {
		i := i
		grp.Go(func() error {
			for {
				reading, over := senses.read(i)
				if over {
					return nil
				}
				reqs.put(i, strats[i](reading))
				if err := rendezvous.await(ctx); err != nil { // requests ready
					return err
				}
				if err := rendezvous.await(ctx); err != nil { // readings published
					return err
				}
			}
		})
	}

	grp.Go(func() error {
		for tick := 1; ; tick++ {
			if err := rendezvous.await(ctx); err != nil { // requests ready
				return err
			}
			res := e.step(bots, reqs.take())
			if res.Over {
				senses.terminate()
				log.Infof("%v over after %d ticks: %v", round, tick, res.Loser)
				return rendezvous.await(ctx) // release the strategies
			}
			bots = res.Bots
			senses.publish([2]float64{e.senseFor(0, bots), e.senseFor(1, bots)})

			select {
			case out <- Frame{Round: round, Tick: tick, Bots: bots}:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := rendezvous.await(ctx); err != nil { // readings published
				return err
			}
		}
	})

	return grp.Wait()
}
