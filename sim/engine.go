package sim

import "math"

// Engine evaluates sumo bouts under one Config. An Engine itself is
// stateless between runs; every driver call carries its own round
// state, so one Engine can serve several matches.
type Engine struct {
	cfg Config
	// m is the slope of the linear square-radius approximation used by
	// radiusTowards, precomputed from the body size.
	m float64
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		m:   cfg.SumoSize * 4 * (math.Sqrt2 - 1) / math.Pi,
	}
}

func (e *Engine) Config() Config { return e.cfg }
