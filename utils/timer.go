package utils

import (
	"time"

	log "github.com/s00500/env_logger"
)

// TimerType tracks wall time since the start of the match, for the
// renderer HUD.
type TimerType struct {
	startTime time.Time
}

func NewTimer() TimerType {
	return TimerType{}
}

func (t *TimerType) Start() {
	log.Info("Match timer started")
	t.startTime = time.Now()
}

func (t *TimerType) Now() time.Duration {
	return time.Since(t.startTime)
}
