// Package telemetry forwards match frames to an external udp collector
// as compact text lines, for plotting or logging a bout outside the
// terminal. It lives entirely outside the tick loop: the sender owns a
// buffered channel and drops frames when the collector cannot keep up,
// so the simulation and the renderer are never stalled by it.
package telemetry

import (
	"fmt"
	"net"
	"time"

	"github.com/jpillora/backoff"
	log "github.com/s00500/env_logger"

	s "sumo/sim"
)

type Sender struct {
	ch chan string
}

// NewSender starts a sender towards addr. The connection is dialed in
// the background and redialed with backoff, a sender is usable right
// away.
func NewSender(addr string) *Sender {
	snd := &Sender{ch: make(chan string, 100)}
	go snd.runner(addr)
	return snd
}

func (snd *Sender) runner(addr string) {
	redial := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    5 * time.Second,
		Factor: 2,
		Jitter: false,
	}

	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		log.Warnln("Telemetry address:", err)
		return
	}

	for {
		conn, err := net.DialUDP("udp", nil, raddr)
		if err != nil {
			time.Sleep(redial.Duration())
			continue
		}
		log.Info("Telemetry streaming to ", addr)
		redial.Reset()

		for {
			m, ok := <-snd.ch
			if !ok {
				conn.Close()
				return
			}
			if _, err := conn.Write([]byte(m)); err != nil {
				log.Warn(err)
				break
			}
		}
		conn.Close()
	}
}

// Send queues one frame line. A nil sender swallows everything, and a
// full buffer drops the frame rather than blocking the caller.
func (snd *Sender) Send(fr s.Frame) {
	if snd == nil {
		return
	}
	line := fmt.Sprintf("%d/%d/%.3f/%.3f/%.3f/%.3f/%.3f/%.3f\n",
		int(fr.Round), fr.Tick,
		fr.Bots[0].Center.X, fr.Bots[0].Center.Y, fr.Bots[0].Dir,
		fr.Bots[1].Center.X, fr.Bots[1].Center.Y, fr.Bots[1].Dir)
	select {
	case snd.ch <- line:
	default:
	}
}

// Close stops the runner. Send must not be called afterwards.
func (snd *Sender) Close() {
	if snd == nil {
		return
	}
	close(snd.ch)
}
