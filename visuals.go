package main

import (
	"context"
	"fmt"
	"math"
	"time"

	s "sumo/sim"
	t "sumo/telemetry"
	u "sumo/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/jpillora/backoff"
)

// drawingBoundary is the half width of a drawn line in arena units: how
// far a cell center may sit from the tatami ring or a heading ray and
// still get painted.
const drawingBoundary = 0.5

// framePeriod paces the renderer, one frame every 50ms.
const framePeriod = 50 * time.Millisecond

type visuals struct {
	screen tcell.Screen
	cfg    s.Config
	timer  *u.TimerType
	tele   *t.Sender

	ringStyle tcell.Style
	botStyle  [2]tcell.Style
	hudStyle  tcell.Style
}

// runVisuals owns the terminal until the match ends or the user quits.
// Frames are taken from the channel without ever blocking the
// simulation side: when none is pending the renderer idles with backoff
// and keeps the last picture.
func runVisuals(cancel context.CancelFunc, frames <-chan s.Frame, cfg s.Config, tele *t.Sender, timer *u.TimerType) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	v := &visuals{
		screen:    screen,
		cfg:       cfg,
		timer:     timer,
		tele:      tele,
		ringStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		botStyle: [2]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorBlue),
			tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
		hudStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}

	// keys come in over a channel, the event loop runs on its own
	// routine
	keyChan := make(chan string, 5)
	go v.keyGet(keyChan)

	idle := &backoff.Backoff{
		Min:    10 * time.Millisecond,
		Max:    250 * time.Millisecond,
		Factor: 2,
		Jitter: false,
	}

	for {
		select {
		case key := <-keyChan:
			if key == "quit" {
				cancel()
				return nil
			}
		default:
		}

		select {
		case fr, ok := <-frames:
			if !ok {
				v.drawText(1, 0, fmt.Sprintf("match over after %v - press q to exit", v.timer.Now().Truncate(time.Second)), v.hudStyle)
				v.screen.Show()
				for key := range keyChan {
					if key == "quit" {
						cancel()
						return nil
					}
				}
				return nil
			}
			v.draw(fr)
			v.tele.Send(fr)
			idle.Reset()
			time.Sleep(framePeriod)

		default:
			time.Sleep(idle.Duration())
		}
	}
}

func (v *visuals) keyGet(keyChan chan<- string) {
	defer close(keyChan)
	for {
		ev := v.screen.PollEvent()
		if ev == nil { // screen finalized
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				keyChan <- "quit"
			case ev.Rune() == 'q':
				keyChan <- "quit"
			}
		}
	}
}

// draw paints one frame: robot centers as '=', their corners as 'o',
// the tatami ring as '#' and each robot's heading ray as dots.
// Terminal cells are roughly twice as tall as wide, so the column is
// halved before mapping into arena coordinates.
func (v *visuals) draw(fr s.Frame) {
	v.screen.Clear()
	maxx, maxy := v.screen.Size()

	for y := 0; y < maxy; y++ {
		for x := 0; x < maxx-1; x++ {
			cx := float64(x/2 - maxx/4)
			cy := float64(y - maxy/2)
			cell := s.Vec2{X: cx, Y: cy}
			d := math.Sqrt(cx*cx + cy*cy)

			switch {
			case fr.Bots[0].Center.Round() == cell:
				v.screen.SetContent(x, y, '=', nil, v.botStyle[0])
			case fr.Bots[1].Center.Round() == cell:
				v.screen.SetContent(x, y, '=', nil, v.botStyle[1])
			case hasCorner(fr.Bots[0], cell):
				v.screen.SetContent(x, y, 'o', nil, v.botStyle[0])
			case hasCorner(fr.Bots[1], cell):
				v.screen.SetContent(x, y, 'o', nil, v.botStyle[1])
			case isNear(d, v.cfg.TatamiSize, drawingBoundary):
				v.screen.SetContent(x, y, '#', nil, v.ringStyle)
			case isNear(asLinear(cx, fr.Bots[0]), cy, drawingBoundary):
				v.screen.SetContent(x, y, '.', nil, v.botStyle[0])
			case isNear(asLinear(cx, fr.Bots[1]), cy, drawingBoundary):
				v.screen.SetContent(x, y, '.', nil, v.botStyle[1])
			}
		}
	}

	v.drawText(1, 0, fmt.Sprintf("%v  tick %d  %v", fr.Round, fr.Tick, v.timer.Now().Truncate(time.Second)), v.hudStyle)
	v.screen.Show()
}

func (v *visuals) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func hasCorner(bot s.SumoState, cell s.Vec2) bool {
	for _, c := range bot.Corners {
		if c.Round() == cell {
			return true
		}
	}
	return false
}

// isNear reports whether x lies within bound of y. NaN fails both
// comparisons, so a ray with no value at this column draws nothing.
func isNear(x, y, bound float64) bool {
	return x < y+bound && x > y-bound
}

// asLinear evaluates the robot's heading ray at column x: the line
// through the center with slope tan(dir), valid only on the half plane
// the robot faces. Columns behind the robot get NaN.
func asLinear(x float64, bot s.SumoState) float64 {
	facingLeft := bot.Dir > math.Pi/2 && bot.Dir < math.Pi*1.5
	if facingLeft && bot.Center.X < x {
		return math.NaN()
	}
	if !facingLeft && bot.Center.X > x {
		return math.NaN()
	}
	m := math.Tan(bot.Dir)
	return x*m + (bot.Center.Y - bot.Center.X*m)
}
