package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/shared/inputscript"
)

// InputSource supplies the input for a tick. It returns false once it has
// nothing more to play, which ends the run.
type InputSource interface {
	Input(tick int) (character.Input, bool)
}

// InputFunc adapts a function to an InputSource.
type InputFunc func(tick int) (character.Input, bool)

// Input calls f.
func (f InputFunc) Input(tick int) (character.Input, bool) { return f(tick) }

// ScriptInput plays a script for limit ticks. A non-positive limit plays the
// script's own length.
func ScriptInput(s *inputscript.Script, limit int) InputSource {
	if limit <= 0 {
		limit = s.Len()
	}
	return InputFunc(func(tick int) (character.Input, bool) {
		if tick >= limit {
			return character.Input{}, false
		}
		return character.Input{Held: s.Held(tick)}, true
	})
}

// GameLoop drives a coordinator at a fixed tick rate.
type GameLoop struct {
	coord    *Coordinator
	input    InputSource
	tickRate int
	onFrame  func(FrameResult)

	stopChan chan struct{}
	stopOnce sync.Once
	last     FrameResult
}

// NewGameLoop creates a loop running coord at tickRate ticks per second.
func NewGameLoop(coord *Coordinator, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = coord.cfg.Frame.TickRate
	}
	return &GameLoop{
		coord:    coord,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnFrame registers a callback run after every tick.
func (g *GameLoop) OnFrame(fn func(FrameResult)) {
	g.onFrame = fn
}

// Run ticks in real time until the input runs out, Game-Over, Stop or ctx
// cancellation, and returns the last frame.
func (g *GameLoop) Run(ctx context.Context) FrameResult {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return g.last
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return g.last
		case <-ticker.C:
			if !g.tick() {
				log.Printf("Game loop finished after %d ticks", g.last.Tick)
				return g.last
			}
		}
	}
}

// RunFast ticks back to back without waiting on the clock. It stops on the
// same conditions as Run except cancellation.
func (g *GameLoop) RunFast() FrameResult {
	for g.tick() {
		select {
		case <-g.stopChan:
			return g.last
		default:
		}
	}
	return g.last
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// tick runs one frame and reports whether the loop should continue.
func (g *GameLoop) tick() bool {
	in, ok := g.input.Input(g.coord.tick)
	if !ok {
		return false
	}
	g.last = g.coord.Update(1/float64(g.tickRate), in)
	if g.onFrame != nil {
		g.onFrame(g.last)
	}
	return !g.last.GameOver
}
