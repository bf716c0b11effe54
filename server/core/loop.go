package core

import (
	"context"
	"log"

	"github.com/automoto/tower-climb/clock"
	"github.com/automoto/tower-climb/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

// GameLoop ticks a scheduler from a wall-clock ticker instead of a window's
// refresh.
type GameLoop struct {
	sched    *scheduler.Scheduler
	frames   *scheduler.TickerFrames
	tickRate int
}

// NewGameLoop registers step on a fresh scheduler. A nil registry skips the
// scheduler metrics.
func NewGameLoop(step scheduler.Callback, tickRate int, c clock.Clock, reg prometheus.Registerer) *GameLoop {
	var opts []scheduler.Option
	if reg != nil {
		opts = append(opts, scheduler.WithObserver(scheduler.NewMetrics(reg)))
	}

	frames := scheduler.NewTickerFrames(tickRate)
	sched := scheduler.New(c, frames, opts...)
	sched.Register(step)

	return &GameLoop{sched: sched, frames: frames, tickRate: tickRate}
}

// Run blocks until ctx is done.
func (g *GameLoop) Run(ctx context.Context) {
	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	g.sched.Start()
	g.frames.Run(ctx)
	g.sched.Stop()

	log.Println("Game loop stopped")
}

func (g *GameLoop) FPS() int { return g.sched.FPS() }
