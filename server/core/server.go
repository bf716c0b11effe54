// Package core runs the tower without a window: a pilot drives the
// controls, a ticker drives the scheduler, and progress is exported as
// Prometheus metrics.
package core

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/tower-climb/clock"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/controls"
	"github.com/automoto/tower-climb/notification"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/automoto/tower-climb/tower"
	"github.com/automoto/tower-climb/world"
	"github.com/prometheus/client_golang/prometheus"
)

// Status is a point-in-time summary of the simulation.
type Status struct {
	Frame          uint64
	Section        leveldata.SectionID
	X, Y           float64
	State          cfg.EntityState
	SectionChanges int
	Respawns       int
}

// Server owns one world and steps it from its game loop.
type Server struct {
	world    *world.World
	notices  *notification.Queue
	controls *controls.Controls
	pilot    Pilot
	loop     *GameLoop
	metrics  *Metrics

	mu     sync.RWMutex
	status Status
}

// NewServer builds the world from sections. Nil sections use the built-in
// tower; a nil registry disables metrics.
func NewServer(sections []leveldata.WorldSection, tickRate int, pilot Pilot, c clock.Clock, reg prometheus.Registerer) *Server {
	if sections == nil {
		sections = leveldata.Sections()
	}
	if c == nil {
		c = clock.Real{}
	}
	if pilot == nil {
		pilot = Idle{}
	}

	notices := notification.NewQueue(c)
	s := &Server{
		world:    world.New(tower.New(sections), c, notices),
		notices:  notices,
		controls: controls.New(),
		pilot:    pilot,
	}
	if reg != nil {
		s.metrics = NewMetrics(reg)
	}
	s.loop = NewGameLoop(s.Step, tickRate, c, reg)
	s.refresh()
	return s
}

// Run steps the world until ctx is done.
func (s *Server) Run(ctx context.Context) {
	s.loop.Run(ctx)
}

// Step advances the simulation by one frame of dt. It is the scheduler
// callback and is also safe to call directly.
func (s *Server) Step(dt time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.Frame++
	s.pilot.Drive(s.controls, s.world, s.status.Frame)

	if s.controls.ConsumeInteract() {
		s.world.Interact()
	}
	ev := s.world.Update(dt, s.controls.Snapshot())
	s.controls.Apply(ev.Player)
	s.notices.Tick()

	if ev.SectionChange != nil {
		s.status.SectionChanges++
		log.Printf("[server] section %s -> %s (%s)", ev.SectionChange.From, ev.SectionChange.To, ev.SectionChange.Direction)
		s.metrics.sectionChanged(string(ev.SectionChange.Direction))
	}
	if ev.Respawned {
		s.status.Respawns++
		log.Printf("[server] respawned after frame %d", s.status.Frame)
		s.metrics.respawned()
	}
	if ev.SectionChange != nil || ev.Respawned {
		s.controls.Reset()
	}

	s.refresh()
	t := s.world.Tower()
	s.metrics.observe(s.status, t.GroundLevel(t.First()))
	return nil
}

func (s *Server) refresh() {
	b := s.world.Player().Body()
	s.status.Section = s.world.CurrentSection()
	s.status.X = b.Position.X
	s.status.Y = b.Position.Y
	s.status.State = s.world.Player().State()
}

func (s *Server) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// World exposes the simulation for tests. Callers must not race Run.
func (s *Server) World() *world.World { return s.world }
