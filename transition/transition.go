// Package transition runs section transitions as a small state machine that
// is advanced once per frame, next to physics and the camera.
//
// An exit animates the player out and then fades to black:
//
//	Idle -> AnimatingExit -> FadingOut -> Black
//
// An entry fades back in and then animates the player in:
//
//	Black (or Idle) -> FadingIn -> AnimatingEntry -> Idle
package transition

import (
	"errors"
	"time"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrBusy is returned when a transition is started while another one is
// still running.
var ErrBusy = errors.New("transition: already in progress")

type Kind string

const (
	Pipe Kind = "pipe"
	Door Kind = "door"
	Flag Kind = "flag"
	Fall Kind = "fall"
)

// KindOf maps a section entry kind onto its transition.
func KindOf(k leveldata.EntryKind) Kind {
	switch k {
	case leveldata.EntryPipe:
		return Pipe
	case leveldata.EntryDoor:
		return Door
	default:
		return Fall
	}
}

// Duration of the animated part of a transition of this kind.
func (k Kind) Duration() time.Duration {
	switch k {
	case Pipe:
		return cfg.Transition.Pipe
	case Door:
		return cfg.Transition.Door
	case Flag:
		return cfg.Transition.Flag
	default:
		return cfg.Transition.Fall
	}
}

type Phase int

const (
	Idle Phase = iota
	AnimatingExit
	FadingOut
	Black
	FadingIn
	AnimatingEntry
)

var phaseNames = map[Phase]string{
	Idle:           "idle",
	AnimatingExit:  "animating_exit",
	FadingOut:      "fading_out",
	Black:          "black",
	FadingIn:       "fading_in",
	AnimatingEntry: "animating_entry",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Offset is how the player sprite is displaced and faded during a
// transition.
type Offset struct {
	X, Y    float64
	Opacity float64
}

type Manager struct {
	phase     Phase
	kind      Kind
	direction leveldata.Direction
	target    leveldata.SectionID

	progress float64 // 0..1 through the animated part
	fade     float64 // 0 = clear, 1 = black
	tween    *gween.Tween

	onDone func()
}

func New() *Manager {
	return &Manager{}
}

// StartExit begins an exit towards target. done runs once the screen is
// black and may be nil.
func (m *Manager) StartExit(target leveldata.SectionID, kind Kind, dir leveldata.Direction, done func()) error {
	if m.phase != Idle {
		return ErrBusy
	}

	m.kind = kind
	m.direction = dir
	m.target = target
	m.onDone = done
	m.progress = 0
	m.enter(AnimatingExit)
	return nil
}

// StartEntry fades in and animates the player entering. It is valid from
// Idle or right after an exit reached Black. done runs when the entry
// finishes and may be nil.
func (m *Manager) StartEntry(kind Kind, dir leveldata.Direction, done func()) error {
	if m.phase != Idle && m.phase != Black {
		return ErrBusy
	}

	m.kind = kind
	m.direction = dir
	m.onDone = done
	m.progress = 0
	m.enter(FadingIn)
	return nil
}

func (m *Manager) enter(p Phase) {
	m.phase = p

	seconds := func(d time.Duration) float32 { return float32(d.Seconds()) }
	switch p {
	case AnimatingExit, AnimatingEntry:
		m.tween = gween.New(0, 1, seconds(m.kind.Duration()), ease.Linear)
	case FadingOut:
		m.tween = gween.New(float32(m.fade), 1, seconds(cfg.Transition.FadeOut), ease.Linear)
	case FadingIn:
		m.tween = gween.New(float32(m.fade), 0, seconds(cfg.Transition.FadeIn), ease.Linear)
	default:
		m.tween = nil
	}
}

// Update advances the running phase by dt. Phases never share a frame: the
// remainder of a finished phase is dropped.
func (m *Manager) Update(dt time.Duration) {
	if m.tween == nil {
		return
	}

	v, finished := m.tween.Update(float32(dt.Seconds()))
	switch m.phase {
	case AnimatingExit, AnimatingEntry:
		m.progress = float64(v)
	case FadingOut, FadingIn:
		m.fade = float64(v)
	}
	if !finished {
		return
	}

	switch m.phase {
	case AnimatingExit:
		m.enter(FadingOut)
	case FadingOut:
		m.enter(Black)
		m.finish()
	case FadingIn:
		m.enter(AnimatingEntry)
	case AnimatingEntry:
		m.enter(Idle)
		m.kind = ""
		m.target = ""
		m.finish()
	}
}

func (m *Manager) finish() {
	done := m.onDone
	m.onDone = nil
	if done != nil {
		done()
	}
}

func (m *Manager) Phase() Phase                   { return m.phase }
func (m *Manager) Kind() Kind                     { return m.kind }
func (m *Manager) Direction() leveldata.Direction { return m.direction }
func (m *Manager) Target() leveldata.SectionID    { return m.target }
func (m *Manager) Progress() float64              { return m.progress }

// IsActive is true from the start of an exit until an entry completes,
// including the black screen in between.
func (m *Manager) IsActive() bool { return m.phase != Idle }

// Overlay is the opacity of the black screen cover.
func (m *Manager) Overlay() float64 { return m.fade }

// PlayerOffset reports how to draw the player for the current phase. Pipes
// slide sideways, fall entries drop in from above and everything else only
// fades, so the sprite never crosses terrain.
func (m *Manager) PlayerOffset() Offset {
	p := m.progress
	slide := cfg.Transition.Slide

	switch m.phase {
	case AnimatingExit, FadingOut, Black:
		if m.kind == Pipe {
			switch m.direction {
			case leveldata.Left:
				return Offset{X: -p * slide, Opacity: 1 - p}
			case leveldata.Right:
				return Offset{X: p * slide, Opacity: 1 - p}
			}
		}
		return Offset{Opacity: 1 - p}

	case FadingIn, AnimatingEntry:
		rest := 1 - p
		switch m.kind {
		case Pipe:
			switch m.direction {
			case leveldata.Left:
				return Offset{X: rest * slide, Opacity: p}
			case leveldata.Right:
				return Offset{X: -rest * slide, Opacity: p}
			}
		case Fall:
			return Offset{Y: -rest * cfg.Transition.Drop, Opacity: 1}
		}
		return Offset{Opacity: p}
	}

	return Offset{Opacity: 1}
}
