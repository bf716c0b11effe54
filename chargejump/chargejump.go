// Package chargejump implements hold-to-charge, release-to-jump. The charge
// ramp follows the wall clock rather than summed frame deltas, so a charge
// takes the same real time at any frame rate.
package chargejump

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/automoto/tower-climb/clock"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/gamemath"
	"github.com/lucasb-eyer/go-colorful"
)

// JumpVector is the impulse produced by a release
type JumpVector struct {
	ForceY    float64
	VelocityX float64
}

// Machine is the charge state for the single player. It is Idle until
// StartCharge and returns to Idle on release or cancel.
type Machine struct {
	clock clock.Clock

	charging bool
	percent  float64 // 0..100
	aim      float64 // -1..1
	started  time.Time
}

func New(c clock.Clock) *Machine {
	if c == nil {
		c = clock.Real{}
	}
	return &Machine{clock: c}
}

// StartCharge begins a charge. The caller checks the player is grounded.
// Calling it while already charging keeps the original start time.
func (m *Machine) StartCharge() {
	if m.charging {
		return
	}
	m.charging = true
	m.percent = 0
	m.started = m.clock.Now()
}

// UpdateCharge recomputes the percent from elapsed wall-clock time. dt is
// accepted for the frame callback signature but not used.
func (m *Machine) UpdateCharge(_ time.Duration) {
	if !m.charging {
		return
	}
	elapsed := m.clock.Now().Sub(m.started)
	m.percent = math.Min(100, float64(elapsed)/float64(cfg.Physics.ChargeTime)*100)
}

// SetAimDirection clamps dir to [-1,1]
func (m *Machine) SetAimDirection(dir float64) {
	m.aim = gamemath.Clamp(dir, -1, 1)
}

// ReleaseJump ends the charge. It reports false, and produces no jump, when
// not charging or when the charge is under the minimum threshold.
func (m *Machine) ReleaseJump() (JumpVector, bool) {
	if !m.charging {
		return JumpVector{}, false
	}

	charge := m.percent / 100
	aim := m.aim
	m.reset()

	if charge < cfg.Physics.ChargeMinThreshold {
		return JumpVector{}, false
	}

	return JumpVector{
		ForceY:    gamemath.Lerp(cfg.Physics.ChargeJumpMinForce, cfg.Physics.ChargeJumpMaxForce, charge),
		VelocityX: aim * cfg.Physics.ChargeJumpHorizontal * charge,
	}, true
}

// CancelCharge drops any charge without jumping.
func (m *Machine) CancelCharge() {
	m.reset()
}

func (m *Machine) reset() {
	m.charging = false
	m.percent = 0
	m.aim = 0
	m.started = time.Time{}
}

func (m *Machine) IsCharging() bool      { return m.charging }
func (m *Machine) Percent() float64      { return m.percent }
func (m *Machine) AimDirection() float64 { return m.aim }
func (m *Machine) IsFullyCharged() bool  { return m.percent >= 100 }

// CanJump reports whether releasing now would produce a jump.
func (m *Machine) CanJump() bool {
	return m.charging && m.percent >= cfg.Physics.ChargeMinThreshold*100
}

// hsl returns the charge indicator color components: hue in degrees,
// saturation and lightness in percent. Green through orange to red.
func hsl(percent float64) (h, s, l float64) {
	switch {
	case percent < 65:
		h = 120 - (percent/65)*40
	case percent < 90:
		h = 80 - (percent-65)/25*50
	default:
		h = 30 - (percent-90)/10*30
	}
	s = 70 + percent*0.2
	l = 50 + percent*0.1
	return h, s, l
}

// Color is the charge indicator color for the current percent.
func (m *Machine) Color() colorful.Color {
	h, s, l := hsl(m.percent)
	return colorful.Hsl(h, s/100, l/100)
}

// CSS formats the indicator color as an hsl() string.
func (m *Machine) CSS() string {
	h, s, l := hsl(m.percent)
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(h), num(s), num(l))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
