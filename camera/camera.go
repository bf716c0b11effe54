// Package camera follows the player vertically through the tower with a
// dead zone and smoothing, and reports when the player crosses into a new
// section.
package camera

import (
	"math"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/gamemath"
	"github.com/automoto/tower-climb/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Tower is the read-only view of the tower the camera needs
type Tower interface {
	SectionAtY(y float64) leveldata.SectionID
	IsMovingUp(from, to leveldata.SectionID) bool
	UpdateCurrentSection(y float64) leveldata.SectionID
	SectionCount() int
	SectionHeight() float64
	First() leveldata.SectionID
}

// Change is a one-shot section change notice
type Change struct {
	From      leveldata.SectionID
	To        leveldata.SectionID
	Direction leveldata.Direction // Up or Down
}

// ViewBounds is the visible world rectangle
type ViewBounds struct {
	Top, Bottom float64
	Left, Right float64
}

type Controller struct {
	tower Tower

	x, y    float64 // x never moves; y is the world Y of the viewport top
	targetY float64
	minY    float64
	maxY    float64

	lastSection leveldata.SectionID
	change      *Change
}

func New(t Tower) *Controller {
	c := &Controller{
		tower: t,
		minY:  -t.SectionHeight() * float64(t.SectionCount()-1),
		maxY:  0,
	}
	c.Reset()
	return c
}

// Update moves the camera one frame toward the player. Only when the player
// leaves the dead zone does the target change; the camera then eases toward
// it.
func (c *Controller) Update(playerY float64) {
	screenY := playerY - c.y
	top := cfg.Camera.DeadZoneTop
	bottom := cfg.Camera.ViewportHeight - cfg.Camera.DeadZoneBottom

	if screenY < top {
		c.targetY = playerY - top
	} else if screenY > bottom {
		c.targetY = playerY - bottom
	}

	c.targetY = gamemath.Clamp(c.targetY, c.minY, c.maxY)
	c.y = gamemath.Lerp(c.y, c.targetY, cfg.Camera.FollowSmoothing)

	c.checkSectionChange(playerY)
}

func (c *Controller) checkSectionChange(playerY float64) {
	current := c.tower.SectionAtY(playerY)
	if current == c.lastSection {
		return
	}

	dir := leveldata.Down
	if c.tower.IsMovingUp(c.lastSection, current) {
		dir = leveldata.Up
	}
	c.change = &Change{From: c.lastSection, To: current, Direction: dir}
	c.lastSection = current
	c.tower.UpdateCurrentSection(playerY)
}

// SectionChange returns the pending change. It stays set until
// ClearSectionChange; a newer change overwrites an unread one.
func (c *Controller) SectionChange() (Change, bool) {
	if c.change == nil {
		return Change{}, false
	}
	return *c.change, true
}

func (c *Controller) ClearSectionChange() {
	c.change = nil
}

func (c *Controller) ViewBounds() ViewBounds {
	return ViewBounds{
		Top:    c.y,
		Bottom: c.y + cfg.Camera.ViewportHeight,
		Left:   0,
		Right:  cfg.Camera.ViewportWidth,
	}
}

func (c *Controller) WorldToScreen(world dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: world.X - c.x, Y: world.Y - c.y}
}

func (c *Controller) ScreenToWorld(screen dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: screen.X + c.x, Y: screen.Y + c.y}
}

// IsVisible reports whether a world rectangle intersects the viewport.
func (c *Controller) IsVisible(x, y, width, height float64) bool {
	s := c.WorldToScreen(dmath.Vec2{X: x, Y: y})
	return s.X+width > 0 &&
		s.X < cfg.Camera.ViewportWidth &&
		s.Y+height > 0 &&
		s.Y < cfg.Camera.ViewportHeight
}

// SetPosition jumps straight to y without smoothing. x is ignored because
// the tower never scrolls sideways.
func (c *Controller) SetPosition(_, y float64) {
	y = gamemath.Clamp(y, c.minY, c.maxY)
	c.x = 0
	c.y = y
	c.targetY = y
}

// Reset puts the camera back at the bottom of the tower.
func (c *Controller) Reset() {
	c.x, c.y, c.targetY = 0, 0, 0
	c.lastSection = c.tower.First()
	c.change = nil
}

// SnapTo centres the dead zone on playerY immediately and adopts its section
// without emitting a change. Used after teleports.
func (c *Controller) SnapTo(playerY float64) {
	c.SetPosition(0, playerY-cfg.Camera.DeadZoneTop)
	c.lastSection = c.tower.UpdateCurrentSection(playerY)
	c.change = nil
}

func (c *Controller) Viewport() (width, height float64) {
	return cfg.Camera.ViewportWidth, cfg.Camera.ViewportHeight
}

func (c *Controller) X() float64       { return c.x }
func (c *Controller) Y() float64       { return c.y }
func (c *Controller) TargetY() float64 { return c.targetY }
func (c *Controller) MinY() float64    { return c.minY }
func (c *Controller) MaxY() float64    { return c.maxY }

// Converged reports whether the camera has settled on its target.
func (c *Controller) Converged() bool {
	return math.Abs(c.targetY-c.y) < 0.5
}
