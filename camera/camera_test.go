package camera

import (
	"testing"

	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/automoto/tower-climb/tower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func newCamera() (*Controller, *tower.Tower) {
	t := tower.NewDefault()
	return New(t), t
}

func TestNewStartsAtBottom(t *testing.T) {
	c, _ := newCamera()

	assert.Equal(t, 0.0, c.Y())
	assert.Equal(t, -2560.0, c.MinY())
	assert.Equal(t, 0.0, c.MaxY())
	_, changed := c.SectionChange()
	assert.False(t, changed)
}

func TestDeadZoneHoldsCameraStill(t *testing.T) {
	c, _ := newCamera()

	// Screen Y 300 sits between the top edge (200) and bottom edge (340).
	c.Update(300)
	assert.Equal(t, 0.0, c.Y())
	assert.Equal(t, 0.0, c.TargetY())
}

func TestAboveDeadZoneMovesCameraUp(t *testing.T) {
	c, _ := newCamera()

	c.Update(100)
	assert.Equal(t, -100.0, c.TargetY())
	assert.InDelta(t, -12.0, c.Y(), 1e-9, "one smoothing step of 0.12")
}

func TestBelowDeadZoneClampsAtBottom(t *testing.T) {
	c, _ := newCamera()

	c.Update(500)
	assert.Equal(t, 0.0, c.TargetY())
	assert.Equal(t, 0.0, c.Y())
}

func TestCameraStaysWithinBounds(t *testing.T) {
	for _, playerY := range []float64{5000, 300, -700, -10000} {
		c, _ := newCamera()
		for i := 0; i < 400; i++ {
			c.Update(playerY)
			require.GreaterOrEqual(t, c.Y(), c.MinY())
			require.LessOrEqual(t, c.Y(), c.MaxY())
		}
		assert.True(t, c.Converged(), "player y %v", playerY)
	}
}

func TestTopClampConvergesOnMinY(t *testing.T) {
	c, _ := newCamera()
	for i := 0; i < 400; i++ {
		c.Update(-10000)
	}
	assert.Equal(t, -2560.0, c.TargetY())
	assert.InDelta(t, -2560.0, c.Y(), 0.5)
}

func TestSectionChangeIsStickyUntilCleared(t *testing.T) {
	c, tw := newCamera()

	c.Update(-100)
	change, ok := c.SectionChange()
	require.True(t, ok)
	assert.Equal(t, Change{From: leveldata.Hero, To: leveldata.About, Direction: leveldata.Up}, change)
	assert.Equal(t, leveldata.About, tw.CurrentSection())

	// Staying in the same section does not clear it.
	c.Update(-110)
	_, ok = c.SectionChange()
	assert.True(t, ok)

	c.ClearSectionChange()
	_, ok = c.SectionChange()
	assert.False(t, ok)

	c.Update(200)
	change, ok = c.SectionChange()
	require.True(t, ok)
	assert.Equal(t, leveldata.Down, change.Direction)
	assert.Equal(t, leveldata.Hero, change.To)
}

func TestSectionChangeWithinLookaheadIsIgnored(t *testing.T) {
	c, _ := newCamera()

	c.Update(-59)
	_, ok := c.SectionChange()
	assert.False(t, ok)
}

func TestSetPositionClamps(t *testing.T) {
	c, _ := newCamera()

	c.SetPosition(50, -5000)
	assert.Equal(t, -2560.0, c.Y())
	assert.Equal(t, -2560.0, c.TargetY())
	assert.Equal(t, 0.0, c.X())

	c.SetPosition(0, 100)
	assert.Equal(t, 0.0, c.Y())
}

func TestReset(t *testing.T) {
	c, _ := newCamera()
	c.Update(-1000)
	c.Reset()

	assert.Equal(t, 0.0, c.Y())
	assert.Equal(t, 0.0, c.TargetY())
	_, ok := c.SectionChange()
	assert.False(t, ok)
}

func TestSnapToAdoptsSectionSilently(t *testing.T) {
	c, tw := newCamera()

	c.SnapTo(-1500)
	assert.Equal(t, -1700.0, c.Y())
	assert.Equal(t, leveldata.Projects, tw.CurrentSection())
	_, ok := c.SectionChange()
	assert.False(t, ok)

	c.Update(-1500)
	_, ok = c.SectionChange()
	assert.False(t, ok)
}

func TestWorldScreenConversion(t *testing.T) {
	c, _ := newCamera()
	c.SetPosition(0, -640)

	s := c.WorldToScreen(dmath.Vec2{X: 10, Y: -600})
	assert.Equal(t, dmath.Vec2{X: 10, Y: 40}, s)
	assert.Equal(t, dmath.Vec2{X: 10, Y: -600}, c.ScreenToWorld(s))

	b := c.ViewBounds()
	assert.Equal(t, ViewBounds{Top: -640, Bottom: 0, Left: 0, Right: 384}, b)
}

func TestIsVisible(t *testing.T) {
	c, _ := newCamera()

	assert.True(t, c.IsVisible(0, 576, 64, 64))
	assert.True(t, c.IsVisible(0, -63, 64, 64), "one pixel inside the top edge")
	assert.False(t, c.IsVisible(0, -64, 64, 64))
	assert.False(t, c.IsVisible(0, 640, 64, 64))
	assert.False(t, c.IsVisible(384, 0, 64, 64))
}
