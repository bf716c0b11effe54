package systems

import (
	"image/color"

	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug && !cfg.Debug.ShowColliders {
		return
	}

	camera, ok := getCamera(ecs)
	if !ok {
		return // No camera yet
	}
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	w := lvl.World
	body := w.Player().Body()

	// Only the broadphase candidates the player is tested against
	for _, c := range w.Tower().CollidersNear(body.Bounds) {
		strokeBox(screen, camera, c, color.RGBA{100, 100, 100, 255}) // Grey
	}
	for _, c := range w.Tower().LadderColliders() {
		strokeBox(screen, camera, c, color.RGBA{0, 255, 0, 255}) // Green
	}
	strokeBox(screen, camera, body.Bounds, color.RGBA{0, 0, 255, 255}) // Blue

	nearby := w.NearbyNPC()
	for _, a := range w.NPCs() {
		pos := a.Position()
		x, y := worldToScreen(camera, pos.X, pos.Y)
		c := cfg.LightBlue
		if a == nearby {
			c = cfg.Yellow
		}
		vector.StrokeCircle(screen, x, y, float32(a.Radius()), 1, c, false)
	}

	ebitenutil.DebugPrintAt(screen, w.String(), 4, screen.Bounds().Dy()-32)
	ebitenutil.DebugPrintAt(screen, "phase="+w.Transition().Phase().String(), 4, screen.Bounds().Dy()-18)
}

func strokeBox(screen *ebiten.Image, camera *components.CameraData, box physics.AABB, c color.Color) {
	x, y := worldToScreen(camera, box.X, box.Y)
	vector.StrokeRect(screen, x, y, float32(box.Width), float32(box.Height), 1, c, false)
}
