package systems

import (
	"github.com/automoto/tower-climb/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera copies the camera controller's position onto the camera
// entity the renderers read.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	lvl, ok := getLevel(e)
	if !ok {
		return
	}

	cam := lvl.World.Camera()
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = cam.X()
	camera.Position.Y = cam.Y()
}

// worldToScreen offsets a world coordinate by the camera.
func worldToScreen(camera *components.CameraData, x, y float64) (float32, float32) {
	return float32(x - camera.Position.X), float32(y - camera.Position.Y)
}

func getCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
