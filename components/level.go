package components

import (
	"time"

	"github.com/automoto/tower-climb/controls"
	"github.com/automoto/tower-climb/notification"
	"github.com/automoto/tower-climb/world"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the simulation the systems drive.
type LevelData struct {
	World    *world.World
	Notices  *notification.Queue
	Controls *controls.Controls

	DeltaTime time.Duration // Scheduler delta for the current frame
	FPS       int
	Events    world.Events // What the last world update reported
	Link      string       // External link surfaced by the last dialogue, if any
}

var Level = donburi.NewComponentType[LevelData]()
