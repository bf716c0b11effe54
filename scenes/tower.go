package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/assets/shaders"
	"github.com/automoto/tower-climb/clock"
	"github.com/automoto/tower-climb/components"
	"github.com/automoto/tower-climb/notification"
	"github.com/automoto/tower-climb/scheduler"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/automoto/tower-climb/systems"
	"github.com/automoto/tower-climb/systems/factory"
	"github.com/automoto/tower-climb/tower"
	"github.com/automoto/tower-climb/ui"
	"github.com/automoto/tower-climb/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TowerOptions carries what main resolved from flags and config.
type TowerOptions struct {
	Sections []leveldata.WorldSection // Nil uses the built-in sections
	Registry prometheus.Registerer    // Nil disables scheduler metrics
	Clock    clock.Clock              // Nil uses the wall clock
}

// Number keys jump straight to a section, like the site's menu bar
var teleportKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// TowerScene is the playable tower. Ebiten's Update fires one scheduler
// frame, and the scheduler drives the ECS with the measured frame delta.
type TowerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         TowerOptions
	once         sync.Once

	world    *world.World
	level    *components.LevelData
	frames   *scheduler.ManualFrames
	sched    *scheduler.Scheduler
	dialogue *ui.DialogueUI
}

func NewTowerScene(sc SceneChanger, opts TowerOptions) *TowerScene {
	return &TowerScene{sceneChanger: sc, opts: opts}
}

func (ts *TowerScene) Update() {
	ts.once.Do(ts.configure)

	ts.handleTeleport()
	ts.frames.Fire()

	ts.dialogue.Sync(ts.world.Dialogue())
	ts.dialogue.Update()

	if ts.level.Link != "" {
		// Links are surfaced as a notification; opening a browser is left to
		// the platform shell.
		log.Printf("[scene] external link: %s", ts.level.Link)
		ts.level.Link = ""
	}
}

func (ts *TowerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.dialogue.Draw(screen)
}

func (ts *TowerScene) handleTeleport() {
	order := ts.world.Tower().Order()
	for i, key := range teleportKeys {
		if i >= len(order) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := ts.world.TeleportToSection(order[i]); err != nil {
			log.Printf("[scene] teleport to %s: %v", order[i], err)
		}
		return
	}
}

func (ts *TowerScene) configure() {
	if err := shaders.Load(); err != nil {
		// The renderers fall back to flat fills
		log.Printf("[scene] failed to load shaders: %v", err)
	}

	sections := ts.opts.Sections
	if sections == nil {
		sections = leveldata.Sections()
	}
	c := ts.opts.Clock
	if c == nil {
		c = clock.Real{}
	}

	notices := notification.NewQueue(c)
	ts.world = world.New(tower.New(sections), c, notices)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so the world sees this frame's presses
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateWorld)
	ecs.AddSystem(systems.UpdateEntities)
	ecs.AddSystem(systems.UpdateMessage)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawBackground)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawTerrain)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawNPCs)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawTransition)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawMessage)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawNotifications)

	ts.ecs = ecs

	level := factory.CreateLevel(ts.ecs, ts.world, notices)
	ts.level = components.Level.Get(level)
	factory.CreateCamera(ts.ecs)
	factory.PopulateTower(ts.ecs, ts.world)

	ts.dialogue = ui.NewDialogueUI()

	var opts []scheduler.Option
	if ts.opts.Registry != nil {
		opts = append(opts, scheduler.WithObserver(scheduler.NewMetrics(ts.opts.Registry)))
	}
	ts.frames = scheduler.NewManualFrames()
	ts.sched = scheduler.New(c, ts.frames, opts...)
	ts.sched.Register(ts.step)
	ts.sched.Start()

	log.Printf("[scene] tower ready: %d sections", ts.world.Tower().SectionCount())
}

// step is the scheduler callback: one simulation frame of dt.
func (ts *TowerScene) step(dt time.Duration) error {
	ts.level.DeltaTime = dt
	ts.level.FPS = ts.sched.FPS()
	ts.ecs.Update()
	return nil
}
