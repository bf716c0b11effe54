package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/assets"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/fonts"
	"github.com/automoto/tower-climb/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title screen. Jump, interact or a tap starts the climb.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         TowerOptions
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, opts TowerOptions) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(ms.updateMenu)
	ms.ecs.AddRenderer(archetypes.LayerHUD, ms.drawMenu)
}

func (ms *MenuScene) updateMenu(e *ecs.ECS) {
	input, ok := components.Input.First(e.World)
	if !ok {
		input = e.World.Entry(e.World.Create(components.Input))
	}
	data := components.Input.Get(input)
	data.Previous = data.Current
	data.Current = [cfg.ActionCount]bool{}
	for _, id := range []cfg.ActionID{cfg.ActionJump, cfg.ActionInteract} {
		for _, key := range systems.Bindings[id].Keys {
			if ebiten.IsKeyPressed(key) {
				data.Current[id] = true
			}
		}
	}

	start := systems.GetAction(data, cfg.ActionJump).JustPressed ||
		systems.GetAction(data, cfg.ActionInteract).JustPressed ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if start {
		ms.sceneChanger.ChangeScene(NewTowerScene(ms.sceneChanger, ms.opts))
	}
}

func (ms *MenuScene) drawMenu(e *ecs.ECS, screen *ebiten.Image) {
	height := screen.Bounds().Dy()

	drawCentered(screen, fonts.Title.Get(), assets.T("menu.title"), height/3, cfg.White)
	drawCentered(screen, fonts.Regular.Get(), systems.Hint(e, "menu.start"), height/2, cfg.LightBlue)
}

func drawCentered(screen *ebiten.Image, face font.Face, str string, y int, clr color.Color) {
	bounds := text.BoundString(face, str) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, str, face, x, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
