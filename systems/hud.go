package systems

import (
	"fmt"

	"github.com/automoto/tower-climb/assets"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudFontFace font.Face

// DrawHUD renders the current section name in the top-left corner, the
// interaction hint when an NPC is close, and the frame rate when enabled.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	if hudFontFace == nil {
		hudFontFace = fonts.Small.Get()
	}

	margin := int(cfg.UI.HUDMargin)
	lineHeight := hudFontFace.Metrics().Height.Ceil()
	w := lvl.World

	section := fmt.Sprintf("%s: %s", assets.T("hud.section"), assets.T(w.SectionTitle()))
	text.Draw(screen, section, hudFontFace, margin, margin+lineHeight, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2

	settings := GetOrCreateSettings(ecs)
	if settings.ShowFPS {
		fps := fmt.Sprintf("%s: %d", assets.T("hud.fps"), lvl.FPS)
		bounds := text.BoundString(hudFontFace, fps) //nolint:staticcheck // TODO: migrate to text/v2
		x := screen.Bounds().Dx() - margin - bounds.Dx()
		text.Draw(screen, fps, hudFontFace, x, margin+lineHeight, cfg.Yellow) //nolint:staticcheck // TODO: migrate to text/v2
	}

	if w.NearbyNPC() != nil && !w.Dialogue().IsOpen() && !w.Transition().IsActive() {
		hint := Hint(ecs, "dialogue.hint")
		bounds := text.BoundString(hudFontFace, hint) //nolint:staticcheck // TODO: migrate to text/v2
		x := (screen.Bounds().Dx() - bounds.Dx()) / 2
		y := screen.Bounds().Dy() - margin
		text.Draw(screen, hint, hudFontFace, x, y, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
