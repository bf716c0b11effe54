package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tower-climb/assets/shaders"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/npc"
	"github.com/automoto/tower-climb/palette"
	"github.com/automoto/tower-climb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Entities partly inside this margin are still drawn so nothing pops at
// the screen edges.
const cullPadding = 64.0

var skyOp = &ebiten.DrawRectShaderOptions{Uniforms: map[string]any{}}

// DrawBackground paints the sky gradient for the latched background.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	sky := palette.SkyFor(lvl.World.Background())
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if shaders.SkyShader == nil {
		// Banded fallback when shaders were not compiled
		const bands = 16
		bandH := float32(h) / bands
		for i := 0; i < bands; i++ {
			c := sky.At(float64(i) / (bands - 1))
			vector.FillRect(screen, 0, float32(i)*bandH, float32(w), bandH+1, c, false)
		}
		return
	}

	skyOp.Uniforms["Top"] = vec4(sky.Top, 1)
	skyOp.Uniforms["Bottom"] = vec4(sky.Bottom, 1)
	skyOp.Uniforms["Height"] = float32(h)
	screen.DrawRectShader(w, h, shaders.SkyShader, skyOp)
}

// DrawTerrain renders tiles, ladders and decorations inside the viewport.
func DrawTerrain(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	visible := func(o *components.ObjectData) bool {
		return o.Right() >= camera.Position.X-cullPadding && o.X <= camera.Position.X+width+cullPadding &&
			o.Bottom() >= camera.Position.Y-cullPadding && o.Y <= camera.Position.Y+height+cullPadding
	}

	tags.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o) {
			return
		}
		s := components.Sprite.Get(e)
		x, y := worldToScreen(camera, o.X, o.Y)
		size := float32(o.Width) / 2
		// Decorations sit on the ground in the lower half of their tile
		vector.FillRect(screen, x+size/2, y+size, size, size, palette.Decoration(s.Frame), false)
	})

	tags.Terrain.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o) {
			return
		}
		s := components.Sprite.Get(e)
		x, y := worldToScreen(camera, o.X, o.Y)
		w, h := float32(o.Width), float32(o.Height)
		vector.FillRect(screen, x, y, w, h, palette.TerrainFrame(s.Frame), false)
		vector.StrokeRect(screen, x, y, w, h, 1, palette.Outline, false)
	})

	tags.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o) {
			return
		}
		drawLadder(screen, camera, o)
	})
}

func drawLadder(screen *ebiten.Image, camera *components.CameraData, o *components.ObjectData) {
	x, y := worldToScreen(camera, o.X, o.Y)
	w, h := float32(o.Width), float32(o.Height)
	const rail = 4
	inset := w / 6

	vector.FillRect(screen, x+inset, y, rail, h, palette.Ladder, false)
	vector.FillRect(screen, x+w-inset-rail, y, rail, h, palette.Ladder, false)

	rungGap := float32(cfg.Physics.TileSize) / 4
	for ry := y + rungGap/2; ry < y+h; ry += rungGap {
		vector.StrokeLine(screen, x+inset, ry, x+w-inset, ry, 3, palette.Ladder, false)
	}
}

// DrawNPCs renders each creature at its patrol position. Nearby creatures
// are highlighted and show a speech mark.
func DrawNPCs(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		n := components.NPC.Get(e)
		o := components.Object.Get(e)
		x, y := worldToScreen(camera, o.X, o.Y)
		w, h := float32(o.Width), float32(o.Height)
		if x+w < -cullPadding || y+h < -cullPadding || float64(y) > float64(screen.Bounds().Dy())+cullPadding {
			return
		}

		body := palette.Creature(n.Actor.NPC.Sprite, n.Nearby || n.Talking)
		vector.FillRect(screen, x, y+h/3, w, h*2/3, body, false)
		vector.StrokeRect(screen, x, y+h/3, w, h*2/3, 1, palette.Outline, false)

		// Walk cycle: alternate frames shift the head a pixel
		bob := float32(0)
		if frameIndex(n.Actor) == 1 {
			bob = 1
		}
		eyeX := x + w*3/4
		if !n.Actor.FacingRight() {
			eyeX = x + w/4
		}
		vector.DrawFilledCircle(screen, eyeX, y+h/2-bob, 3, palette.Outline, false)

		if n.Nearby && !n.Talking {
			drawSpeechMark(screen, x+w/2, y-4)
		}
	})
}

// frameIndex is 0 on the actor's rest frame and 1 otherwise.
func frameIndex(a *npc.Actor) int {
	if a.Frame(false) == a.Frame(true) {
		return 0
	}
	return 1
}

func drawSpeechMark(screen *ebiten.Image, cx, bottom float32) {
	vector.FillRect(screen, cx-2, bottom-14, 4, 9, cfg.White, false)
	vector.FillRect(screen, cx-2, bottom-3, 4, 3, cfg.White, false)
}

// DrawPlayer renders the player with its transition offset and, while
// charging, the charge bar above the sprite.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(entry)
	o := components.Object.Get(entry)
	anim := components.Animation.Get(entry)

	alpha := p.Offset.Opacity
	if alpha <= 0 {
		return
	}

	x, y := worldToScreen(camera, o.X+p.Offset.X, o.Y+p.Offset.Y)
	w, h := float32(o.Width), float32(o.Height)

	// Pose from the animation frame
	squash := float32(0)
	switch p.State {
	case cfg.Charge:
		squash = float32(p.Charge) * h / 6
	case cfg.Walk, cfg.Idle, cfg.Climb:
		squash = float32(anim.Frame()%2) * 2
	}

	body := withAlpha(palette.Player, alpha)
	outline := withAlpha(palette.Outline, alpha)
	vector.FillRect(screen, x, y+squash, w, h-squash, body, false)
	vector.StrokeRect(screen, x, y+squash, w, h-squash, 2, outline, false)

	if p.State != cfg.Climb {
		eyeX := x + w*2/3
		if !p.FacingRight {
			eyeX = x + w/3
		}
		vector.DrawFilledCircle(screen, eyeX, y+squash+h/4, 3, outline, false)
	}

	if p.Charging {
		drawChargeBar(ecs, screen, x+w/2, y)
	}
}

func drawChargeBar(ecs *ecs.ECS, screen *ebiten.Image, cx, top float32) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	charge := lvl.World.Player().Charge()

	barW, barH := float32(cfg.UI.ChargeBarWidth), float32(cfg.UI.ChargeBarHeight)
	x := cx - barW/2
	y := top - float32(cfg.UI.ChargeBarOffset) - barH

	vector.FillRect(screen, x, y, barW, barH, cfg.BlackOverlay, false)
	fill := barW * float32(charge.Percent()/100)
	vector.FillRect(screen, x, y, fill, barH, charge.Color(), false)
	vector.StrokeRect(screen, x, y, barW, barH, 1, cfg.White, false)

	// Aim marker
	aim := float32(charge.AimDirection())
	vector.StrokeLine(screen, cx, y-2, cx+aim*barW/2, y-6, 2, cfg.White, false)
}

// DrawTransition covers the screen with the fade overlay, closing in on
// the player.
func DrawTransition(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	overlay := lvl.World.Transition().Overlay()
	if overlay <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if shaders.FadeShader == nil {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(255 * math.Min(overlay, 1))}, false)
		return
	}

	center := lvl.World.Camera().WorldToScreen(playerCenter(lvl))
	op := &ebiten.DrawRectShaderOptions{Uniforms: map[string]any{
		"Opacity": float32(overlay),
		"Center":  []float32{float32(center.X), float32(center.Y)},
		"Radius":  float32(math.Hypot(float64(w), float64(h))),
	}}
	screen.DrawRectShader(w, h, shaders.FadeShader, op)
}

func playerCenter(lvl *components.LevelData) dmath.Vec2 {
	b := lvl.World.Player().Body().Bounds
	return dmath.Vec2{X: b.CenterX(), Y: b.CenterY()}
}

func vec4(c colorful.Color, a float32) []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), a}
}

func withAlpha(c colorful.Color, alpha float64) color.Color {
	r, g, b := c.RGB255()
	return scaleAlpha(color.RGBA{R: r, G: g, B: b, A: 255}, alpha)
}
