package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/tower-climb/assets"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	messageBoxPadding = 8
	noticeTopMargin   = 48
	noticeGap         = 4
)

// Cached font faces for message rendering (lazy initialized)
var (
	bannerFontFace font.Face
	noticeFontFace font.Face
)

// DrawMessage renders the section banner at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.TitleKey == "" || state.Remaining <= 0 {
		return
	}

	if bannerFontFace == nil {
		bannerFontFace = fonts.Title.Get()
	}

	// Fade out over the last half second
	alpha := 1.0
	if left := state.Remaining.Seconds(); left < 0.5 {
		alpha = left / 0.5
	}

	title := assets.T(state.TitleKey)
	drawTextBox(screen, bannerFontFace, title, float32(cfg.UI.HUDMargin*3), alpha)
}

// DrawNotifications renders the oldest queued notification below the banner.
func DrawNotifications(ecs *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(ecs)
	if !ok || lvl.Notices == nil {
		return
	}
	n, ok := lvl.Notices.Current()
	if !ok {
		return
	}

	if noticeFontFace == nil {
		noticeFontFace = fonts.Bold.Get()
	}

	y := float32(noticeTopMargin + cfg.UI.HUDMargin*3)
	y += drawTextBox(screen, noticeFontFace, assets.T(n.Title), y, 1) + noticeGap
	if n.Message != "" {
		drawTextBox(screen, fonts.Regular.Get(), assets.T(n.Message), y, 1)
	}
}

// drawTextBox draws str centered horizontally at y and returns the height of
// the box it drew.
func drawTextBox(screen *ebiten.Image, face font.Face, str string, y float32, alpha float64) float32 {
	bounds := text.BoundString(face, str) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	boxWidth := float32(textWidth) + messageBoxPadding*2
	boxHeight := float32(textHeight) + messageBoxPadding*2

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2

	vector.FillRect(screen, boxX, y, boxWidth, boxHeight, scaleAlpha(cfg.BlackOverlay, alpha), false)

	textX := int(boxX + messageBoxPadding)
	textY := int(y+messageBoxPadding) - bounds.Min.Y
	text.Draw(screen, str, face, textX, textY, scaleAlpha(cfg.White, alpha)) //nolint:staticcheck // TODO: migrate to text/v2
	return boxHeight
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	// Premultiplied, so every channel scales
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(text string, inputMethod components.InputMethod) string {
	var labels map[string]string

	switch inputMethod {
	case components.InputPlayStation:
		labels = PlayStationLabels
	case components.InputXbox:
		labels = XboxLabels
	case components.InputTouch:
		labels = TouchLabels
	default:
		labels = KeyboardLabels
	}

	result := text
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}

	return result
}

// Hint is the translated text for key with placeholders resolved for the
// last used input device.
func Hint(ecs *ecs.ECS, key string) string {
	input := getOrCreateInput(ecs)
	return resolvePlaceholders(assets.T(key), input.LastInputMethod)
}
