// Package palette holds the flat colors the tower is drawn with in place of
// sprite sheets. Colors are authored as hex and blended in HCL so shades of
// one hue stay perceptually even.
package palette

import (
	"strings"

	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/lucasb-eyer/go-colorful"
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Sky is a vertical gradient.
type Sky struct {
	Top, Bottom colorful.Color
}

var skies = map[leveldata.BackgroundType]Sky{
	leveldata.BackgroundHills:     {mustHex("#7ec8f0"), mustHex("#d8f0ff")},
	leveldata.BackgroundTrees:     {mustHex("#5fa8d3"), mustHex("#c6e6c0")},
	leveldata.BackgroundMushrooms: {mustHex("#8a6fc4"), mustHex("#f0c6e0")},
	leveldata.BackgroundDesert:    {mustHex("#f4a259"), mustHex("#fbe3b0")},
	leveldata.BackgroundClouds:    {mustHex("#a9c9e8"), mustHex("#ffffff")},
}

var terrains = map[string]colorful.Color{
	"grass":  mustHex("#5bb347"),
	"sand":   mustHex("#e0c070"),
	"purple": mustHex("#9b6bd6"),
	"stone":  mustHex("#8c8c96"),
}

var creatures = map[string]colorful.Color{
	"frog":    mustHex("#3fbf5f"),
	"ladybug": mustHex("#e0413a"),
	"snail":   mustHex("#d9a441"),
	"mouse":   mustHex("#a7a2b8"),
}

var decorations = map[string]colorful.Color{
	"bush":     mustHex("#3e8f3a"),
	"grass":    mustHex("#6fcf5a"),
	"cactus":   mustHex("#4c9a5b"),
	"flag":     mustHex("#3b6fe0"),
	"mushroom": mustHex("#c8553d"),
	"torch":    mustHex("#f5b83d"),
}

var (
	fallback = mustHex("#ff00ff")
	dirt     = mustHex("#6b4a2f")
	Ladder   = mustHex("#a0703c")
	Player   = mustHex("#f2f2f2")
	Outline  = mustHex("#202028")
)

// SkyFor returns the gradient for bg, falling back to the hills sky.
func SkyFor(bg leveldata.BackgroundType) Sky {
	if s, ok := skies[bg]; ok {
		return s
	}
	return skies[leveldata.BackgroundHills]
}

// At blends the gradient, t = 0 at the top.
func (s Sky) At(t float64) colorful.Color {
	return s.Top.BlendHcl(s.Bottom, clamp01(t)).Clamped()
}

// TerrainFrame colors a terrain frame such as "terrain_grass_horizontal_left"
// by its material. Surface frames get the material color, block interiors
// fade toward dirt.
func TerrainFrame(frame string) colorful.Color {
	material, part := splitTerrainFrame(frame)
	c, ok := terrains[material]
	if !ok {
		return fallback
	}
	if strings.HasPrefix(part, "block") && !strings.Contains(part, "top") {
		return c.BlendHcl(dirt, 0.6).Clamped()
	}
	return c
}

func splitTerrainFrame(frame string) (material, part string) {
	rest := strings.TrimPrefix(frame, "terrain_")
	material, part, _ = strings.Cut(rest, "_")
	return material, part
}

// Creature colors an NPC sprite. Nearby NPCs are drawn lighter.
func Creature(sprite string, highlighted bool) colorful.Color {
	c, ok := creatures[sprite]
	if !ok {
		c = creatures["frog"]
	}
	if highlighted {
		return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.3).Clamped()
	}
	return c
}

// Decoration colors a decoration frame by its first word, so "flag_blue_a"
// and "flag_blue_b" share a color.
func Decoration(frame string) colorful.Color {
	kind, _, _ := strings.Cut(frame, "_")
	if c, ok := decorations[kind]; ok {
		return c
	}
	return fallback
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
