// Package shaders compiles the embedded Kage shaders once at startup.
package shaders

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.kage
var shaderFS embed.FS

var (
	// SkyShader paints the vertical background gradient.
	SkyShader *ebiten.Shader
	// FadeShader draws the transition cover.
	FadeShader *ebiten.Shader
)

// Load compiles and caches all shaders
func Load() error {
	var err error
	if SkyShader, err = loadShader("sky.kage"); err != nil {
		return err
	}
	if FadeShader, err = loadShader("fade.kage"); err != nil {
		return err
	}
	return nil
}

func loadShader(name string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewShader(src)
}
