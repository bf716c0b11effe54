package systems

import (
	cfg "github.com/automoto/tower-climb/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action onto its keys and gamepad buttons. It lives
// here rather than in config so the simulation packages stay free of ebiten.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionClimbUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionClimbDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionInteract: {
		Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyEnter},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// Button labels substituted into {placeholder} tokens of translated text,
// per input device.
var (
	KeyboardLabels = map[string]string{
		"interact": "E",
		"jump":     "Space",
	}
	XboxLabels = map[string]string{
		"interact": "X",
		"jump":     "A",
	}
	PlayStationLabels = map[string]string{
		"interact": "Square",
		"jump":     "Cross",
	}
	TouchLabels = map[string]string{
		"interact": "tap",
		"jump":     "swipe",
	}
)
