package systems

import (
	"math"
	"strings"

	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// stickActive remembers whether the analog stick was steering last frame,
// so letting go of it recentres the controls exactly once.
var stickActive bool

// UpdateInput polls the devices and feeds the changes into the level's
// Controls. Must run before UpdateWorld.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	stickX, stickY, stickGpID := getAnalogStick(gamepadIDs)
	stickNow := math.Abs(stickX) > cfg.Input.JoystickDeadzoneX || math.Abs(stickY) > cfg.Input.JoystickDeadzoneY
	if stickNow {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	pointerUsed := pollPointer(input)

	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case pointerUsed:
		input.LastInputMethod = components.InputTouch
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
		settings.ShowFPS = settings.Debug
	}

	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	feedActions(lvl.Controls, input)
	if stickNow || stickActive {
		lvl.Controls.SetJoystick(stickX, stickY)
	}
	stickActive = stickNow
	feedPointer(ecs, lvl, input)
}

// feedActions forwards press and release edges to the controls.
func feedActions(ctl *controls.Controls, input *components.InputData) {
	for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
		if a == cfg.ActionToggleDebug {
			continue
		}
		state := GetAction(input, a)
		switch {
		case state.JustPressed:
			ctl.Press(a)
		case state.JustReleased:
			ctl.Release(a)
		}
	}
}

// pollPointer reads the first touch, or the mouse when nothing touches the
// screen. It reports whether the pointer is down.
func pollPointer(input *components.InputData) bool {
	input.PointerWasDown = input.PointerDown

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.Pointer = dmath.Vec2{X: float64(x), Y: float64(y)}
		input.PointerDown = true
		return true
	}

	x, y := ebiten.CursorPosition()
	input.Pointer = dmath.Vec2{X: float64(x), Y: float64(y)}
	input.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return input.PointerDown
}

func feedPointer(ecs *ecs.ECS, lvl *components.LevelData, input *components.InputData) {
	w := lvl.World
	ctl := lvl.Controls

	visual := w.Player().VisualPosition()
	ctl.SetPlayerPosition(dmath.Vec2{
		X: visual.X + cfg.Player.VisualWidth/2,
		Y: visual.Y + cfg.Player.VisualHeight/2,
	})

	switch {
	case input.PointerDown && !input.PointerWasDown:
		if w.Dialogue().IsOpen() {
			// A tap anywhere pages the dialogue.
			ctl.Press(cfg.ActionInteract)
			ctl.Release(cfg.ActionInteract)
			return
		}
		ctl.PointerDown(input.Pointer, w.Camera().ScreenToWorld(input.Pointer))
	case input.PointerDown:
		ctl.PointerMove(input.Pointer)
	case input.PointerWasDown:
		ctl.PointerUp()
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStick returns the left stick of the first gamepad that is pushed
// past the deadzone.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64, activeGpID ebiten.GamepadID) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) > cfg.Input.JoystickDeadzoneX || math.Abs(v) > cfg.Input.JoystickDeadzoneY {
			return h, v, gpID
		}
	}
	return 0, 0, 0
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetOrCreateSettings returns the settings singleton.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}

func getLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
