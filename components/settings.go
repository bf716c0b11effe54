package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime toggles
type SettingsData struct {
	Debug   bool // Draw colliders and the debug line
	ShowFPS bool
}

var Settings = donburi.NewComponentType[SettingsData]()
