package factory

import (
	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/controls"
	"github.com/automoto/tower-climb/notification"
	"github.com/automoto/tower-climb/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the singleton that carries the simulation.
func CreateLevel(ecs *ecs.ECS, w *world.World, notices *notification.Queue) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.Set(level, &components.LevelData{
		World:    w,
		Notices:  notices,
		Controls: controls.New(),
	})
	components.Settings.SetValue(level, components.SettingsData{
		Debug:   cfg.Debug.ShowColliders,
		ShowFPS: cfg.Debug.ShowFPS,
	})
	components.MessageState.SetValue(level, components.MessageStateData{
		TitleKey:  w.SectionTitle(),
		Remaining: cfg.UI.BannerDuration,
	})

	return level
}
