package factory

import (
	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the entity that mirrors the player controller.
func CreatePlayer(ecs *ecs.ECS, p *player.Controller) *donburi.Entry {
	entry := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(entry, components.ObjectData{AABB: p.Body().Bounds})
	components.Player.SetValue(entry, components.PlayerData{
		FacingRight: p.FacingRight(),
		State:       p.State(),
	})
	components.Animation.Set(entry, GenerateAnimations(cfg.PlayerAnimations))

	return entry
}
