package factory

import (
	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/physics"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTerrain(ecs *ecs.ECS, t leveldata.TerrainTile) *donburi.Entry {
	tile := cfg.Physics.TileSize
	entry := archetypes.Terrain.Spawn(ecs)

	components.Object.SetValue(entry, components.ObjectData{
		AABB: physics.AABB{X: t.X, Y: t.Y, Width: tile, Height: tile},
	})
	components.Sprite.SetValue(entry, components.SpriteData{Sheet: "tiles", Frame: t.Frame, Solid: t.Solid})

	return entry
}

func CreateLadder(ecs *ecs.ECS, box physics.AABB) *donburi.Entry {
	entry := archetypes.Ladder.Spawn(ecs)
	components.Object.SetValue(entry, components.ObjectData{AABB: box})
	return entry
}

func CreateDecoration(ecs *ecs.ECS, d leveldata.Decoration) *donburi.Entry {
	tile := cfg.Physics.TileSize
	entry := archetypes.Decoration.Spawn(ecs)

	components.Object.SetValue(entry, components.ObjectData{
		AABB: physics.AABB{X: d.X, Y: d.Y, Width: tile, Height: tile},
	})
	components.Sprite.SetValue(entry, components.SpriteData{Sheet: d.Sheet, Frame: d.Frame})

	return entry
}
