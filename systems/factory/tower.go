package factory

import (
	"github.com/automoto/tower-climb/world"
	"github.com/yohamta/donburi/ecs"
)

// PopulateTower spawns one entity per tile, ladder, decoration and NPC of
// the world, plus the player.
func PopulateTower(ecs *ecs.ECS, w *world.World) {
	t := w.Tower()

	for _, tile := range t.Terrain() {
		CreateTerrain(ecs, tile)
	}
	for _, box := range t.LadderColliders() {
		CreateLadder(ecs, box)
	}
	for _, d := range t.Decorations() {
		CreateDecoration(ecs, d)
	}
	for _, a := range w.NPCs() {
		CreateNPC(ecs, a)
	}
	CreatePlayer(ecs, w.Player())
}
