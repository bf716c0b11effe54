package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	NPC        = donburi.NewTag().SetName("NPC")
	Terrain    = donburi.NewTag().SetName("Terrain")
	Ladder     = donburi.NewTag().SetName("Ladder")
	Decoration = donburi.NewTag().SetName("Decoration")
)
