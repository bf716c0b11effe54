package components

import (
	"github.com/automoto/tower-climb/npc"
	"github.com/yohamta/donburi"
)

type NPCData struct {
	Actor   *npc.Actor
	Nearby  bool // Player is close enough to talk
	Talking bool
}

var NPC = donburi.NewComponentType[NPCData]()
