package components

import (
	"github.com/automoto/tower-climb/physics"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's world-space box.
type ObjectData struct {
	physics.AABB
}

var Object = donburi.NewComponentType[ObjectData]()
