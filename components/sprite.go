package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names the tile-sheet frame an entity is drawn with.
type SpriteData struct {
	Sheet string
	Frame string
	Solid bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
