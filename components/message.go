package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the section banner
type MessageStateData struct {
	TitleKey  string        // Translation key of the banner text ("" = none)
	Remaining time.Duration // Time left on screen
}

var MessageState = donburi.NewComponentType[MessageStateData]()
