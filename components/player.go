package components

import (
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/transition"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingRight bool
	State       cfg.EntityState
	Charging    bool
	Charge      float64           // 0..1 while charging
	Offset      transition.Offset // Transition displacement and opacity
}

var Player = donburi.NewComponentType[PlayerData]()
