package config

// EntityState is the observable animation state of an entity
type EntityState int

const (
	Idle EntityState = iota
	Walk
	Jump
	Climb
	Fall
	Hit
	Charge
)

var stateNames = map[EntityState]string{
	Idle:   "idle",
	Walk:   "walk",
	Jump:   "jump",
	Climb:  "climb",
	Fall:   "fall",
	Hit:    "hit",
	Charge: "charge",
}

func (s EntityState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
