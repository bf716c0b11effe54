package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionClimbUp
	ActionClimbDown
	ActionJump
	ActionInteract
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionClimbUp:     "climb_up",
	ActionClimbDown:   "climb_down",
	ActionJump:        "jump",
	ActionInteract:    "interact",
	ActionToggleDebug: "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
