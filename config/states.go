package config

// StateID identifies an entity behavior state.
type StateID int

const (
	StateNone StateID = iota

	// Player movement states, derived from body state every tick.
	StateIdle
	StateRun
	StateJump
	StateFall
	StateCrouch

	// Enemy AI states.
	StatePatrol
	StateChase
	StateAttack
	StateCharge

	// Sheep states.
	StateSheepIdle
	StateFollow
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateIdle:      "idle",
	StateRun:       "run",
	StateJump:      "jump",
	StateFall:      "fall",
	StateCrouch:    "crouch",
	StatePatrol:    "patrol",
	StateChase:     "chase",
	StateAttack:    "attack",
	StateCharge:    "charge",
	StateSheepIdle: "sheep-idle",
	StateFollow:    "follow",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}
