package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData carries the player-specific behavior state. All timers are
// whole simulation ticks counting down to zero.
type PlayerData struct {
	Hearts    int
	MaxHearts int

	InvulnTicks     int
	JumpsLeft       int
	CoyoteTicks     int // remaining grace after leaving ground
	JumpBufferTicks int // remaining window for a buffered jump press
	Crouching       bool

	// NearbyInteractable is a weak handle into the entity list, refreshed
	// by the proximity query every tick and validated on use.
	NearbyInteractable donburi.Entity
	HasInteractable    bool

	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
