package components

import (
	"github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
)

// EnemyData carries the AI state for one enemy. Timers are ticks.
type EnemyData struct {
	TypeName   string                  // "Wolf", "Boar"
	TypeConfig *config.EnemyTypeConfig // cached reference to the variant table
	Direction  Vector

	// Patrol
	PatrolOriginX float64
	PatrolRange   float64
	PauseTicks    int     // remaining pause at a patrol bound
	BlockedTicks  int     // consecutive stalled ticks (obstacle heuristic)
	LastX         float64 // position at the previous tick, for stall detection

	// Combat
	AttackCooldown int

	// Boar charge sub-state
	Charging          bool
	ChargeDirX        float64
	ChargeStartX      float64
	ChargeCooldownTks int
}

var Enemy = donburi.NewComponentType[EnemyData]()
