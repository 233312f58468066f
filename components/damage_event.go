package components

import "github.com/yohamta/donburi"

// DamageEventData queues one pending hit on an entity. SourceX is the
// attacker's center X so knockback can push away from the source; Respawn
// sends the victim back to its spawn point after the hit (hazards, void).
type DamageEventData struct {
	Amount  int
	SourceX float64
	HasSrc  bool
	Respawn bool
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
