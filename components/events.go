package components

import (
	"github.com/yohamta/donburi/features/events"
)

// Discrete notifications the core publishes synchronously at the state
// transition that causes them. The presentation and persistence layers
// subscribe; nothing in the simulation reads them back. Queued events are
// drained once per tick via events.ProcessAllEvents.

// SheepRescuedEvent fires when a sheep flips to following.
type SheepRescued struct {
	Rescued int // running count after this rescue
	Total   int
}

// CollectibleGatheredEvent fires once per collectible, on first contact.
type CollectibleGathered struct {
	TypeName string
	Value    int
	Healed   int
}

// DamageTaken fires when the player actually loses hearts (not while
// invulnerable).
type DamageTaken struct {
	Amount    int
	HeartsNow int
}

// LevelComplete fires when every sheep in the level has been rescued.
type LevelComplete struct {
	LevelIndex   int
	LevelName    string
	SheepRescued int
	Collected    int
	GoldenWool   int
	Score        int
}

// LevelFailed fires when the player's hearts reach zero. This is the only
// terminal condition the core surfaces outward.
type LevelFailed struct {
	LevelIndex int
}

var SheepRescuedEvent = events.NewEventType[SheepRescued]()
var CollectibleGatheredEvent = events.NewEventType[CollectibleGathered]()
var DamageTakenEvent = events.NewEventType[DamageTaken]()
var LevelCompleteEvent = events.NewEventType[LevelComplete]()
var LevelFailedEvent = events.NewEventType[LevelFailed]()
