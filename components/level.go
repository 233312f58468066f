package components

import (
	"github.com/quiltvale/woolfang/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the loaded levels and the per-level
// running tallies the HUD and persistence consume.
type LevelData struct {
	Levels       []leveldata.Level
	LevelIndex   int
	CurrentLevel *leveldata.Level

	SheepRescued int
	SheepTotal   int
	Collected    int
	GoldenWool   int
	Score        int

	Complete bool
	Failed   bool
}

var Level = donburi.NewComponentType[LevelData]()
