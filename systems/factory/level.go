package factory

import (
	"github.com/quiltvale/woolfang/archetypes"
	"github.com/quiltvale/woolfang/components"
	"github.com/quiltvale/woolfang/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel installs the loaded level set as the level singleton, with
// levelIndex as the active level. The index is clamped, never rejected.
func CreateLevel(ecs *ecs.ECS, levels []leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels loaded")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
		SheepTotal:   len(levels[levelIndex].SheepSpawns),
	})
	return level
}
