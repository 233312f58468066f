package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// LevelResult is the per-level summary pushed to storage when a level is
// completed.
type LevelResult struct {
	LevelIndex   int    `json:"levelIndex"`
	LevelName    string `json:"levelName"`
	SheepRescued int    `json:"sheepRescued"`
	Collected    int    `json:"collected"`
	GoldenWool   int    `json:"goldenWool"`
	Score        int    `json:"score"`
}

// SavedProgress is the whole on-disk save: the furthest unlocked level
// plus the best result recorded per level.
type SavedProgress struct {
	LastUnlocked int                    `json:"lastUnlocked"`
	Results      map[string]LevelResult `json:"results"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. Failure is non-fatal: the game
// runs without saves.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "woolfang",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads the save file; a nil result means no save exists.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Warn("could not load progress", "err", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Warn("could not parse saved progress", "err", err)
		return nil, err
	}
	return &progress, nil
}

// SaveLevelResult merges one completed level into the save, keeping the
// best score seen for that level, and advances the unlock marker.
func SaveLevelResult(result LevelResult) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	progress, _ := LoadProgress()
	if progress == nil {
		progress = &SavedProgress{Results: map[string]LevelResult{}}
	}
	if progress.Results == nil {
		progress.Results = map[string]LevelResult{}
	}

	prev, seen := progress.Results[result.LevelName]
	if !seen || result.Score > prev.Score {
		progress.Results[result.LevelName] = result
	}
	if result.LevelIndex+1 > progress.LastUnlocked {
		progress.LastUnlocked = result.LevelIndex + 1
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Warn("could not serialize progress", "err", err)
		return err
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Warn("could not save progress", "err", err)
		return err
	}
	log.Debug("progress saved", "level", result.LevelName, "score", result.Score)
	return nil
}
