package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names expected in a level TMX.
const (
	terrainLayer     = "terrain"
	playerSpawnGroup = "PlayerSpawn"
	sheepGroup       = "Sheep"
	enemyGroup       = "Enemies"
	collectibleGroup = "Collectibles"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers
// can pass embed.FS or a test filesystem. Malformed level data is returned
// as an error; callers fail fast (see the construction-time contract).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
	}
	// Map-level properties are absent entirely when the TMX carries none.
	if levelMap.Properties != nil {
		level.Background = levelMap.Properties.GetString("background")
	}

	grid, err := parseTerrain(levelMap)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	level.Grid = grid

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			for _, o := range og.Objects {
				level.PlayerSpawn = Point{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		case sheepGroup:
			for _, o := range og.Objects {
				level.SheepSpawns = append(level.SheepSpawns, Point{X: o.X, Y: o.Y})
			}
		case enemyGroup:
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:           o.X,
					Y:           o.Y,
					Type:        o.Properties.GetString("type"),
					PatrolRange: o.Properties.GetFloat("patrolRange"),
				})
			}
		case collectibleGroup:
			for _, o := range og.Objects {
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					X:    o.X,
					Y:    o.Y,
					Type: o.Properties.GetString("type"),
				})
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("level %s: no player spawn defined", level.Name)
	}

	// Spawn order is positional so runs are reproducible regardless of
	// authoring order in the editor.
	sort.Slice(level.SheepSpawns, func(i, j int) bool {
		return level.SheepSpawns[i].X < level.SheepSpawns[j].X
	})

	return level, nil
}

// parseTerrain converts the terrain tile layer into a TileGrid. The TMX
// tileset starts at firstgid 1, so a placed tile with tileset-local id N
// is game tile id N+1; an absent tile is empty (0).
func parseTerrain(levelMap *tiled.Map) (*TileGrid, error) {
	for _, layer := range levelMap.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		cells := make([]int, levelMap.Width*levelMap.Height)
		for i, tile := range layer.Tiles {
			if tile.IsNil() {
				continue
			}
			cells[i] = int(tile.ID) + 1
		}
		return NewTileGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth, cells)
	}
	return nil, fmt.Errorf("no %q tile layer", terrainLayer)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and
// returns them sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}
