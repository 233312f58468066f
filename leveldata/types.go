package leveldata

// Level is everything the level data provider supplies for one level:
// static geometry plus initial actor placements. Immutable after load.
type Level struct {
	Name       string
	Grid       *TileGrid
	Background string // opaque descriptor consumed by the presentation layer

	PlayerSpawn  Point
	SheepSpawns  []Point
	EnemySpawns  []EnemySpawn
	Collectibles []CollectibleSpawn
}

// Point is a world-pixel position.
type Point struct {
	X, Y float64
}

// EnemySpawn places one enemy with its type and patrol range.
type EnemySpawn struct {
	X, Y        float64
	Type        string  // "Wolf" or "Boar"
	PatrolRange float64 // 0 means the configured default
}

// CollectibleSpawn places one collectible.
type CollectibleSpawn struct {
	X, Y float64
	Type string // "berry", "herb", "golden-wool", "heart"
}
