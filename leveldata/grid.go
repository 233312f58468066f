package leveldata

import "fmt"

// Tile ids as they appear in level data. The set is closed; anything
// outside it classifies as empty.
const (
	TileEmpty       = 0
	TileGround      = 1
	TileDirt        = 2
	TileGrass       = 3
	TileStone       = 4
	TilePlatform    = 5
	TileWater       = 6
	TileRockBarrier = 7
)

// TileClass is the collision classification of a tile id.
type TileClass int

const (
	ClassEmpty TileClass = iota
	ClassSolid
	ClassHazard
)

// Classify maps a tile id to its collision class. Pure, fixed table.
func Classify(id int) TileClass {
	switch id {
	case TileGround, TileDirt, TileGrass, TileStone, TilePlatform, TileRockBarrier:
		return ClassSolid
	case TileWater:
		return ClassHazard
	default:
		return ClassEmpty
	}
}

// TileGrid is the static level geometry, immutable after load.
// Cells are row-major tile ids.
type TileGrid struct {
	WidthInTiles  int
	HeightInTiles int
	TileSize      int
	Cells         []int
}

// NewTileGrid validates and wraps a cell array. A size mismatch is a
// construction-time contract violation and is returned as an error.
func NewTileGrid(width, height, tileSize int, cells []int) (*TileGrid, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("tile grid: invalid dimensions %dx%d (tile %d)", width, height, tileSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("tile grid: %d cells for %dx%d grid (want %d)",
			len(cells), width, height, width*height)
	}
	return &TileGrid{
		WidthInTiles:  width,
		HeightInTiles: height,
		TileSize:      tileSize,
		Cells:         cells,
	}, nil
}

// TileAt returns the tile id at (row, col). Out-of-range reads return
// TileEmpty so entities beyond the grid never collide with phantom tiles;
// world edges are the world step's concern, not the grid's.
func (g *TileGrid) TileAt(row, col int) int {
	if row < 0 || row >= g.HeightInTiles || col < 0 || col >= g.WidthInTiles {
		return TileEmpty
	}
	return g.Cells[row*g.WidthInTiles+col]
}

// SolidAt reports whether the tile at (row, col) is solid.
func (g *TileGrid) SolidAt(row, col int) bool {
	return Classify(g.TileAt(row, col)) == ClassSolid
}

// HazardAt reports whether the tile at (row, col) is a hazard.
func (g *TileGrid) HazardAt(row, col int) bool {
	return Classify(g.TileAt(row, col)) == ClassHazard
}

// ColAt converts a world X coordinate to a column index (may be out of range).
func (g *TileGrid) ColAt(x float64) int {
	if x < 0 {
		return int(x/float64(g.TileSize)) - 1
	}
	return int(x / float64(g.TileSize))
}

// RowAt converts a world Y coordinate to a row index (may be out of range).
func (g *TileGrid) RowAt(y float64) int {
	if y < 0 {
		return int(y/float64(g.TileSize)) - 1
	}
	return int(y / float64(g.TileSize))
}

// PixelWidth returns the level width in world pixels.
func (g *TileGrid) PixelWidth() float64 {
	return float64(g.WidthInTiles * g.TileSize)
}

// PixelHeight returns the level height in world pixels.
func (g *TileGrid) PixelHeight() float64 {
	return float64(g.HeightInTiles * g.TileSize)
}
