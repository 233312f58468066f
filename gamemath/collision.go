package gamemath

import "github.com/quiltvale/woolfang/leveldata"

// edgeEpsilon keeps a hitbox edge that sits exactly on a tile boundary
// from being counted as inside the next tile.
const edgeEpsilon = 0.001

// ResolveHorizontal pushes a body out of solid tiles along the X axis.
// It tests a vertically shrunk band of the hitbox (bandShrink px off the
// top and bottom) so floors and ceilings are never treated as walls.
// The push side is chosen by comparing the hitbox center to the tile
// center, not by penetration depth; a body with zero X velocity is never
// pushed. X velocity is zeroed on contact. Call before ResolveVertical.
func ResolveHorizontal(b *Body, g *leveldata.TileGrid, bandShrink float64) bool {
	if b.VelX == 0 {
		return false
	}

	hb := b.HitRect()
	top := hb.Y + bandShrink
	bottom := hb.Bottom() - bandShrink
	if bottom <= top {
		top, bottom = hb.Y, hb.Bottom()
	}

	ts := float64(g.TileSize)
	hit := false

	rowMin := g.RowAt(top)
	rowMax := g.RowAt(bottom - edgeEpsilon)
	colMin := g.ColAt(hb.X)
	colMax := g.ColAt(hb.Right() - edgeEpsilon)

	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			id := g.TileAt(row, col)
			// One-way platforms are never walls.
			if leveldata.Classify(id) != leveldata.ClassSolid || id == leveldata.TilePlatform {
				continue
			}
			tile := Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
			band := Rect{X: hb.X, Y: top, W: hb.W, H: bottom - top}
			if !band.Overlaps(tile) {
				continue
			}

			if hb.CenterX() < tile.CenterX() {
				b.X = tile.X - b.Hitbox.W - b.Hitbox.OffsetX
			} else {
				b.X = tile.Right() - b.Hitbox.OffsetX
			}
			b.VelX = 0
			hit = true

			hb = b.HitRect()
			top = hb.Y + bandShrink
			bottom = hb.Bottom() - bandShrink
			if bottom <= top {
				top, bottom = hb.Y, hb.Bottom()
			}
		}
	}
	return hit
}

// ResolveVertical resolves Y-axis collisions against the grid. The primary
// landing path is the ground snap: if the feet lie within snapTol of a
// solid tile's top edge directly below, the feet are set exactly onto that
// edge and the body is grounded, skipping the AABB scan entirely. This is
// what keeps landings stable at any representable approach speed.
//
// dt is the fixed step; it is only used to recover where the feet were at
// the start of the step, which gates one-way platform landings.
func ResolveVertical(b *Body, g *leveldata.TileGrid, snapTol, dt float64) {
	b.OnGround = false
	b.OnPlatform = false

	prevFeet := b.Feet() - b.VelY*dt

	if b.VelY >= 0 && snapToGround(b, g, snapTol, prevFeet) {
		return
	}

	hb := b.HitRect()
	ts := float64(g.TileSize)

	rowMin := g.RowAt(hb.Y)
	rowMax := g.RowAt(hb.Bottom() - edgeEpsilon)
	colMin := g.ColAt(hb.X)
	colMax := g.ColAt(hb.Right() - edgeEpsilon)

	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			id := g.TileAt(row, col)
			if leveldata.Classify(id) != leveldata.ClassSolid {
				continue
			}
			tile := Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
			if !hb.Overlaps(tile) {
				continue
			}

			if b.VelY > 0 {
				// One-way platforms only catch feet that started above them.
				if id == leveldata.TilePlatform && prevFeet > tile.Y+edgeEpsilon {
					continue
				}
				b.SetFeet(tile.Y)
				b.VelY = 0
				b.OnGround = true
				b.OnPlatform = id == leveldata.TilePlatform
			} else if b.VelY < 0 {
				if id == leveldata.TilePlatform {
					continue
				}
				// Head bump: clamp to the tile bottom, kill rise, no stick.
				b.SetHead(tile.Bottom())
				b.VelY = 0
			}
			hb = b.HitRect()
		}
	}
}

// snapToGround is the direct landing shortcut: true if the feet were
// within tolerance of a solid top edge below and got snapped onto it.
// One-way platforms keep their gate here too: only feet that started the
// step at or above the platform top may snap onto it.
func snapToGround(b *Body, g *leveldata.TileGrid, snapTol, prevFeet float64) bool {
	hb := b.HitRect()
	feet := hb.Bottom()
	ts := float64(g.TileSize)

	row := g.RowAt(feet + snapTol)
	rowTop := float64(row) * ts
	if Abs(feet-rowTop) > snapTol {
		return false
	}

	colMin := g.ColAt(hb.X)
	colMax := g.ColAt(hb.Right() - edgeEpsilon)
	for col := colMin; col <= colMax; col++ {
		id := g.TileAt(row, col)
		if leveldata.Classify(id) != leveldata.ClassSolid {
			continue
		}
		if id == leveldata.TilePlatform && prevFeet > rowTop+edgeEpsilon {
			continue
		}
		b.SetFeet(rowTop)
		b.VelY = 0
		b.OnGround = true
		b.OnPlatform = id == leveldata.TilePlatform
		return true
	}
	return false
}

// TouchesHazard reports whether the hitbox overlaps any hazard tile.
func TouchesHazard(hb Rect, g *leveldata.TileGrid) bool {
	rowMin := g.RowAt(hb.Y)
	rowMax := g.RowAt(hb.Bottom() - edgeEpsilon)
	colMin := g.ColAt(hb.X)
	colMax := g.ColAt(hb.Right() - edgeEpsilon)
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			if g.HazardAt(row, col) {
				return true
			}
		}
	}
	return false
}

// GroundAhead reports whether there is solid footing one tile below the
// point just ahead of the hitbox in the given direction. Enemies use it
// to avoid walking off ledges while patrolling.
func GroundAhead(b *Body, g *leveldata.TileGrid, dirX float64) bool {
	hb := b.HitRect()
	probeX := hb.X - 1
	if dirX > 0 {
		probeX = hb.Right() + 1
	}
	row := g.RowAt(hb.Bottom() + edgeEpsilon)
	col := g.ColAt(probeX)
	return g.SolidAt(row, col)
}
