package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/leveldata"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves every moving body against the tile grid,
// horizontal axis first, then applies the hazard and out-of-bounds rules.
// Collectibles are static and idle sheep never move, so both are skipped.
func UpdateCollisions(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	grid := level.CurrentLevel.Grid
	dt := cfg.FixedDT()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.IsActive {
			return
		}
		if e.HasComponent(tags.Collectible) {
			return
		}
		if e.HasComponent(components.Sheep) && !components.Sheep.Get(e).Rescued {
			return
		}

		gamemath.ResolveHorizontal(&body.Body, grid, cfg.Physics.WallBandShrink)
		gamemath.ResolveVertical(&body.Body, grid, cfg.Physics.GroundSnapTol, dt)
		clampToLevel(body, grid)

		switch {
		case e.HasComponent(tags.Player):
			checkPlayerTileDeath(e, body, grid)
		case e.HasComponent(tags.Sheep):
			checkSheepTileDeath(ecs, e, body, grid)
		case e.HasComponent(tags.Enemy):
			checkEnemyTileDeath(ecs, e, body, grid)
		}
	})
}

// clampToLevel keeps the hitbox inside the level horizontally. The grid has
// no walls at the seams, so without this a body could walk off the edge of
// the world sideways.
func clampToLevel(body *components.BodyData, grid *leveldata.TileGrid) {
	hb := body.HitRect()
	if hb.X < 0 {
		body.X -= hb.X
		body.VelX = 0
	} else if hb.Right() > grid.PixelWidth() {
		body.X -= hb.Right() - grid.PixelWidth()
		body.VelX = 0
	}
}

// checkPlayerTileDeath queues a hazard/void hit on the player. The damage
// drain applies hearts, invulnerability and the respawn teleport.
func checkPlayerTileDeath(e *donburi.Entry, body *components.BodyData, grid *leveldata.TileGrid) {
	if e.HasComponent(components.DamageEvent) {
		return
	}
	inHazard := gamemath.TouchesHazard(body.HitRect(), grid)
	inVoid := body.Y > grid.PixelHeight()+cfg.Physics.VoidMargin
	if inHazard || inVoid {
		donburi.Add(e, components.DamageEvent, &components.DamageEventData{
			Amount:  1,
			Respawn: true,
		})
	}
}

// checkSheepTileDeath pulls a following sheep that fell into water or off
// the level back to its leader. Sheep never take damage.
func checkSheepTileDeath(ecs *ecs.ECS, e *donburi.Entry, body *components.BodyData, grid *leveldata.TileGrid) {
	if !gamemath.TouchesHazard(body.HitRect(), grid) && body.Y <= grid.PixelHeight()+cfg.Physics.VoidMargin {
		return
	}
	sheep := components.Sheep.Get(e)
	leader, ok := resolveLeader(ecs, sheep)
	if !ok {
		return
	}
	lb := components.Body.Get(leader)
	body.X, body.Y = lb.X, lb.Y-4
	body.VelX, body.VelY = 0, 0
	body.SnapshotPrev()
}

// checkEnemyTileDeath removes an enemy that ended up in a hazard or below
// the level. Deactivated entities keep their entry but leave the
// interaction space.
func checkEnemyTileDeath(ecs *ecs.ECS, e *donburi.Entry, body *components.BodyData, grid *leveldata.TileGrid) {
	if !gamemath.TouchesHazard(body.HitRect(), grid) && body.Y <= grid.PixelHeight()+cfg.Physics.VoidMargin {
		return
	}
	body.IsActive = false
	body.IsVisible = false
	removeFromSpace(ecs, e)
}

// resolveLeader returns the entry for a sheep's leader if the handle is
// still a live, active body. Weak handles are validated on every use.
func resolveLeader(ecs *ecs.ECS, sheep *components.SheepData) (*donburi.Entry, bool) {
	if !ecs.World.Valid(sheep.Leader) {
		return nil, false
	}
	entry := ecs.World.Entry(sheep.Leader)
	if !entry.HasComponent(components.Body) || !components.Body.Get(entry).IsActive {
		return nil, false
	}
	return entry, true
}

// removeFromSpace detaches an entity's resolv object from the shared
// interaction space so stale objects never answer queries.
func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	obj.Object = nil
}
