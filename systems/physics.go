package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and integrates velocities for every active
// body. Runs after the behavior systems (which only write velocities) and
// before tile collision. Collectibles are static and idle sheep stay pinned
// to their spawn ledge, so both skip the whole pass.
func UpdatePhysics(ecs *ecs.ECS) {
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

		// Remember where the body started this tick for render interpolation.
		body.SnapshotPrev()

		gamemath.ApplyGravity(&body.Body, cfg.Physics.Gravity, cfg.Physics.FallMultiplier, cfg.Physics.MaxFallSpeed, dt)
		gamemath.Integrate(&body.Body, dt)
	})
}
