package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects advances the collectible bob tweens and mirrors every
// body's hitbox into the resolv interaction space. Runs right after tile
// collision so queries in the same tick see resolved positions.
func UpdateObjects(ecs *ecs.ECS) {
	updateCollectibleBob(ecs)

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Body) {
			continue
		}
		hb := components.Body.Get(e).HitRect()
		obj.X, obj.Y = hb.X, hb.Y
		obj.W, obj.H = hb.W, hb.H
		obj.Update()
	}
}

// updateCollectibleBob floats uncollected pickups around their anchor.
// Pure presentation; the pickup box rides along with the visual.
func updateCollectibleBob(ecs *ecs.ECS) {
	dt := float32(cfg.FixedDT())

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		col := components.Collectible.Get(e)
		if col.Collected || !e.HasComponent(components.Tween) {
			return
		}
		body := components.Body.Get(e)
		seq := components.Tween.Get(e)

		offset, _, seqDone := seq.Update(dt)
		body.Y = col.BaseY + float64(offset)
		if seqDone {
			seq.Reset()
		}
	})
}
