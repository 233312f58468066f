package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteractions is the inter-entity pass: collectible pickup, enemy
// hits landing on the player, and the rescue proximity query. It runs
// after collision resolution so every hitbox is at its final position for
// the tick, and after UpdateObjects has synced the interaction space.
func UpdateInteractions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerBody := components.Body.Get(playerEntry)
	if !playerBody.IsActive {
		return
	}

	collectPickups(ecs, playerEntry, playerBody)
	applyEnemyHits(ecs, playerEntry, playerBody)
	refreshNearbySheep(ecs, player, playerBody)
}

// collectPickups awards any collectible the player overlaps. The resolv
// space answers the broadphase; the exact hitbox test confirms. Collected
// items are flagged terminally, so a second overlap is a no-op.
func collectPickups(ecs *ecs.ECS, playerEntry *donburi.Entry, playerBody *components.BodyData) {
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil {
		return
	}
	collision := obj.Check(0, 0, tags.ResolvCollectible)
	if collision == nil {
		return
	}
	playerRect := playerBody.HitRect()

	for _, hit := range collision.Objects {
		entry, ok := hit.Data.(*donburi.Entry)
		if !ok || !entry.HasComponent(components.Collectible) {
			continue
		}
		col := components.Collectible.Get(entry)
		body := components.Body.Get(entry)
		if col.Collected || !body.IsActive {
			continue
		}
		if !playerRect.Overlaps(body.HitRect()) {
			continue
		}
		gatherCollectible(ecs, entry, playerEntry, col)
	}
}

func gatherCollectible(ecs *ecs.ECS, entry, playerEntry *donburi.Entry, col *components.CollectibleData) {
	col.Collected = true
	body := components.Body.Get(entry)
	body.IsVisible = false
	body.IsActive = false
	removeFromSpace(ecs, entry)

	healed := 0
	if col.TypeConfig.Heal > 0 {
		player := components.Player.Get(playerEntry)
		before := player.Hearts
		player.Hearts += col.TypeConfig.Heal
		if player.Hearts > player.MaxHearts {
			player.Hearts = player.MaxHearts
		}
		healed = player.Hearts - before
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		level.Collected++
		level.Score += col.TypeConfig.Value
		if col.TypeConfig.GoldenWool {
			level.GoldenWool++
		}
	}

	components.CollectibleGatheredEvent.Publish(ecs.World, components.CollectibleGathered{
		TypeName: col.TypeName,
		Value:    col.TypeConfig.Value,
		Healed:   healed,
	})
}

// applyEnemyHits queues damage from enemies whose attack is live this
// tick: an attacking enemy off cooldown, or a boar mid-charge. Overlap is
// the gate in both cases.
func applyEnemyHits(ecs *ecs.ECS, playerEntry *donburi.Entry, playerBody *components.BodyData) {
	playerRect := playerBody.HitRect()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if playerEntry.HasComponent(components.DamageEvent) {
			return
		}
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)
		if !body.IsActive {
			return
		}

		attacking := state.CurrentState == cfg.StateAttack
		charging := state.CurrentState == cfg.StateCharge
		if !attacking && !charging {
			return
		}
		if enemy.AttackCooldown > 0 {
			return
		}
		if !playerRect.Overlaps(body.HitRect()) {
			return
		}

		enemy.AttackCooldown = cfg.Ticks(enemy.TypeConfig.AttackCooldown)
		donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
			Amount:  enemy.TypeConfig.Damage,
			SourceX: body.HitRect().CenterX(),
			HasSrc:  true,
		})
	})
}

// refreshNearbySheep records the closest unrescued sheep within interact
// range so the player behavior can act on a press next tick. The handle
// is weak and re-validated when used.
func refreshNearbySheep(ecs *ecs.ECS, player *components.PlayerData, playerBody *components.BodyData) {
	player.HasInteractable = false

	px := playerBody.HitRect().CenterX()
	py := playerBody.HitRect().CenterY()
	radius := cfg.Player.InteractRadius
	best := radius

	tags.Sheep.Each(ecs.World, func(e *donburi.Entry) {
		sheep := components.Sheep.Get(e)
		body := components.Body.Get(e)
		if sheep.Rescued || !body.IsActive {
			return
		}
		// The vertical band stays the full radius; only the horizontal
		// distance competes between candidates.
		dy := body.HitRect().CenterY() - py
		if gamemath.Abs(dy) > radius {
			return
		}
		dist := gamemath.Abs(body.HitRect().CenterX() - px)
		if dist <= best {
			best = dist
			player.NearbyInteractable = e.Entity()
			player.HasInteractable = true
		}
	})
}
