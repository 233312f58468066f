package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains queued damage events. Hits on an invulnerable
// player are dropped outright; real hits cost hearts, start the
// invulnerability window and either knock the player back away from the
// source or, for hazard and void hits, teleport them to the spawn point.
// Hearts reaching zero fails the level.
func UpdateCombat(ecs *ecs.ECS) {
	for e := range components.DamageEvent.Iter(ecs.World) {
		dmg := components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !e.HasComponent(components.Player) {
			continue
		}
		player := components.Player.Get(e)
		body := components.Body.Get(e)

		if player.InvulnTicks > 0 {
			// The damage is dropped, but a hazard or void hit still has
			// to move the player out; otherwise they sink in place until
			// the window expires.
			if dmg.Respawn {
				respawnAtSpawn(player, body)
			}
			continue
		}

		player.Hearts -= dmg.Amount
		if player.Hearts < 0 {
			player.Hearts = 0
		}
		player.InvulnTicks = cfg.Ticks(cfg.Player.InvulnTime)

		if dmg.Respawn {
			respawnAtSpawn(player, body)
		} else {
			body.VelY = -cfg.Player.KnockbackY
			body.VelX = cfg.Player.KnockbackX
			if dmg.HasSrc && dmg.SourceX > body.HitRect().CenterX() {
				body.VelX = -cfg.Player.KnockbackX
			}
			body.OnGround = false
			body.OnPlatform = false
		}

		components.DamageTakenEvent.Publish(ecs.World, components.DamageTaken{
			Amount:    dmg.Amount,
			HeartsNow: player.Hearts,
		})

		if player.Hearts == 0 {
			failLevel(ecs, body)
		}
	}
}

func respawnAtSpawn(player *components.PlayerData, body *components.BodyData) {
	body.X, body.Y = player.SpawnX, player.SpawnY
	body.VelX, body.VelY = 0, 0
	body.OnGround = false
	body.OnPlatform = false
	body.SnapshotPrev()
}

func failLevel(ecs *ecs.ECS, body *components.BodyData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Failed {
		return
	}
	level.Failed = true
	body.IsActive = false

	components.LevelFailedEvent.Publish(ecs.World, components.LevelFailed{
		LevelIndex: level.LevelIndex,
	})
}
