package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSheep drives the follow train. Idle sheep stand still waiting to
// be rescued; rescued sheep track their leader (the player or the sheep
// rescued before them) with a three-band speed profile and hop up ledges
// the leader has already cleared.
func UpdateSheep(ecs *ecs.ECS) {
	tags.Sheep.Each(ecs.World, func(e *donburi.Entry) {
		sheep := components.Sheep.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)

		if !body.IsActive {
			return
		}
		if !sheep.Rescued {
			state.Transition(cfg.StateSheepIdle)
			state.StateTimer++
			body.VelX = 0
			return
		}

		leaderEntry, ok := resolveLeader(ecs, sheep)
		if !ok {
			// The chain broke; re-attach to the player.
			if playerEntry, found := tags.Player.First(ecs.World); found {
				sheep.Leader = playerEntry.Entity()
				leaderEntry, ok = resolveLeader(ecs, sheep)
			}
			if !ok {
				body.VelX = 0
				return
			}
		}
		leaderBody := components.Body.Get(leaderEntry)

		followLeader(sheep, body, leaderBody)

		state.Transition(cfg.StateFollow)
		state.StateTimer++
	})
}

// followLeader picks the horizontal speed band from the gap to the leader
// and hops when the leader stands a ledge above.
func followLeader(sheep *components.SheepData, body, leaderBody *components.BodyData) {
	dx := leaderBody.HitRect().CenterX() - body.HitRect().CenterX()
	dist := gamemath.Abs(dx)
	dir := 1.0
	if dx < 0 {
		dir = -1.0
	}

	switch {
	case dist > cfg.Sheep.FarDistance:
		body.VelX = dir * cfg.Sheep.FollowSpeed
	case dist > cfg.Sheep.StopBand:
		body.VelX = dir * cfg.Sheep.CloseSpeed
	case dist <= cfg.Sheep.MinDistance:
		// Too close: shuffle back so the train keeps its spacing.
		body.VelX = -dir * cfg.Sheep.BackSpeed
	default:
		body.VelX = 0
	}

	if body.VelX > 0 {
		body.FacingRight = true
	} else if body.VelX < 0 {
		body.FacingRight = false
	}

	grounded := body.OnGround || body.OnPlatform
	if grounded && body.VelX != 0 && leaderBody.Feet() < body.Feet()-cfg.Sheep.JumpGap {
		body.VelY = -cfg.Sheep.JumpForce
		body.OnGround = false
		body.OnPlatform = false
	}
}

// RescueSheep flips a sheep to following, appends it to the tail of the
// train and publishes the rescue. Completing the flock marks the level
// complete. The transition is one-way.
func RescueSheep(ecs *ecs.ECS, playerEntry, sheepEntry *donburi.Entry) {
	sheep := components.Sheep.Get(sheepEntry)
	if sheep.Rescued {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	sheep.Rescued = true
	sheep.Leader = trainTail(ecs, playerEntry, sheepEntry)
	level.SheepRescued++

	// The body joins the simulation from now on; base interpolation here
	// so the first rendered frame does not lerp from a stale position.
	body := components.Body.Get(sheepEntry)
	body.SnapshotPrev()

	components.SheepRescuedEvent.Publish(ecs.World, components.SheepRescued{
		Rescued: level.SheepRescued,
		Total:   level.SheepTotal,
	})

	if level.SheepRescued >= level.SheepTotal && !level.Complete {
		level.Complete = true
		components.LevelCompleteEvent.Publish(ecs.World, components.LevelComplete{
			LevelIndex:   level.LevelIndex,
			LevelName:    level.CurrentLevel.Name,
			SheepRescued: level.SheepRescued,
			Collected:    level.Collected,
			GoldenWool:   level.GoldenWool,
			Score:        level.Score,
		})
	}
}

// trainTail finds the entity a newly rescued sheep should follow: the
// most recently rescued sheep still alive, or the player when the train
// is empty.
func trainTail(ecs *ecs.ECS, playerEntry, joining *donburi.Entry) donburi.Entity {
	followed := map[donburi.Entity]bool{}
	rescued := []*donburi.Entry{}
	tags.Sheep.Each(ecs.World, func(e *donburi.Entry) {
		if e.Entity() == joining.Entity() {
			return
		}
		s := components.Sheep.Get(e)
		if s.Rescued {
			rescued = append(rescued, e)
			followed[s.Leader] = true
		}
	})
	// The tail is the rescued sheep nobody follows.
	for _, e := range rescued {
		if !followed[e.Entity()] {
			return e.Entity()
		}
	}
	return playerEntry.Entity()
}
