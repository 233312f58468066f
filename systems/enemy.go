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

// UpdateEnemy advances every enemy's patrol/chase/attack machine by one
// tick. Boars add a charge sub-state on top of chase. The system only
// decides velocities and state; hits are applied in the interaction pass
// where overlap is authoritative.
func UpdateEnemy(ecs *ecs.ECS) {
	var grid *leveldata.TileGrid
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if lvl := components.Level.Get(levelEntry); lvl.CurrentLevel != nil {
			grid = lvl.CurrentLevel.Grid
		}
	}

	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	var playerBody *components.BodyData
	if hasPlayer {
		playerBody = components.Body.Get(playerEntry)
		if !playerBody.IsActive {
			hasPlayer = false
		}
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)

		if !body.IsActive {
			return
		}

		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown--
		}
		if enemy.ChargeCooldownTks > 0 {
			enemy.ChargeCooldownTks--
		}

		dx, dy := 0.0, 0.0
		if hasPlayer {
			dx = playerBody.HitRect().CenterX() - body.HitRect().CenterX()
			dy = playerBody.HitRect().CenterY() - body.HitRect().CenterY()
		}

		switch state.CurrentState {
		case cfg.StateCharge:
			updateCharge(enemy, body, state)
		case cfg.StateChase:
			updateChase(enemy, body, state, hasPlayer, dx, dy)
		case cfg.StateAttack:
			updateAttack(enemy, body, state, hasPlayer, dx, dy)
		default:
			updatePatrol(enemy, body, state, grid, hasPlayer, dx, dy)
		}
		state.StateTimer++

		enemy.LastX = body.X
	})
}

// updatePatrol walks between the patrol bounds, pausing briefly at each
// end before reversing. Walking into a wall shows up as stalled
// displacement, which counts as reaching a bound.
func updatePatrol(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, grid *leveldata.TileGrid, hasPlayer bool, dx, dy float64) {
	tc := enemy.TypeConfig

	if hasPlayer && gamemath.Abs(dx) <= tc.DetectRange && gamemath.Abs(dy) <= tc.VerticalBand {
		state.Transition(cfg.StateChase)
		body.VelX = 0
		return
	}
	state.Transition(cfg.StatePatrol)

	if enemy.PauseTicks > 0 {
		enemy.PauseTicks--
		body.VelX = 0
		if enemy.PauseTicks == 0 {
			enemy.Direction.X = -enemy.Direction.X
		}
		return
	}

	body.VelX = enemy.Direction.X * tc.PatrolSpeed
	body.FacingRight = enemy.Direction.X > 0

	atBound := (enemy.Direction.X > 0 && body.X >= enemy.PatrolOriginX+enemy.PatrolRange) ||
		(enemy.Direction.X < 0 && body.X <= enemy.PatrolOriginX-enemy.PatrolRange)

	// Ledges end a patrol leg the same way bounds do.
	if grid != nil && (body.OnGround || body.OnPlatform) && !gamemath.GroundAhead(&body.Body, grid, enemy.Direction.X) {
		atBound = true
	}

	// Stall heuristic: intending to move but not actually displacing
	// means a wall or a ledge stop blocked us.
	if gamemath.Abs(body.X-enemy.LastX) < tc.StallEpsilon && body.VelX != 0 {
		enemy.BlockedTicks++
	} else {
		enemy.BlockedTicks = 0
	}

	if atBound || enemy.BlockedTicks >= cfg.Ticks(tc.BlockedDuration) {
		enemy.PauseTicks = cfg.Ticks(tc.PatrolPause)
		enemy.BlockedTicks = 0
		body.VelX = 0
	}
}

// updateChase closes the horizontal gap to the player. When the player
// leaves the vertical band the enemy stops underneath and watches rather
// than pathing. Boars arm a charge when close enough and off cooldown.
func updateChase(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, hasPlayer bool, dx, dy float64) {
	tc := enemy.TypeConfig

	if !hasPlayer || gamemath.Abs(dx) > tc.GiveUpRange {
		state.Transition(cfg.StatePatrol)
		body.VelX = 0
		return
	}

	body.FacingRight = dx > 0

	if gamemath.Abs(dy) > tc.VerticalBand {
		body.VelX = 0
		return
	}

	if gamemath.Abs(dx) <= tc.AttackRange {
		state.Transition(cfg.StateAttack)
		body.VelX = 0
		return
	}

	if tc.ChargeSpeed > 0 && enemy.ChargeCooldownTks == 0 && gamemath.Abs(dx) <= tc.ChargeTrigger {
		enemy.Charging = true
		enemy.ChargeDirX = 1
		if dx < 0 {
			enemy.ChargeDirX = -1
		}
		enemy.ChargeStartX = body.X
		body.VelX = enemy.ChargeDirX * tc.ChargeSpeed
		state.Transition(cfg.StateCharge)
		return
	}

	dir := 1.0
	if dx < 0 {
		dir = -1.0
	}
	body.VelX = dir * tc.ChaseSpeed
}

// updateCharge runs a boar's straight-line rush: fixed direction, no
// steering, ends at the distance cap or when a wall zeroes velocity.
func updateCharge(enemy *components.EnemyData, body *components.BodyData, state *components.StateData) {
	tc := enemy.TypeConfig

	wallStopped := state.StateTimer > 0 && body.VelX == 0
	spent := gamemath.Abs(body.X-enemy.ChargeStartX) >= tc.ChargeDistance
	if wallStopped || spent {
		enemy.Charging = false
		enemy.ChargeCooldownTks = cfg.Ticks(tc.ChargeCooldown)
		body.VelX = 0
		state.Transition(cfg.StateChase)
		return
	}

	body.VelX = enemy.ChargeDirX * tc.ChargeSpeed
	body.FacingRight = enemy.ChargeDirX > 0
}

// updateAttack holds position facing the player. The interaction pass
// lands the hit when the hitboxes actually overlap and the cooldown has
// elapsed; here we only decide whether to stay in range.
func updateAttack(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, hasPlayer bool, dx, dy float64) {
	tc := enemy.TypeConfig
	body.VelX = 0

	if !hasPlayer || gamemath.Abs(dx) > tc.AttackRange*1.25 || gamemath.Abs(dy) > tc.VerticalBand {
		state.Transition(cfg.StateChase)
		return
	}
	body.FacingRight = dx > 0
}
