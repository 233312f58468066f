package systems

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player behavior for one tick: timers, horizontal
// movement, the jump pipeline (buffer, coyote, variable height), crouch,
// the interact action and the state machine. It only writes velocities
// and flags; integration and collision happen later in the tick.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)
		state := components.State.Get(e)

		if !body.IsActive {
			return
		}

		updatePlayerTimers(player, body, input)
		updatePlayerMovement(player, body, input)
		updatePlayerJump(player, body, input)
		updatePlayerState(state, player, body)

		if input.IsPressed(cfg.ActionInteract) {
			tryRescue(ecs, e, player)
		}
	})
}

func updatePlayerTimers(player *components.PlayerData, body *components.BodyData, input *components.InputData) {
	if player.InvulnTicks > 0 {
		player.InvulnTicks--
	}

	// Coyote window: refreshed while grounded, counts down in the air.
	if body.OnGround || body.OnPlatform {
		player.JumpsLeft = cfg.Player.MaxJumps
		player.CoyoteTicks = cfg.Ticks(cfg.Player.CoyoteTime)
	} else if player.CoyoteTicks > 0 {
		player.CoyoteTicks--
	}

	// Jump buffer: a press arms the window even mid-air.
	if input.IsPressed(cfg.ActionJump) {
		player.JumpBufferTicks = cfg.Ticks(cfg.Player.JumpBufferTime)
	} else if player.JumpBufferTicks > 0 {
		player.JumpBufferTicks--
	}

	player.Crouching = (body.OnGround || body.OnPlatform) && input.IsDown(cfg.ActionCrouch)
}

func updatePlayerMovement(player *components.PlayerData, body *components.BodyData, input *components.InputData) {
	axis := input.Axis()
	if player.Crouching {
		axis = 0
	}
	target := axis * cfg.Player.MoveSpeed

	accel := cfg.Player.Acceleration
	decel := cfg.Player.Deceleration
	if !body.OnGround && !body.OnPlatform {
		accel *= cfg.Player.AirControl
		decel *= cfg.Player.AirControl
	}
	body.VelX = gamemath.Approach(body.VelX, target, accel, decel, cfg.FixedDT())

	if axis > 0 {
		body.FacingRight = true
	} else if axis < 0 {
		body.FacingRight = false
	}
}

func updatePlayerJump(player *components.PlayerData, body *components.BodyData, input *components.InputData) {
	grounded := body.OnGround || body.OnPlatform

	if player.JumpBufferTicks > 0 && player.JumpsLeft > 0 && (grounded || player.CoyoteTicks > 0) {
		body.VelY = -cfg.Player.JumpForce
		body.OnGround = false
		body.OnPlatform = false
		player.JumpsLeft--
		player.JumpBufferTicks = 0
		player.CoyoteTicks = 0
	}

	// Variable jump height: releasing early cuts the remaining ascent.
	if input.IsReleased(cfg.ActionJump) && body.VelY < 0 {
		body.VelY *= cfg.Player.ReleaseCutoff
	}
}

func updatePlayerState(state *components.StateData, player *components.PlayerData, body *components.BodyData) {
	grounded := body.OnGround || body.OnPlatform
	switch {
	case grounded && player.Crouching:
		state.Transition(cfg.StateCrouch)
	case !grounded && body.VelY < 0:
		state.Transition(cfg.StateJump)
	case !grounded:
		state.Transition(cfg.StateFall)
	case gamemath.Abs(body.VelX) > cfg.Player.RunThreshold:
		state.Transition(cfg.StateRun)
	default:
		state.Transition(cfg.StateIdle)
	}
	state.StateTimer++
}

// tryRescue flips the nearest interactable sheep to following. The handle
// comes from last tick's proximity query and is validated here.
func tryRescue(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData) {
	if !player.HasInteractable || !ecs.World.Valid(player.NearbyInteractable) {
		return
	}
	sheepEntry := ecs.World.Entry(player.NearbyInteractable)
	if !sheepEntry.HasComponent(components.Sheep) {
		return
	}
	sheep := components.Sheep.Get(sheepEntry)
	if sheep.Rescued {
		return
	}
	RescueSheep(ecs, playerEntry, sheepEntry)
}
