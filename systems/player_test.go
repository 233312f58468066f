package systems

import (
	"testing"

	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnGroundedPlayer creates the player standing on the flatFloor ground
// and settles it with a few empty ticks.
func spawnGroundedPlayer(t *testing.T, e *ecs.ECS, x float64) (*donburi.Entry, *components.PlayerData, *components.BodyData) {
	t.Helper()
	entry := factory.CreatePlayer(e, x, floorY-cfg.Player.Height)
	run(e, 3)
	body := components.Body.Get(entry)
	if !body.OnGround {
		t.Fatal("player failed to settle on the floor")
	}
	return entry, components.Player.Get(entry), body
}

func TestPlayerRunsAndStops(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, _, body := spawnGroundedPlayer(t, e, 64)

	for i := 0; i < 30; i++ {
		press(e, cfg.ActionRight)
		tick(e)
	}
	if body.VelX != cfg.Player.MoveSpeed {
		t.Errorf("vx = %v, want top speed %v", body.VelX, cfg.Player.MoveSpeed)
	}
	if !body.FacingRight {
		t.Error("facing should follow movement")
	}

	run(e, 60)
	if body.VelX != 0 {
		t.Errorf("vx = %v, want full stop", body.VelX)
	}
}

func TestPlayerJumpAndVariableHeight(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, player, body := spawnGroundedPlayer(t, e, 64)

	press(e, cfg.ActionJump)
	tick(e)
	if body.VelY >= 0 {
		t.Fatalf("vy = %v, want upward after jump", body.VelY)
	}
	if player.JumpsLeft != cfg.Player.MaxJumps-1 {
		t.Errorf("jumps left = %d", player.JumpsLeft)
	}

	// Releasing during the rise cuts the remaining ascent.
	vyHeld := body.VelY
	press(e)
	tick(e)
	if body.VelY < vyHeld*cfg.Player.ReleaseCutoff {
		t.Errorf("vy = %v after release, want no faster than %v", body.VelY, vyHeld*cfg.Player.ReleaseCutoff)
	}
}

func TestPlayerJumpBufferFiresOnLanding(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	entry := factory.CreatePlayer(e, 64, floorY-cfg.Player.Height-8)
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)

	// Press jump while still falling; the press is remembered.
	press(e, cfg.ActionJump)
	tick(e)
	if player.JumpBufferTicks == 0 {
		t.Fatal("jump press was not buffered")
	}

	// Land within the buffer window, then the jump fires on its own.
	jumped := false
	for i := 0; i < cfg.Ticks(cfg.Player.JumpBufferTime); i++ {
		press(e, cfg.ActionJump) // held, no new edge
		tick(e)
		if body.VelY < 0 {
			jumped = true
			break
		}
	}
	if !jumped {
		t.Error("buffered jump did not fire on landing")
	}
}

func TestPlayerCoyoteJump(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, player, body := spawnGroundedPlayer(t, e, 64)

	// As if just walked off a ledge: airborne with the window still armed.
	body.OnGround = false
	body.Y -= 8
	if player.CoyoteTicks == 0 {
		t.Fatal("coyote window should be armed from standing")
	}

	press(e, cfg.ActionJump)
	tick(e)
	if body.VelY >= 0 {
		t.Error("jump within coyote window should fire")
	}
}

func TestPlayerNoAirJumpAfterCoyoteExpires(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	entry := factory.CreatePlayer(e, 64, 32)
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)

	run(e, 2)
	player.CoyoteTicks = 0

	vyBefore := body.VelY
	press(e, cfg.ActionJump)
	tick(e)
	if body.VelY < vyBefore {
		t.Errorf("air jump fired: vy %v -> %v", vyBefore, body.VelY)
	}
}

func TestPlayerCrouchStopsMovement(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	entry, _, body := spawnGroundedPlayer(t, e, 64)
	state := components.State.Get(entry)

	for i := 0; i < 30; i++ {
		press(e, cfg.ActionRight)
		tick(e)
	}
	for i := 0; i < 60; i++ {
		press(e, cfg.ActionRight, cfg.ActionCrouch)
		tick(e)
	}
	if body.VelX != 0 {
		t.Errorf("vx = %v, crouch must stop movement", body.VelX)
	}
	if state.CurrentState != cfg.StateCrouch {
		t.Errorf("state = %v, want crouch", state.CurrentState)
	}
}

func TestPlayerStateTransitions(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	entry, _, body := spawnGroundedPlayer(t, e, 64)
	state := components.State.Get(entry)

	if state.CurrentState != cfg.StateIdle {
		t.Errorf("settled state = %v, want idle", state.CurrentState)
	}

	press(e, cfg.ActionJump)
	tick(e)
	if state.CurrentState != cfg.StateJump {
		t.Errorf("state = %v, want jump while rising", state.CurrentState)
	}

	// Past the apex the player is falling.
	for i := 0; i < 120 && body.VelY <= 0; i++ {
		press(e)
		tick(e)
	}
	if !body.OnGround && state.CurrentState != cfg.StateFall {
		t.Errorf("state = %v, want fall while descending", state.CurrentState)
	}
}

func TestPlayerClampedToLevelEdge(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, _, body := spawnGroundedPlayer(t, e, 16)

	for i := 0; i < 120; i++ {
		press(e, cfg.ActionLeft)
		tick(e)
	}
	if body.HitRect().X < 0 {
		t.Errorf("hitbox left = %v, escaped the level", body.HitRect().X)
	}
}
