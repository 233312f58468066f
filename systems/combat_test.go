package systems

import (
	"testing"

	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attackingWolf parks a wolf overlapping the player, mid-attack and off
// cooldown, so the next interaction pass lands a hit.
func attackingWolf(t *testing.T, e *ecs.ECS, playerBody *components.BodyData, offsetX float64) *components.BodyData {
	t.Helper()
	_, enemy, body, state := spawnEnemy(e, 0, "Wolf", 100)
	placeCenterAt(body, playerBody.HitRect().CenterX()+offsetX)
	state.Transition(cfg.StateAttack)
	enemy.AttackCooldown = 0
	return body
}

func TestEnemyHitCostsHeartAndKnocksBack(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, player, playerBody := spawnGroundedPlayer(t, e, 200)

	taken := 0
	components.DamageTakenEvent.Subscribe(e.World, func(w donburi.World, ev components.DamageTaken) {
		taken++
		if ev.HeartsNow != cfg.Player.MaxHealth-1 {
			t.Errorf("event hearts = %d", ev.HeartsNow)
		}
	})

	attackingWolf(t, e, playerBody, 10) // attacker on the right

	press(e)
	tick(e)

	if player.Hearts != cfg.Player.MaxHealth-1 {
		t.Fatalf("hearts = %d, want %d", player.Hearts, cfg.Player.MaxHealth-1)
	}
	if player.InvulnTicks == 0 {
		t.Error("hit must start the invulnerability window")
	}
	if playerBody.VelX != -cfg.Player.KnockbackX {
		t.Errorf("vx = %v, want knockback away from the attacker", playerBody.VelX)
	}
	if playerBody.VelY != -cfg.Player.KnockbackY {
		t.Errorf("vy = %v, want upward pop", playerBody.VelY)
	}
	if taken != 1 {
		t.Errorf("damage events = %d, want 1", taken)
	}
}

func TestInvulnerabilityDropsHits(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, player, playerBody := spawnGroundedPlayer(t, e, 200)
	player.InvulnTicks = cfg.Ticks(cfg.Player.InvulnTime)

	attackingWolf(t, e, playerBody, 10)

	press(e)
	tick(e)

	if player.Hearts != cfg.Player.MaxHealth {
		t.Errorf("hearts = %d, invulnerable player must not take damage", player.Hearts)
	}
}

// hazardFloor has a water pocket in the floor at columns 10-11.
var hazardFloor = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"33333333336633333333",
	"22222222222222222222",
}

func TestHazardRespawnsAtSpawnPoint(t *testing.T) {
	e := newTestWorld(t, hazardFloor)
	_, player, body := spawnGroundedPlayer(t, e, 64)

	// Drop the player into the water pocket.
	body.X = 10*32 + 3
	body.OnGround = false

	run(e, 4)

	if player.Hearts != cfg.Player.MaxHealth-1 {
		t.Errorf("hearts = %d, want %d after the dunk", player.Hearts, cfg.Player.MaxHealth-1)
	}
	if body.X != player.SpawnX || body.Y != player.SpawnY {
		t.Errorf("body at (%v,%v), want respawn at (%v,%v)", body.X, body.Y, player.SpawnX, player.SpawnY)
	}
	if body.VelX != 0 || body.VelY != 0 {
		t.Errorf("velocity (%v,%v) after respawn, want rest", body.VelX, body.VelY)
	}
}

func TestHazardDuringInvulnerabilityStillRespawns(t *testing.T) {
	e := newTestWorld(t, hazardFloor)
	_, player, body := spawnGroundedPlayer(t, e, 64)
	player.InvulnTicks = cfg.Ticks(cfg.Player.InvulnTime)

	body.X = 10*32 + 3
	body.OnGround = false

	run(e, 4)

	// No heart lost, but the player must not be left sinking in the water.
	if player.Hearts != cfg.Player.MaxHealth {
		t.Errorf("hearts = %d, invulnerable dunk must not cost a heart", player.Hearts)
	}
	if body.X != player.SpawnX || body.Y != player.SpawnY {
		t.Errorf("body at (%v,%v), want respawn at (%v,%v)", body.X, body.Y, player.SpawnX, player.SpawnY)
	}
}

func TestLastHeartFailsLevel(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	_, player, playerBody := spawnGroundedPlayer(t, e, 200)
	player.Hearts = 1

	failed := false
	components.LevelFailedEvent.Subscribe(e.World, func(w donburi.World, ev components.LevelFailed) {
		failed = true
	})

	attackingWolf(t, e, playerBody, 10)

	press(e)
	tick(e)

	if player.Hearts != 0 {
		t.Fatalf("hearts = %d, want 0", player.Hearts)
	}
	level := levelData(t, e)
	if !level.Failed {
		t.Error("level should be marked failed")
	}
	if playerBody.IsActive {
		t.Error("dead player body should be inert")
	}
	if !failed {
		t.Error("failure event was not delivered")
	}
}
