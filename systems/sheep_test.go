package systems

import (
	"testing"

	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnGroundedSheep(t *testing.T, e *ecs.ECS, x float64) (*donburi.Entry, *components.BodyData) {
	t.Helper()
	entry := factory.CreateSheep(e, x, floorY-cfg.Sheep.Height)
	return entry, components.Body.Get(entry)
}

// placeCenterAt shifts a body so its hitbox center sits at the given x.
func placeCenterAt(body *components.BodyData, x float64) {
	body.X += x - body.HitRect().CenterX()
	body.SnapshotPrev()
}

func TestSheepIdleStaysPut(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	spawnGroundedPlayer(t, e, 500)
	entry, body := spawnGroundedSheep(t, e, 96)
	x, y := body.X, body.Y

	run(e, 30)

	if body.X != x || body.Y != y {
		t.Errorf("idle sheep moved from (%v,%v) to (%v,%v)", x, y, body.X, body.Y)
	}
	if st := components.State.Get(entry); st.CurrentState != cfg.StateSheepIdle {
		t.Errorf("state = %v, want sheep-idle", st.CurrentState)
	}
}

func TestRescueChainsTrainAndCompletesLevel(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	playerEntry, _, _ := spawnGroundedPlayer(t, e, 64)
	first, _ := spawnGroundedSheep(t, e, 128)
	second, _ := spawnGroundedSheep(t, e, 192)

	level := levelData(t, e)
	level.SheepTotal = 2

	completed := false
	components.LevelCompleteEvent.Subscribe(e.World, func(w donburi.World, ev components.LevelComplete) {
		completed = true
		if ev.SheepRescued != 2 {
			t.Errorf("completion event rescued = %d, want 2", ev.SheepRescued)
		}
	})

	RescueSheep(e, playerEntry, first)
	if s := components.Sheep.Get(first); !s.Rescued || s.Leader != playerEntry.Entity() {
		t.Errorf("first sheep should follow the player, got leader %v", s.Leader)
	}
	if level.SheepRescued != 1 {
		t.Errorf("rescued count = %d, want 1", level.SheepRescued)
	}

	RescueSheep(e, playerEntry, second)
	if s := components.Sheep.Get(second); s.Leader != first.Entity() {
		t.Errorf("second sheep should follow the first, got leader %v", s.Leader)
	}
	if !level.Complete {
		t.Error("level should complete when the last sheep is rescued")
	}

	// Re-rescue is a no-op.
	RescueSheep(e, playerEntry, first)
	if level.SheepRescued != 2 {
		t.Errorf("rescued count = %d after double rescue, want 2", level.SheepRescued)
	}

	UpdateEvents(e)
	if !completed {
		t.Error("completion event was not delivered")
	}
}

func TestSheepFollowSpeedBands(t *testing.T) {
	tests := []struct {
		name   string
		gap    float64 // leader center minus sheep center
		wantVX float64
	}{
		{"far behind runs", cfg.Sheep.FarDistance + 20, cfg.Sheep.FollowSpeed},
		{"far ahead runs back", -(cfg.Sheep.FarDistance + 20), -cfg.Sheep.FollowSpeed},
		{"middle band trots", cfg.Sheep.StopBand + 30, cfg.Sheep.CloseSpeed},
		{"comfort zone stops", cfg.Sheep.StopBand - 10, 0},
		{"crowding backs off", cfg.Sheep.MinDistance - 8, -cfg.Sheep.BackSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t, flatFloor)
			playerEntry, _, playerBody := spawnGroundedPlayer(t, e, 300)
			sheepEntry, sheepBody := spawnGroundedSheep(t, e, 300)
			RescueSheep(e, playerEntry, sheepEntry)

			placeCenterAt(sheepBody, playerBody.HitRect().CenterX()-tt.gap)
			sheepBody.OnGround = true

			UpdateSheep(e)

			if sheepBody.VelX != tt.wantVX {
				t.Errorf("vx = %v, want %v", sheepBody.VelX, tt.wantVX)
			}
		})
	}
}

func TestSheepHopsWhenLeaderIsAbove(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	playerEntry, _, playerBody := spawnGroundedPlayer(t, e, 300)
	sheepEntry, sheepBody := spawnGroundedSheep(t, e, 160)
	RescueSheep(e, playerEntry, sheepEntry)
	run(e, 3)
	if !sheepBody.OnGround {
		t.Fatal("sheep failed to settle")
	}

	playerBody.Y -= cfg.Sheep.JumpGap + 20

	UpdateSheep(e)

	if sheepBody.VelY != -cfg.Sheep.JumpForce {
		t.Errorf("vy = %v, want hop at %v", sheepBody.VelY, -cfg.Sheep.JumpForce)
	}
}

func TestSheepReattachesToPlayerWhenChainBreaks(t *testing.T) {
	e := newTestWorld(t, flatFloor)
	playerEntry, _, _ := spawnGroundedPlayer(t, e, 300)
	first, firstBody := spawnGroundedSheep(t, e, 128)
	second, _ := spawnGroundedSheep(t, e, 192)
	RescueSheep(e, playerEntry, first)
	RescueSheep(e, playerEntry, second)

	// The middle of the train dies.
	firstBody.IsActive = false

	UpdateSheep(e)

	if s := components.Sheep.Get(second); s.Leader != playerEntry.Entity() {
		t.Errorf("orphaned sheep leader = %v, want the player", s.Leader)
	}
}
