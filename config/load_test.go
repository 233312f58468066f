package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesOnlyPresentFields(t *testing.T) {
	origGravity := Physics.Gravity
	origJump := Player.JumpForce
	origMoveSpeed := Player.MoveSpeed
	origHealth := Player.MaxHealth
	t.Cleanup(func() {
		Physics.Gravity = origGravity
		Player.JumpForce = origJump
		Player.MoveSpeed = origMoveSpeed
		Player.MaxHealth = origHealth
	})

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	yaml := `
physics:
  gravity: 1800
player:
  jump_force: 700
  max_health: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path, true); err != nil {
		t.Fatalf("load: %v", err)
	}

	if Physics.Gravity != 1800 {
		t.Errorf("gravity = %v, want 1800", Physics.Gravity)
	}
	if Player.JumpForce != 700 {
		t.Errorf("jump force = %v, want 700", Player.JumpForce)
	}
	if Player.MaxHealth != 5 {
		t.Errorf("max health = %d, want 5", Player.MaxHealth)
	}
	// Untouched fields keep their defaults.
	if Player.MoveSpeed != origMoveSpeed {
		t.Errorf("move speed = %v, want untouched default %v", Player.MoveSpeed, origMoveSpeed)
	}
}

func TestLoadMissingDefaultPathIsFine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if err := Load(path, false); err != nil {
		t.Errorf("missing default config should be ignored, got %v", err)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if err := Load(path, true); err == nil {
		t.Error("explicit missing config must error")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{physics: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path, true); err == nil {
		t.Error("malformed config must error")
	}
}

func TestTicksRounding(t *testing.T) {
	if got := Ticks(0.1); got != 6 {
		t.Errorf("Ticks(0.1) = %d, want 6", got)
	}
	if got := Ticks(0); got != 1 {
		t.Errorf("Ticks(0) = %d, want the 1-tick floor", got)
	}
}
