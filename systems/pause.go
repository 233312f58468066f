package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause flag and the debug overlay. The scene
// reads the flag and freezes the simulation clock; while frozen it keeps
// calling UpdateInput and UpdatePause once per frame so the toggle still
// works.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.IsPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
	if input.IsPressed(cfg.ActionDebug) {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}
}

// DrawPause dims the frozen frame.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.PauseOverlay,
		false,
	)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
