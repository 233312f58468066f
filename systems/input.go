package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the input singleton. Must run first
// in the tick so every behavior system sees the same frame-granular edge
// state. Tests bypass this system and write InputData directly.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then re-poll.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetInput exposes the input singleton to the scenes (end-of-level
// confirmation reads it between ticks).
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// getOrCreateInput returns the singleton InputData, creating it if needed.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}
	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
