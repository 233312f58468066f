package components

import (
	"github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
)

// InputData is the singleton double-buffered action state. Current is
// filled from the real keyboard once per tick (or set directly by tests);
// Previous is last tick's Current, which gives frame-granular edges.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// IsDown reports whether the action is held this tick.
func (in *InputData) IsDown(a config.ActionID) bool {
	return in.Current[a]
}

// IsPressed is edge-triggered: true for exactly the first tick of a press.
func (in *InputData) IsPressed(a config.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// IsReleased is edge-triggered: true for exactly the tick of release.
func (in *InputData) IsReleased(a config.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

// Axis returns the horizontal input axis in {-1, 0, 1}.
func (in *InputData) Axis() float64 {
	axis := 0.0
	if in.Current[config.ActionLeft] {
		axis -= 1
	}
	if in.Current[config.ActionRight] {
		axis += 1
	}
	return axis
}

var Input = donburi.NewComponentType[InputData]()
