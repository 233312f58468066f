package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionCrouch
	ActionInteract
	ActionPause
	ActionDebug
	ActionCount // must be last - used for array sizing
)

// InputBinding represents the key bindings for an action.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionInteract: {
				Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyEnter},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
