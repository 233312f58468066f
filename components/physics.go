package components

import (
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// BodyData embeds the kinematic body the physics engine operates on plus
// the lifecycle flags the world step consults. PrevX/PrevY hold the
// position at the start of the current tick for render interpolation.
type BodyData struct {
	gamemath.Body

	IsActive  bool
	IsVisible bool

	PrevX, PrevY float64
}

// SnapshotPrev records the current position as the interpolation baseline.
// Called once per tick before integration.
func (b *BodyData) SnapshotPrev() {
	b.PrevX, b.PrevY = b.X, b.Y
}

// RenderPos returns the position interpolated between the previous and
// current tick by alpha. Rendering only; never feeds back into physics.
func (b *BodyData) RenderPos(alpha float64) (float64, float64) {
	return b.PrevX + (b.X-b.PrevX)*alpha, b.PrevY + (b.Y-b.PrevY)*alpha
}

var Body = donburi.NewComponentType[BodyData]()
