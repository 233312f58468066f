package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds a gween sequence driving a cosmetic offset (collectible
// idle bob). Purely visual; the pickup box uses the anchor position.
var Tween = donburi.NewComponentType[gween.Sequence]()
