package components

import (
	"github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
)

// CollectibleData tracks one pickup. Collected is terminal: once set,
// overlap checks become no-ops, which is what makes pickup idempotent.
type CollectibleData struct {
	TypeName   string
	TypeConfig *config.CollectibleTypeConfig
	Collected  bool

	BaseY float64 // anchor for the idle bob tween
}

var Collectible = donburi.NewComponentType[CollectibleData]()
