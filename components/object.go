package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's object in the resolv interaction space.
// Tile collision never goes through resolv; the space only answers
// entity-vs-entity queries (pickup, melee overlap, rescue proximity),
// so positions are synced into it after collision resolution each tick.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the single resolv space shared by all interaction queries.
var Space = donburi.NewComponentType[resolv.Space]()
