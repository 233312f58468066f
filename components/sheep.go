package components

import "github.com/yohamta/donburi"

// SheepData tracks one sheep. Rescued is a one-way transition: the flag
// is only ever set, never cleared. Leader is a weak handle (the player or
// a previously rescued sheep) validated on use; it is meaningless until
// the sheep is rescued.
type SheepData struct {
	Rescued bool
	Leader  donburi.Entity
}

var Sheep = donburi.NewComponentType[SheepData]()
