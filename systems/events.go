package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents flushes everything published this tick to the subscribers
// the scene registered. Last system in the tick, so subscribers observe a
// fully settled world state.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
