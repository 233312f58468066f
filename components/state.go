package components

import (
	"github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Transition switches state and resets the timer; a no-op when already
// in the target state.
func (s *StateData) Transition(to config.StateID) {
	if s.CurrentState == to {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = to
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
