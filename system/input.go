package system

import (
	"time"

	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/platform"
)

// InputSystem folds pending platform events into the frame's input state.
// The orchestrator fills InputResource.Pending before phases run; everything
// after the Input phase reads only the derived state.
type InputSystem struct {
	world *engine.World
}

// NewInputSystem creates the input event consumer
func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{world: world}
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Phase() engine.Phase { return engine.PhaseInput }

func (s *InputSystem) Update(time.Duration) {
	in := s.world.Resources.Input

	for _, ev := range in.Pending {
		switch ev.Kind {
		case platform.EventKey:
			if !in.Down[ev.Key] {
				in.Pressed[ev.Key] = true
			}
			in.Down[ev.Key] = true
		case platform.EventResize:
			in.ResizeWidth = ev.Width
			in.ResizeHeight = ev.Height
		case platform.EventClose:
			in.QuitRequested = true
		}
	}
	in.Pending = in.Pending[:0]
}
