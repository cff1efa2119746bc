package system

import (
	"time"

	"github.com/lucent3d/lucent/engine"
)

// CleanupSystem clears per-frame transient state at the end of the frame:
// pressed-this-frame key bits and the consumed resize event. Down state
// persists until a release arrives from the platform.
type CleanupSystem struct {
	world *engine.World
}

// NewCleanupSystem creates the end-of-frame transient sweeper
func NewCleanupSystem(world *engine.World) engine.System {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Name() string { return "cleanup" }

func (s *CleanupSystem) Phase() engine.Phase { return engine.PhaseCleanup }

func (s *CleanupSystem) Update(time.Duration) {
	in := s.world.Resources.Input

	for k := range in.Pressed {
		delete(in.Pressed, k)
	}
	in.ResizeWidth = 0
	in.ResizeHeight = 0
}
