// Package system contains the engine's built-in systems, one per concern,
// each bound to a frame phase.
package system

import (
	"go.uber.org/zap"

	"github.com/lucent3d/lucent/config"
	"github.com/lucent3d/lucent/engine"
)

// RegisterDefaults wires the built-in systems into the engine. Registration
// order matters inside PreRender: local rebuild, then hierarchy composition,
// then the camera and light consumers. The physics system is returned so
// callers can pause or retune the stepper.
func RegisterDefaults(e *engine.Engine, log *zap.Logger, cfg config.Config) (*PhysicsSystem, error) {
	world := e.World()

	aspect := float32(0)
	if cfg.Video.Width > 0 && cfg.Video.Height > 0 {
		aspect = float32(cfg.Video.Width) / float32(cfg.Video.Height)
	}

	phys := NewPhysicsSystem(world, cfg.FixedStep(), cfg.Physics.MaxSubsteps)

	ordered := []engine.System{
		NewInputSystem(world),
		phys,
		NewAudioSystem(world),
		NewSpinnerSystem(world),
		NewTransformSystem(world),
		NewHierarchySystem(world, log),
		NewCameraSystem(world, aspect),
		NewLightSystem(world),
		NewRenderSystem(world),
		NewCleanupSystem(world),
	}
	for _, sys := range ordered {
		if err := e.Register(sys); err != nil {
			return nil, err
		}
	}
	return phys, nil
}
