package system

import (
	"time"

	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/physics"
)

// PhysicsSystem runs the fixed-timestep simulation. It owns the stepper
// that converts frame deltas into fixed steps and integrates velocity and
// gravity into Position/Rotation. Transforms are only marked dirty here;
// matrix rebuilds belong to the PreRender propagation systems.
type PhysicsSystem struct {
	world   *engine.World
	stepper *physics.Stepper
}

// NewPhysicsSystem creates the physics system with the given cadence
func NewPhysicsSystem(world *engine.World, fixedStep time.Duration, maxSubsteps int) *PhysicsSystem {
	s := &PhysicsSystem{world: world}
	s.stepper = physics.NewStepper(fixedStep, maxSubsteps, s.step)
	return s
}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Phase() engine.Phase { return engine.PhasePhysics }

// Update feeds the scaled frame delta to the stepper, which calls step
// zero or more times
func (s *PhysicsSystem) Update(dt time.Duration) {
	s.stepper.Update(dt)
}

// Stepper exposes the stepper for pause and cadence control
func (s *PhysicsSystem) Stepper() *physics.Stepper { return s.stepper }

// step advances every simulated entity by one fixed (or flush) step
func (s *PhysicsSystem) step(dt time.Duration) {
	cs := &s.world.Components
	gravity := s.world.Resources.Config.Gravity

	for _, entity := range cs.Velocity.All() {
		vel, ok := cs.Velocity.Get(entity)
		if !ok {
			continue
		}

		if rb, ok := cs.RigidBody.Get(entity); ok && !rb.Kinematic {
			vel.Linear = physics.ApplyGravity(vel.Linear, gravity, dt)
			cs.Velocity.Set(entity, vel)
		}

		moved := false
		if vel.Linear.Len() != 0 {
			pos, ok := cs.Position.Get(entity)
			if ok {
				pos.Value = physics.IntegratePosition(pos.Value, vel.Linear, dt)
				cs.Position.Set(entity, pos)
				moved = true
			}
		}
		if vel.Angular.Len() != 0 {
			rot, ok := cs.Rotation.Get(entity)
			if !ok {
				rot = component.NewRotation()
			}
			rot.Quat = physics.IntegrateRotation(rot.Quat, vel.Angular, dt)
			cs.Rotation.Set(entity, rot)
			moved = true
		}

		if moved {
			if tf, ok := cs.Transform.Get(entity); ok {
				tf.Dirty = true
				cs.Transform.Set(entity, tf)
			}
		}
	}
}
