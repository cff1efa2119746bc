package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/engine"
)

// SpinnerSystem rotates spinner entities at their configured rate.
// Animation phase, so fresh orientations reach PreRender propagation in the
// same frame.
type SpinnerSystem struct {
	world *engine.World
}

// NewSpinnerSystem creates the constant rotation animator
func NewSpinnerSystem(world *engine.World) engine.System {
	return &SpinnerSystem{world: world}
}

func (s *SpinnerSystem) Name() string { return "spinner" }

func (s *SpinnerSystem) Phase() engine.Phase { return engine.PhaseAnimation }

func (s *SpinnerSystem) Update(dt time.Duration) {
	cs := &s.world.Components

	for _, entity := range cs.Spinner.All() {
		spin, ok := cs.Spinner.Get(entity)
		if !ok || spin.DegPerSec == 0 || spin.Axis.Len() == 0 {
			continue
		}

		rot, ok := cs.Rotation.Get(entity)
		if !ok {
			rot = component.NewRotation()
		}

		angle := mgl32.DegToRad(spin.DegPerSec * float32(dt.Seconds()))
		step := mgl32.QuatRotate(angle, spin.Axis.Normalize())
		rot.Quat = step.Mul(rot.Quat).Normalize()
		cs.Rotation.Set(entity, rot)

		if tf, ok := cs.Transform.Get(entity); ok {
			tf.Dirty = true
			cs.Transform.Set(entity, tf)
		}
	}
}
