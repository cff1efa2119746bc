package system

import (
	"time"

	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/vmath"
)

// TransformSystem rebuilds local matrices for entities whose transform is
// marked dirty. It runs at the start of PreRender, before hierarchy
// composition, so every consumer downstream sees matrices for this frame.
type TransformSystem struct {
	world *engine.World
}

// NewTransformSystem creates the local matrix rebuild system
func NewTransformSystem(world *engine.World) engine.System {
	return &TransformSystem{world: world}
}

func (s *TransformSystem) Name() string { return "transform" }

func (s *TransformSystem) Phase() engine.Phase { return engine.PhasePreRender }

// Update recomposes Local from Position/Rotation/Scale wherever Dirty is
// set. An entity carrying none of the spatial components manages its Local
// matrix itself and is left alone. Dirty stays set; hierarchy composition
// clears it once World is final.
func (s *TransformSystem) Update(time.Duration) {
	cs := &s.world.Components

	for _, entity := range cs.Transform.All() {
		tf, ok := cs.Transform.Get(entity)
		if !ok || !tf.Dirty {
			continue
		}

		pos, hasPos := cs.Position.Get(entity)
		rot, hasRot := cs.Rotation.Get(entity)
		scale, hasScale := cs.Scale.Get(entity)
		if !hasPos && !hasRot && !hasScale {
			continue
		}
		if !hasRot {
			rot = component.NewRotation()
		}
		if !hasScale {
			scale = component.NewScale()
		}

		tf.Local = vmath.TRS(pos.Value, rot.Quat, scale.Value)
		cs.Transform.Set(entity, tf)
	}
}
