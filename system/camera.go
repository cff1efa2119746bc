package system

import (
	"time"

	"github.com/lucent3d/lucent/core"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/vmath"
)

// CameraSystem drives the camera collaborator from the primary active
// camera entity's world transform, then pushes view/projection to the
// renderer. It runs in PreRender after hierarchy composition so world
// matrices are final.
type CameraSystem struct {
	world  *engine.World
	aspect float32
}

// NewCameraSystem creates the camera driver with an initial aspect ratio
func NewCameraSystem(world *engine.World, aspect float32) engine.System {
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}
	return &CameraSystem{world: world, aspect: aspect}
}

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Phase() engine.Phase { return engine.PhasePreRender }

func (s *CameraSystem) Update(time.Duration) {
	res := s.world.Resources
	cam := res.Camera.Camera
	if cam == nil {
		return
	}

	if in := res.Input; in.ResizeWidth > 0 && in.ResizeHeight > 0 {
		s.aspect = float32(in.ResizeWidth) / float32(in.ResizeHeight)
	}

	entity := s.pickCamera()
	if entity == core.NilEntity {
		return
	}
	comp, _ := s.world.Components.Camera.Get(entity)
	tf, ok := s.world.Components.Transform.Get(entity)
	if !ok {
		return
	}

	position := vmath.Position(tf.World)
	cam.SetPosition(position)
	cam.LookAt(position.Add(vmath.Forward(tf.World)))
	cam.SetPerspective(comp.FOVDeg, s.aspect, comp.Near, comp.Far)
	cam.Update()

	res.Camera.ListenerPos = position

	if r := res.Render.Renderer; r != nil {
		r.SetCamera(cam.View(), cam.Projection())
	}
}

// pickCamera prefers the primary active camera, falling back to any active
// one. NilEntity when no camera is active.
func (s *CameraSystem) pickCamera() core.Entity {
	store := s.world.Components.Camera

	fallback := core.NilEntity
	for _, entity := range store.All() {
		comp, ok := store.Get(entity)
		if !ok || !comp.Active {
			continue
		}
		if comp.Primary {
			return entity
		}
		if fallback == core.NilEntity {
			fallback = entity
		}
	}
	return fallback
}
