package engine

import (
	"github.com/lucent3d/lucent/component"
)

// ComponentStore holds the typed store for every engine component.
// Systems keep a copy of this struct so hot paths never go through a map
// lookup to reach a store.
type ComponentStore struct {
	// Spatial state
	Position *Store[component.PositionComponent]
	Rotation *Store[component.RotationComponent]
	Scale    *Store[component.ScaleComponent]

	// Derived transform matrices
	Transform *Store[component.TransformComponent]
	Parent    *Store[component.ParentComponent]

	// Simulation
	Velocity  *Store[component.VelocityComponent]
	RigidBody *Store[component.RigidBodyComponent]
	Spinner   *Store[component.SpinnerComponent]

	// Output consumers
	Renderable  *Store[component.RenderableComponent]
	Camera      *Store[component.CameraComponent]
	Light       *Store[component.LightComponent]
	AudioSource *Store[component.AudioSourceComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Rotation: NewStore[component.RotationComponent](),
		Scale:    NewStore[component.ScaleComponent](),

		Transform: NewStore[component.TransformComponent](),
		Parent:    NewStore[component.ParentComponent](),

		Velocity:  NewStore[component.VelocityComponent](),
		RigidBody: NewStore[component.RigidBodyComponent](),
		Spinner:   NewStore[component.SpinnerComponent](),

		Renderable:  NewStore[component.RenderableComponent](),
		Camera:      NewStore[component.CameraComponent](),
		Light:       NewStore[component.LightComponent](),
		AudioSource: NewStore[component.AudioSourceComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Position,
		cs.Rotation,
		cs.Scale,
		cs.Transform,
		cs.Parent,
		cs.Velocity,
		cs.RigidBody,
		cs.Spinner,
		cs.Renderable,
		cs.Camera,
		cs.Light,
		cs.AudioSource,
	}
}
