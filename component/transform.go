package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// PositionComponent is the entity position in parent space (world space when
// the entity has no parent)
type PositionComponent struct {
	Value mgl32.Vec3
}

// ScaleComponent is the per-axis scale factor
type ScaleComponent struct {
	Value mgl32.Vec3
}

// NewScale returns a unit scale component
func NewScale() ScaleComponent {
	return ScaleComponent{Value: mgl32.Vec3{1, 1, 1}}
}

// TransformComponent owns the cached transform matrices for an entity.
// Local is composed from Position/Rotation/Scale, World is Local chained
// through ancestor transforms (or equal to Local for root entities).
// Dirty marks the matrices stale; consumers must not read them until the
// propagation systems have run for the frame.
type TransformComponent struct {
	Local mgl32.Mat4
	World mgl32.Mat4
	Dirty bool
}

// NewTransform returns an identity transform marked dirty so the first
// propagation pass rebuilds it
func NewTransform() TransformComponent {
	return TransformComponent{
		Local: mgl32.Ident4(),
		World: mgl32.Ident4(),
		Dirty: true,
	}
}

// ParentComponent links an entity to its hierarchy parent.
// The child's world transform is composed through the parent's.
type ParentComponent struct {
	Entity core.Entity
}
