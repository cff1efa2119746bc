package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/core"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/vmath"
)

func propagate(t *testing.T, w *engine.World) {
	t.Helper()
	NewTransformSystem(w).Update(time.Millisecond)
	NewHierarchySystem(w, zap.NewNop()).Update(time.Millisecond)
}

func spatialEntity(w *engine.World, pos mgl32.Vec3) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{Value: pos})
	w.Components.Transform.Set(e, component.NewTransform())
	return e
}

func worldPos(t *testing.T, w *engine.World, e core.Entity) mgl32.Vec3 {
	t.Helper()
	tf, ok := w.Components.Transform.Get(e)
	require.True(t, ok)
	return vmath.Position(tf.World)
}

func TestLocalRebuildFromSpatialComponents(t *testing.T) {
	w := engine.NewWorld()
	e := spatialEntity(w, mgl32.Vec3{1, 2, 3})
	w.Components.Scale.Set(e, component.ScaleComponent{Value: mgl32.Vec3{2, 2, 2}})

	propagate(t, w)

	tf, _ := w.Components.Transform.Get(e)
	require.False(t, tf.Dirty)
	require.Equal(t, mgl32.Vec3{1, 2, 3}, vmath.Position(tf.World))

	// Scale shows up in the basis vectors
	require.InDelta(t, 2.0, tf.World.At(0, 0), 1e-5)
}

func TestCleanTransformSkipsLocalRebuild(t *testing.T) {
	w := engine.NewWorld()
	e := spatialEntity(w, mgl32.Vec3{1, 0, 0})

	propagate(t, w)
	require.Equal(t, mgl32.Vec3{1, 0, 0}, worldPos(t, w, e))

	// Position change without the dirty mark is not picked up
	w.Components.Position.Set(e, component.PositionComponent{Value: mgl32.Vec3{9, 9, 9}})
	propagate(t, w)
	require.Equal(t, mgl32.Vec3{1, 0, 0}, worldPos(t, w, e))

	// Marking dirty makes the next pass rebuild
	tf, _ := w.Components.Transform.Get(e)
	tf.Dirty = true
	w.Components.Transform.Set(e, tf)
	propagate(t, w)
	require.Equal(t, mgl32.Vec3{9, 9, 9}, worldPos(t, w, e))
}

func TestHierarchyComposesChildThroughParent(t *testing.T) {
	w := engine.NewWorld()

	// Child created before parent; depth ordering must not depend on
	// creation order
	child := spatialEntity(w, mgl32.Vec3{0, 2, 0})
	parent := spatialEntity(w, mgl32.Vec3{1, 0, 0})
	w.Components.Parent.Set(child, component.ParentComponent{Entity: parent})

	grandchild := spatialEntity(w, mgl32.Vec3{0, 0, 3})
	w.Components.Parent.Set(grandchild, component.ParentComponent{Entity: child})

	propagate(t, w)

	require.Equal(t, mgl32.Vec3{1, 0, 0}, worldPos(t, w, parent))
	require.Equal(t, mgl32.Vec3{1, 2, 0}, worldPos(t, w, child))
	require.Equal(t, mgl32.Vec3{1, 2, 3}, worldPos(t, w, grandchild))

	// World_child == World_parent * Local_child
	ptf, _ := w.Components.Transform.Get(parent)
	ctf, _ := w.Components.Transform.Get(child)
	require.Equal(t, ptf.World.Mul4(ctf.Local), ctf.World)
}

func TestParentMovementReachesCleanChild(t *testing.T) {
	w := engine.NewWorld()
	parent := spatialEntity(w, mgl32.Vec3{0, 0, 0})
	child := spatialEntity(w, mgl32.Vec3{5, 0, 0})
	w.Components.Parent.Set(child, component.ParentComponent{Entity: parent})

	propagate(t, w)
	require.Equal(t, mgl32.Vec3{5, 0, 0}, worldPos(t, w, child))

	// Only the parent changes; the child transform stays clean
	w.Components.Position.Set(parent, component.PositionComponent{Value: mgl32.Vec3{0, 10, 0}})
	ptf, _ := w.Components.Transform.Get(parent)
	ptf.Dirty = true
	w.Components.Transform.Set(parent, ptf)

	propagate(t, w)
	require.Equal(t, mgl32.Vec3{5, 10, 0}, worldPos(t, w, child))
}

func TestHierarchyRotationComposition(t *testing.T) {
	w := engine.NewWorld()
	parent := spatialEntity(w, mgl32.Vec3{0, 0, 0})
	w.Components.Rotation.Set(parent, component.NewRotationEulerDeg(0, 90, 0))

	child := spatialEntity(w, mgl32.Vec3{0, 0, 1})
	w.Components.Parent.Set(child, component.ParentComponent{Entity: parent})

	propagate(t, w)

	// Parent yaw of 90 degrees carries the child's +Z offset onto +X
	got := worldPos(t, w, child)
	require.InDelta(t, 1.0, got.X(), 1e-5)
	require.InDelta(t, 0.0, got.Y(), 1e-5)
	require.InDelta(t, 0.0, got.Z(), 1e-5)
}

func TestHierarchyCycleSkipped(t *testing.T) {
	w := engine.NewWorld()
	a := spatialEntity(w, mgl32.Vec3{1, 0, 0})
	b := spatialEntity(w, mgl32.Vec3{2, 0, 0})
	w.Components.Parent.Set(a, component.ParentComponent{Entity: b})
	w.Components.Parent.Set(b, component.ParentComponent{Entity: a})

	free := spatialEntity(w, mgl32.Vec3{7, 0, 0})

	require.NotPanics(t, func() { propagate(t, w) })

	// Cycle members keep their previous world matrices; the healthy
	// entity still composes
	atf, _ := w.Components.Transform.Get(a)
	require.Equal(t, mgl32.Ident4(), atf.World)
	require.Equal(t, mgl32.Vec3{7, 0, 0}, worldPos(t, w, free))
}

func TestManualTransformNotRebuilt(t *testing.T) {
	w := engine.NewWorld()

	// Transform only, no spatial components: Local is caller-managed
	e := w.CreateEntity()
	tf := component.NewTransform()
	tf.Local = mgl32.Translate3D(4, 4, 4)
	w.Components.Transform.Set(e, tf)

	propagate(t, w)

	got, _ := w.Components.Transform.Get(e)
	require.Equal(t, mgl32.Translate3D(4, 4, 4), got.Local)
	require.Equal(t, mgl32.Vec3{4, 4, 4}, worldPos(t, w, e))
	require.False(t, got.Dirty)
}

func TestMissingParentTreatedAsRoot(t *testing.T) {
	w := engine.NewWorld()
	e := spatialEntity(w, mgl32.Vec3{3, 0, 0})
	w.Components.Parent.Set(e, component.ParentComponent{Entity: core.Entity(9999)})

	propagate(t, w)
	require.Equal(t, mgl32.Vec3{3, 0, 0}, worldPos(t, w, e))
}
