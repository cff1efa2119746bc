package physics

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestIntegratePosition(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 3}
	vel := mgl32.Vec3{2, 0, -4}

	got := IntegratePosition(pos, vel, 500*time.Millisecond)

	require.InDelta(t, 2.0, got.X(), 1e-5)
	require.InDelta(t, 2.0, got.Y(), 1e-5)
	require.InDelta(t, 1.0, got.Z(), 1e-5)
}

func TestApplyGravity(t *testing.T) {
	vel := mgl32.Vec3{0, 0, 0}
	gravity := mgl32.Vec3{0, -9.81, 0}

	vel = ApplyGravity(vel, gravity, time.Second)

	require.InDelta(t, -9.81, vel.Y(), 1e-4)
}

func TestIntegrateRotationQuarterTurn(t *testing.T) {
	q := mgl32.QuatIdent()
	angular := mgl32.Vec3{0, mgl32.DegToRad(90), 0}

	q = IntegrateRotation(q, angular, time.Second)

	// A +Z facing vector rotated 90 degrees around Y lands on +X
	v := q.Rotate(mgl32.Vec3{0, 0, 1})
	require.InDelta(t, 1.0, v.X(), 1e-5)
	require.InDelta(t, 0.0, v.Y(), 1e-5)
	require.InDelta(t, 0.0, v.Z(), 1e-5)
}

func TestIntegrateRotationZeroAngular(t *testing.T) {
	q := mgl32.QuatRotate(1.2, mgl32.Vec3{0, 1, 0})
	got := IntegrateRotation(q, mgl32.Vec3{}, time.Second)
	require.Equal(t, q, got)
}

func TestRaySphereHit(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, -10}, Direction: mgl32.Vec3{0, 0, 1}}

	dist, ok := RaySphere(ray, mgl32.Vec3{0, 0, 0}, 2)

	require.True(t, ok)
	require.InDelta(t, 8.0, dist, 1e-4)
}

func TestRaySphereMiss(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 5, -10}, Direction: mgl32.Vec3{0, 0, 1}}

	_, ok := RaySphere(ray, mgl32.Vec3{0, 0, 0}, 2)
	require.False(t, ok)
}

func TestRaySphereBehindOrigin(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, 1}}

	_, ok := RaySphere(ray, mgl32.Vec3{0, 0, 0}, 2)
	require.False(t, ok)
}

func TestRaySphereFromInside(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 2}}

	dist, ok := RaySphere(ray, mgl32.Vec3{0, 0, 0}, 3)

	require.True(t, ok)
	require.InDelta(t, 3.0, dist, 1e-4)
}

func TestRaySphereDegenerate(t *testing.T) {
	_, ok := RaySphere(Ray{}, mgl32.Vec3{}, 1)
	require.False(t, ok)

	ray := Ray{Direction: mgl32.Vec3{0, 0, 1}}
	_, ok = RaySphere(ray, mgl32.Vec3{}, 0)
	require.False(t, ok)
}
