package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is an origin and a direction. Direction need not be normalized;
// RaySphere normalizes internally.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RaySphere tests the ray against a sphere and returns the distance along
// the ray to the nearest hit in front of the origin. ok is false on a miss
// or when the direction is degenerate.
func RaySphere(ray Ray, center mgl32.Vec3, radius float32) (distance float32, ok bool) {
	dirLen := ray.Direction.Len()
	if dirLen == 0 || radius <= 0 {
		return 0, false
	}
	dir := ray.Direction.Mul(1 / dirLen)

	oc := ray.Origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := float32(math.Sqrt(float64(disc)))

	t := -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
