package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// IntegratePosition advances a position by linear velocity over dt
func IntegratePosition(pos, velocity mgl32.Vec3, dt time.Duration) mgl32.Vec3 {
	return pos.Add(velocity.Mul(float32(dt.Seconds())))
}

// ApplyGravity accelerates a velocity by the gravity vector over dt
func ApplyGravity(velocity, gravity mgl32.Vec3, dt time.Duration) mgl32.Vec3 {
	return velocity.Add(gravity.Mul(float32(dt.Seconds())))
}

// IntegrateRotation advances an orientation by an angular velocity
// (radians per second per axis) over dt. The result is renormalized.
func IntegrateRotation(q mgl32.Quat, angular mgl32.Vec3, dt time.Duration) mgl32.Quat {
	speed := angular.Len()
	if speed == 0 {
		return q
	}
	axis := angular.Mul(1 / speed)
	spin := mgl32.QuatRotate(speed*float32(dt.Seconds()), axis)
	return spin.Mul(q).Normalize()
}
