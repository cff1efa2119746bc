package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotation order is yaw (Y), then pitch (X), then roll (Z).
// All angles are degrees; pitch/yaw/roll matches the editor-facing view.

// QuatFromEulerDeg builds the canonical quaternion from Euler angles in degrees
func QuatFromEulerDeg(pitch, yaw, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(mgl32.DegToRad(yaw), mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(mgl32.DegToRad(pitch), mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(roll), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz).Normalize()
}

// EulerDegFromQuat converts a quaternion back to pitch/yaw/roll degrees.
// Inverse of QuatFromEulerDeg for the same rotation order; near the
// pitch = +-90 degree singularity roll collapses into yaw.
func EulerDegFromQuat(q mgl32.Quat) (pitch, yaw, roll float32) {
	m := q.Normalize().Mat4()

	// R = Ry * Rx * Rz, so sin(pitch) = -m[1][2]
	sp := -m.At(1, 2)
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}

	pitchRad := float32(math.Asin(float64(sp)))
	var yawRad, rollRad float32
	if math.Abs(float64(sp)) < 0.9999 {
		yawRad = float32(math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2))))
		rollRad = float32(math.Atan2(float64(m.At(1, 0)), float64(m.At(1, 1))))
	} else {
		// Gimbal lock: distribute the remaining rotation to yaw
		yawRad = float32(math.Atan2(float64(-m.At(2, 0)), float64(m.At(0, 0))))
		rollRad = 0
	}

	return mgl32.RadToDeg(pitchRad), mgl32.RadToDeg(yawRad), mgl32.RadToDeg(rollRad)
}
