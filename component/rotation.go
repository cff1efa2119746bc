package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/vmath"
)

// RotationComponent stores the entity orientation.
// The quaternion is the single source of truth; Euler angles are a derived
// convenience view that converts on access, never stored.
type RotationComponent struct {
	Quat mgl32.Quat
}

// NewRotation returns an identity rotation
func NewRotation() RotationComponent {
	return RotationComponent{Quat: mgl32.QuatIdent()}
}

// NewRotationEulerDeg builds a rotation from pitch/yaw/roll degrees
func NewRotationEulerDeg(pitch, yaw, roll float32) RotationComponent {
	return RotationComponent{Quat: vmath.QuatFromEulerDeg(pitch, yaw, roll)}
}

// SetEulerDeg rederives the quaternion from pitch/yaw/roll degrees
func (r *RotationComponent) SetEulerDeg(pitch, yaw, roll float32) {
	r.Quat = vmath.QuatFromEulerDeg(pitch, yaw, roll)
}

// EulerDeg returns the orientation as pitch/yaw/roll degrees, derived from
// the quaternion on every call
func (r *RotationComponent) EulerDeg() (pitch, yaw, roll float32) {
	return vmath.EulerDegFromQuat(r.Quat)
}
