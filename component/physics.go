package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VelocityComponent holds linear and angular velocity.
// The physics integrator reads it and writes Position/Rotation; it never
// touches Transform matrices directly.
type VelocityComponent struct {
	Linear  mgl32.Vec3 // units per second
	Angular mgl32.Vec3 // axis-scaled radians per second
}

// RigidBodyComponent holds dynamics properties for the integrator
type RigidBodyComponent struct {
	Mass      float32
	Kinematic bool // kinematic bodies ignore gravity
}
