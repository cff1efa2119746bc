// Package vmath provides small helpers on top of mgl32 for composing and
// decomposing transform matrices. Vector, matrix and quaternion arithmetic
// itself comes from github.com/go-gl/mathgl.
package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TRS composes a local transform matrix as Translation * Rotation * Scale.
// Translation and scale are applied around the origin, rotation from the
// canonical quaternion.
func TRS(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	r := rotation.Mat4()
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(r).Mul4(s)
}

// Position extracts the translation column of a transform matrix
func Position(m mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
}

// Forward returns the -Z basis vector of a transform matrix, normalized.
// This is the view direction for cameras and audio listeners.
func Forward(m mgl32.Mat4) mgl32.Vec3 {
	f := mgl32.Vec3{-m.At(0, 2), -m.At(1, 2), -m.At(2, 2)}
	if f.Len() == 0 {
		return mgl32.Vec3{0, 0, -1}
	}
	return f.Normalize()
}

// Up returns the +Y basis vector of a transform matrix, normalized
func Up(m mgl32.Mat4) mgl32.Vec3 {
	u := mgl32.Vec3{m.At(0, 1), m.At(1, 1), m.At(2, 1)}
	if u.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return u.Normalize()
}
