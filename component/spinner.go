package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SpinnerComponent rotates an entity at a constant rate around an axis.
// Processed by the Animation-phase spinner system.
type SpinnerComponent struct {
	Axis      mgl32.Vec3
	DegPerSec float32
}
