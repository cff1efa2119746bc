package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// RenderableComponent marks an entity for draw submission.
// Mesh and shader construction belong to the renderer collaborator; the
// engine only forwards handles.
type RenderableComponent struct {
	Mesh    core.MeshHandle
	Shader  core.ShaderHandle
	Visible bool
}

// CameraComponent marks an entity as a camera mount point.
// The PreRender camera system drives the camera collaborator from the primary
// active camera's world transform.
type CameraComponent struct {
	Primary bool
	Active  bool
	FOVDeg  float32
	Near    float32
	Far     float32
}

// NewCamera returns a camera component with common perspective defaults
func NewCamera() CameraComponent {
	return CameraComponent{
		Active: true,
		FOVDeg: 60,
		Near:   0.1,
		Far:    1000,
	}
}

// LightType selects the light model
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// LightComponent holds light parameters forwarded to the renderer each frame
type LightComponent struct {
	Type      LightType
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
}
