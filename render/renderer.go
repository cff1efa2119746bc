// Package render defines the boundary contract with the GPU renderer
// collaborator. The engine core never constructs GPU resources; it submits
// draw calls keyed by handles and ready world matrices.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// Renderer is the draw submission interface consumed by the Render phase.
// BeginFrame may return false (e.g. swapchain unavailable); the frame's draw
// submissions are then skipped while simulation continues.
type Renderer interface {
	BeginFrame() bool
	EndFrame()

	// RenderMesh submits one draw with a ready (non-dirty) world matrix
	RenderMesh(mesh core.MeshHandle, shader core.ShaderHandle, world mgl32.Mat4)

	// SetCamera installs the view/projection matrices for the frame
	SetCamera(view, projection mgl32.Mat4)

	// SetLight updates one light slot from a world-space position
	SetLight(slot int, position, color mgl32.Vec3, intensity float32)

	Resize(width, height int)
}
