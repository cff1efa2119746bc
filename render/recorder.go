package render

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// DrawCall is one recorded mesh submission
type DrawCall struct {
	Mesh   core.MeshHandle
	Shader core.ShaderHandle
	World  mgl32.Mat4
}

// LightUpdate is one recorded light slot write
type LightUpdate struct {
	Slot      int
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Recorder is a Renderer that records submissions instead of drawing.
// It backs headless runs and tests that assert on what the Render phase
// actually submitted.
type Recorder struct {
	mu sync.Mutex

	frames     int
	open       bool
	Draws      []DrawCall
	Lights     []LightUpdate
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Width      int
	Height     int
}

// NewRecorder creates an empty recording renderer
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) BeginFrame() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = true
	r.Draws = r.Draws[:0]
	return true
}

func (r *Recorder) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open {
		r.open = false
		r.frames++
	}
}

func (r *Recorder) RenderMesh(mesh core.MeshHandle, shader core.ShaderHandle, world mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Draws = append(r.Draws, DrawCall{Mesh: mesh, Shader: shader, World: world})
}

func (r *Recorder) SetCamera(view, projection mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.View = view
	r.Projection = projection
}

// SetLight writes light state for a slot. Slots persist across frames and
// are overwritten in place, matching how a GPU backend treats light uniforms.
func (r *Recorder) SetLight(slot int, position, color mgl32.Vec3, intensity float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Lights {
		if r.Lights[i].Slot == slot {
			r.Lights[i] = LightUpdate{Slot: slot, Position: position, Color: color, Intensity: intensity}
			return
		}
	}
	r.Lights = append(r.Lights, LightUpdate{Slot: slot, Position: position, Color: color, Intensity: intensity})
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Width = width
	r.Height = height
}

// FrameCount returns the number of completed begin/end frame pairs
func (r *Recorder) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
