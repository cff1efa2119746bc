package system

import (
	"time"

	"github.com/lucent3d/lucent/engine"
)

// RenderSystem submits visible renderables to the open frame. The
// orchestrator brackets the Render phase with BeginFrame/EndFrame; when no
// frame is open (headless, or the backend declined the frame) nothing is
// submitted and simulation continues untouched.
type RenderSystem struct {
	world *engine.World
}

// NewRenderSystem creates the draw submission system
func NewRenderSystem(world *engine.World) engine.System {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Phase() engine.Phase { return engine.PhaseRender }

func (s *RenderSystem) Update(time.Duration) {
	res := s.world.Resources.Render
	if !res.FrameOpen || res.Renderer == nil {
		return
	}
	cs := &s.world.Components

	entities := s.world.Query().
		With(cs.Renderable).
		With(cs.Transform).
		Execute()
	for _, entity := range entities {
		rend, ok := cs.Renderable.Get(entity)
		if !ok || !rend.Visible {
			continue
		}
		tf, ok := cs.Transform.Get(entity)
		if !ok || tf.Dirty {
			continue
		}
		res.Renderer.RenderMesh(rend.Mesh, rend.Shader, tf.World)
	}
}
