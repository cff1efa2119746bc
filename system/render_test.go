package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/lucent3d/lucent/camera"
	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/render"
)

func TestRenderSubmitsVisibleComposedEntities(t *testing.T) {
	w := engine.NewWorld()
	rec := render.NewRecorder()
	w.Resources.Render.Renderer = rec

	visible := spatialEntity(w, mgl32.Vec3{1, 0, 0})
	w.Components.Renderable.Set(visible, component.RenderableComponent{Mesh: 1, Shader: 1, Visible: true})

	hidden := spatialEntity(w, mgl32.Vec3{2, 0, 0})
	w.Components.Renderable.Set(hidden, component.RenderableComponent{Mesh: 2, Shader: 1})

	propagate(t, w)

	w.Resources.Render.FrameOpen = rec.BeginFrame()
	NewRenderSystem(w).Update(time.Millisecond)
	rec.EndFrame()

	require.Len(t, rec.Draws, 1)
	require.Equal(t, 1, int(rec.Draws[0].Mesh))

	tf, _ := w.Components.Transform.Get(visible)
	require.Equal(t, tf.World, rec.Draws[0].World)
}

func TestRenderSkipsDirtyTransforms(t *testing.T) {
	w := engine.NewWorld()
	rec := render.NewRecorder()
	w.Resources.Render.Renderer = rec

	e := spatialEntity(w, mgl32.Vec3{1, 0, 0})
	w.Components.Renderable.Set(e, component.RenderableComponent{Mesh: 1, Shader: 1, Visible: true})
	// No propagation pass ran; the transform is still dirty

	w.Resources.Render.FrameOpen = rec.BeginFrame()
	NewRenderSystem(w).Update(time.Millisecond)

	require.Empty(t, rec.Draws)
}

func TestRenderNoOpWhenFrameClosed(t *testing.T) {
	w := engine.NewWorld()
	rec := render.NewRecorder()
	w.Resources.Render.Renderer = rec

	e := spatialEntity(w, mgl32.Vec3{})
	w.Components.Renderable.Set(e, component.RenderableComponent{Mesh: 1, Shader: 1, Visible: true})
	propagate(t, w)

	// FrameOpen stays false: headless frame
	NewRenderSystem(w).Update(time.Millisecond)
	require.Empty(t, rec.Draws)
}

func TestCameraDrivesRendererAndListener(t *testing.T) {
	w := engine.NewWorld()
	rec := render.NewRecorder()
	w.Resources.Render.Renderer = rec
	w.Resources.Camera.Camera = camera.New(60, 16.0/9.0, 0.1, 1000)

	e := spatialEntity(w, mgl32.Vec3{0, 3, 8})
	cam := component.NewCamera()
	cam.Primary = true
	w.Components.Camera.Set(e, cam)

	propagate(t, w)
	NewCameraSystem(w, 16.0/9.0).Update(time.Millisecond)

	require.Equal(t, mgl32.Vec3{0, 3, 8}, w.Resources.Camera.ListenerPos)
	require.NotEqual(t, mgl32.Mat4{}, rec.View)
	require.NotEqual(t, mgl32.Mat4{}, rec.Projection)
}

func TestLightSystemFillsSlots(t *testing.T) {
	w := engine.NewWorld()
	rec := render.NewRecorder()
	w.Resources.Render.Renderer = rec

	e := spatialEntity(w, mgl32.Vec3{5, 5, 5})
	w.Components.Light.Set(e, component.LightComponent{
		Type:      component.LightPoint,
		Color:     mgl32.Vec3{1, 0.5, 0.25},
		Intensity: 2,
	})

	propagate(t, w)
	NewLightSystem(w).Update(time.Millisecond)

	require.Len(t, rec.Lights, 1)
	require.Equal(t, mgl32.Vec3{5, 5, 5}, rec.Lights[0].Position)
	require.Equal(t, float32(2), rec.Lights[0].Intensity)
}
