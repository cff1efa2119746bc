package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestRecorderFrameLifecycle(t *testing.T) {
	r := NewRecorder()

	require.True(t, r.BeginFrame())
	r.RenderMesh(1, 1, mgl32.Ident4())
	r.RenderMesh(2, 1, mgl32.Translate3D(1, 0, 0))
	r.EndFrame()

	require.Len(t, r.Draws, 2)
	require.Equal(t, 1, r.FrameCount())

	// A new frame starts with an empty submission list
	r.BeginFrame()
	require.Empty(t, r.Draws)
	r.EndFrame()
	require.Equal(t, 2, r.FrameCount())
}

func TestRecorderLightSlotsOverwrite(t *testing.T) {
	r := NewRecorder()

	r.SetLight(0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}, 1)
	r.SetLight(1, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 1)
	r.SetLight(0, mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 1, 1}, 2)

	require.Len(t, r.Lights, 2)
	require.Equal(t, mgl32.Vec3{5, 0, 0}, r.Lights[0].Position)
	require.Equal(t, float32(2), r.Lights[0].Intensity)

	// Slots survive frame boundaries, like backend light uniforms
	r.BeginFrame()
	r.EndFrame()
	require.Len(t, r.Lights, 2)
}

func TestRecorderCameraAndResize(t *testing.T) {
	r := NewRecorder()

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)
	r.SetCamera(view, proj)
	r.Resize(800, 600)

	require.Equal(t, view, r.View)
	require.Equal(t, proj, r.Projection)
	require.Equal(t, 800, r.Width)
	require.Equal(t, 600, r.Height)
}
