package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// TermRenderer draws the scene onto a tcell screen: each mesh submission is
// projected through the camera and plotted as a glyph, with nearer objects
// drawn brighter. A debugging backend, but a complete one: it exercises the
// full camera and transform pipeline.
type TermRenderer struct {
	screen tcell.Screen
	width  int
	height int

	view       mgl32.Mat4
	projection mgl32.Mat4

	draws  int
	lights int
}

// NewTermRenderer wraps an initialized tcell screen
func NewTermRenderer(screen tcell.Screen) *TermRenderer {
	w, h := screen.Size()
	return &TermRenderer{screen: screen, width: w, height: h}
}

func (r *TermRenderer) BeginFrame() bool {
	if r.screen == nil {
		return false
	}
	r.screen.Clear()
	r.draws = 0
	return true
}

func (r *TermRenderer) EndFrame() {
	if r.screen == nil {
		return
	}
	status := fmt.Sprintf(" meshes:%d lights:%d ", r.draws, r.lights)
	r.drawString(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// RenderMesh projects the mesh origin into screen space and plots a glyph.
// Depth in NDC selects the glyph weight.
func (r *TermRenderer) RenderMesh(mesh core.MeshHandle, shader core.ShaderHandle, world mgl32.Mat4) {
	if r.screen == nil || r.width == 0 || r.height == 0 {
		return
	}
	r.draws++

	clip := r.projection.Mul4(r.view).Mul4(world).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if clip.W() <= 0 {
		return
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	ndcZ := clip.Z() / clip.W()
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 || ndcZ > 1 {
		return
	}

	// Terminal cells are about twice as tall as wide; Y is flipped
	x := int((ndcX + 1) / 2 * float32(r.width-1))
	y := int((1 - ndcY) / 2 * float32(r.height-1))

	glyph, style := depthGlyph(ndcZ)
	r.screen.SetContent(x, y, glyph, nil, style)
}

func (r *TermRenderer) SetCamera(view, projection mgl32.Mat4) {
	r.view = view
	r.projection = projection
}

func (r *TermRenderer) SetLight(slot int, position, color mgl32.Vec3, intensity float32) {
	if slot >= r.lights {
		r.lights = slot + 1
	}
}

func (r *TermRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	if r.screen != nil {
		r.screen.Sync()
	}
}

func (r *TermRenderer) drawString(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// depthGlyph maps NDC depth to a glyph and color, nearer being heavier
func depthGlyph(z float32) (rune, tcell.Style) {
	switch {
	case z < 0.90:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case z < 0.97:
		return 'o', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}
