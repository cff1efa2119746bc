package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/audio"
	"github.com/lucent3d/lucent/camera"
	"github.com/lucent3d/lucent/platform"
	"github.com/lucent3d/lucent/render"
)

// Resource holds the singleton resources systems share. Populated during
// engine construction; systems keep the pointer and read typed fields
// directly.
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	Render *RenderResource
	Audio  *AudioResource
	Camera *CameraResource
}

func newResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Config: &ConfigResource{},
		Input:  NewInputResource(),
		Render: &RenderResource{},
		Audio:  &AudioResource{},
		Camera: &CameraResource{},
	}
}

// TimeResource exposes frame timing to systems. The orchestrator rewrites it
// at the top of every frame, before any phase runs.
type TimeResource struct {
	// DeltaTime is the unscaled real time since the previous frame
	DeltaTime time.Duration

	// ScaledDelta is DeltaTime multiplied by the time scale; what simulation
	// systems should consume
	ScaledDelta time.Duration

	FrameNumber int64
	FPS         float64
	AvgFrameMs  float64
}

// Update rewrites the fields in place so cached pointers stay valid
func (tr *TimeResource) Update(delta, scaled time.Duration, frame int64, fps, avgMs float64) {
	tr.DeltaTime = delta
	tr.ScaledDelta = scaled
	tr.FrameNumber = frame
	tr.FPS = fps
	tr.AvgFrameMs = avgMs
}

// ConfigResource is the read-only slice of startup configuration systems
// care about
type ConfigResource struct {
	Gravity mgl32.Vec3
}

// InputResource carries platform events into the Input phase and holds the
// per-frame key state. Pressed is transient ("pressed this frame") and is
// cleared by the Cleanup phase; Down persists across frames.
type InputResource struct {
	// Pending is filled by the orchestrator from Window.Poll before phases run
	Pending []platform.Event

	Down    map[rune]bool
	Pressed map[rune]bool

	// ResizeWidth/Height hold the latest resize event, zero when none arrived
	ResizeWidth  int
	ResizeHeight int

	QuitRequested bool
}

func NewInputResource() *InputResource {
	return &InputResource{
		Down:    make(map[rune]bool),
		Pressed: make(map[rune]bool),
	}
}

// RenderResource wraps the renderer collaborator. Renderer is nil in
// headless mode; FrameOpen reports whether BeginFrame succeeded this frame.
type RenderResource struct {
	Renderer  render.Renderer
	FrameOpen bool
}

// AudioResource wraps the audio collaborator; Player is never nil (silent
// backend when audio is unavailable)
type AudioResource struct {
	Player audio.Player
}

// CameraResource holds the active camera collaborator and the listener
// position derived from it, used by spatial audio
type CameraResource struct {
	Camera      *camera.Camera
	ListenerPos mgl32.Vec3
}
