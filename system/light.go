package system

import (
	"time"

	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/vmath"
)

// MaxLightSlots is the number of renderer light slots
const MaxLightSlots = 8

// LightSystem forwards light entities to renderer slots. PreRender, after
// hierarchy composition.
type LightSystem struct {
	world *engine.World
}

// NewLightSystem creates the light slot writer
func NewLightSystem(world *engine.World) engine.System {
	return &LightSystem{world: world}
}

func (s *LightSystem) Name() string { return "light" }

func (s *LightSystem) Phase() engine.Phase { return engine.PhasePreRender }

func (s *LightSystem) Update(time.Duration) {
	r := s.world.Resources.Render.Renderer
	if r == nil {
		return
	}
	cs := &s.world.Components

	entities := s.world.Query().
		With(cs.Light).
		With(cs.Transform).
		Execute()

	slot := 0
	for _, entity := range entities {
		if slot >= MaxLightSlots {
			break
		}
		light, ok := cs.Light.Get(entity)
		if !ok {
			continue
		}
		tf, ok := cs.Transform.Get(entity)
		if !ok {
			continue
		}
		r.SetLight(slot, vmath.Position(tf.World), light.Color, light.Intensity)
		slot++
	}
}
