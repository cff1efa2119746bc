package system

import (
	"time"

	"github.com/lucent3d/lucent/audio"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/vmath"
)

// AudioSystem updates positional sources against the listener and drives
// the audio collaborator. Logic phase; it reads the previous frame's world
// matrices, which is close enough for audio.
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates the spatial audio system
func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Phase() engine.Phase { return engine.PhaseLogic }

func (s *AudioSystem) Update(dt time.Duration) {
	player := s.world.Resources.Audio.Player
	if player == nil {
		return
	}
	cs := &s.world.Components
	listener := s.world.Resources.Camera.ListenerPos

	for _, entity := range cs.AudioSource.All() {
		src, ok := cs.AudioSource.Get(entity)
		if !ok {
			continue
		}

		gain := src.Volume
		if tf, ok := cs.Transform.Get(entity); ok {
			pos := vmath.Position(tf.World)
			player.SetSourcePosition(src.Sound, pos)
			gain *= audio.Attenuate(pos.Sub(listener).Len(), src.MinDistance, src.MaxDistance)
		}
		player.SetSourceVolume(src.Sound, float64(gain))

		// Playing is a trigger; looped sources keep running in the backend
		// after the trigger clears
		if src.Playing && player.Play(src.Sound, src.Loop) {
			src.Playing = false
			cs.AudioSource.Set(entity, src)
		}
	}

	player.Update(dt)
}
