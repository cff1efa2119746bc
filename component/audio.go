package component

import (
	"github.com/lucent3d/lucent/core"
)

// AudioSourceComponent attaches a positional sound to an entity.
// The Logic-phase audio system derives the source position from the world
// transform and forwards gain/position to the audio collaborator.
type AudioSourceComponent struct {
	Sound       core.SoundID
	Volume      float32 // 0..1 before distance attenuation
	Loop        bool
	Playing     bool
	MinDistance float32 // attenuation starts here
	MaxDistance float32 // silent beyond here
}
