// Package audio defines the audio collaborator boundary. The engine owns no
// audio buffers; the Logic-phase audio system feeds world-space positions and
// gains to a Player keyed by source handle.
package audio

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lucent3d/lucent/core"
)

// Player is the mixer-facing interface used by the audio system
type Player interface {
	// Update advances the backend by the frame's scaled delta time
	Update(dt time.Duration)

	// Play starts playback of a registered source; false if unknown or the
	// backend is unavailable. Looped sources keep playing until the player
	// is closed or the gain drops to zero.
	Play(id core.SoundID, loop bool) bool

	// SetSourceVolume sets the final gain (0..1) after distance attenuation
	SetSourceVolume(id core.SoundID, volume float64)

	// SetSourcePosition records the source's world-space position
	SetSourcePosition(id core.SoundID, position mgl32.Vec3)

	Close() error
}

// Silent is a Player that discards everything. Used when no audio backend is
// available so the simulation keeps running unchanged.
type Silent struct{}

func (Silent) Update(time.Duration)                      {}
func (Silent) Play(core.SoundID, bool) bool              { return false }
func (Silent) SetSourceVolume(core.SoundID, float64)     {}
func (Silent) SetSourcePosition(core.SoundID, mgl32.Vec3) {}
func (Silent) Close() error                              { return nil }
