package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/core"
	"github.com/lucent3d/lucent/engine"
)

// fakePlayer records audio driver calls
type fakePlayer struct {
	volumes   map[core.SoundID]float64
	positions map[core.SoundID]mgl32.Vec3
	played    []core.SoundID
	updated   time.Duration
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{
		volumes:   make(map[core.SoundID]float64),
		positions: make(map[core.SoundID]mgl32.Vec3),
	}
}

func (p *fakePlayer) Update(dt time.Duration) { p.updated += dt }
func (p *fakePlayer) Play(id core.SoundID, loop bool) bool {
	p.played = append(p.played, id)
	return true
}
func (p *fakePlayer) SetSourceVolume(id core.SoundID, v float64) { p.volumes[id] = v }
func (p *fakePlayer) SetSourcePosition(id core.SoundID, pos mgl32.Vec3) {
	p.positions[id] = pos
}
func (p *fakePlayer) Close() error { return nil }

func TestAudioDistanceAttenuation(t *testing.T) {
	w := engine.NewWorld()
	player := newFakePlayer()
	w.Resources.Audio.Player = player
	w.Resources.Camera.ListenerPos = mgl32.Vec3{0, 0, 0}

	e := spatialEntity(w, mgl32.Vec3{6, 0, 0})
	w.Components.AudioSource.Set(e, component.AudioSourceComponent{
		Sound:       7,
		Volume:      1,
		MinDistance: 2,
		MaxDistance: 10,
	})
	propagate(t, w)

	NewAudioSystem(w).Update(16 * time.Millisecond)

	// 6 units out on a 2..10 falloff: half gain
	require.InDelta(t, 0.5, player.volumes[7], 1e-4)
	require.Equal(t, mgl32.Vec3{6, 0, 0}, player.positions[7])
	require.Equal(t, 16*time.Millisecond, player.updated)
}

func TestAudioPlayTriggerClears(t *testing.T) {
	w := engine.NewWorld()
	player := newFakePlayer()
	w.Resources.Audio.Player = player

	e := spatialEntity(w, mgl32.Vec3{})
	w.Components.AudioSource.Set(e, component.AudioSourceComponent{
		Sound:   3,
		Volume:  1,
		Playing: true,
		Loop:    true,
	})
	propagate(t, w)

	sys := NewAudioSystem(w)
	sys.Update(time.Millisecond)
	sys.Update(time.Millisecond)

	// Triggered exactly once; the backend owns looping
	require.Equal(t, []core.SoundID{3}, player.played)
	src, _ := w.Components.AudioSource.Get(e)
	require.False(t, src.Playing)
}
