package audio

import (
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lucent3d/lucent/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneMillis = 150
)

type beepSource struct {
	freq     float64
	gain     float64
	position mgl32.Vec3
	active   *effects.Volume
}

// BeepPlayer mixes procedural tones through the beep speaker. When speaker
// initialization fails it flips to silent mode instead of erroring, so a
// machine without an audio device still runs the full frame loop.
type BeepPlayer struct {
	mu      sync.Mutex
	sources map[core.SoundID]*beepSource
	silent  bool
}

// NewBeepPlayer initializes the speaker; on failure the player degrades to
// silent mode and never produces output
func NewBeepPlayer() *BeepPlayer {
	p := &BeepPlayer{
		sources: make(map[core.SoundID]*beepSource),
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		p.silent = true
	}
	return p
}

// RegisterSource associates a source handle with a tone frequency
func (p *BeepPlayer) RegisterSource(id core.SoundID, freqHz float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[id] = &beepSource{freq: freqHz, gain: 1}
}

func (p *BeepPlayer) Update(time.Duration) {
	// Mixing happens on the speaker goroutine; nothing to advance here
}

func (p *BeepPlayer) Play(id core.SoundID, loop bool) bool {
	p.mu.Lock()
	src, ok := p.sources[id]
	silent := p.silent
	p.mu.Unlock()

	if !ok || silent {
		return false
	}

	tone, err := generators.SineTone(sampleRate, src.freq)
	if err != nil {
		return false
	}

	var streamer beep.Streamer = beep.Take(sampleRate.N(toneMillis*time.Millisecond), tone)
	if loop {
		streamer = tone
	}

	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   gainToVolume(src.gain),
		Silent:   src.gain <= 0,
	}

	p.mu.Lock()
	src.active = vol
	p.mu.Unlock()

	speaker.Play(vol)
	return true
}

func (p *BeepPlayer) SetSourceVolume(id core.SoundID, volume float64) {
	p.mu.Lock()
	src, ok := p.sources[id]
	if ok {
		src.gain = volume
	}
	active := (*effects.Volume)(nil)
	silent := p.silent
	if ok {
		active = src.active
	}
	p.mu.Unlock()

	if active == nil || silent {
		return
	}
	// The speaker goroutine reads the streamer; mutate under its lock
	speaker.Lock()
	active.Volume = gainToVolume(volume)
	active.Silent = volume <= 0
	speaker.Unlock()
}

func (p *BeepPlayer) SetSourcePosition(id core.SoundID, position mgl32.Vec3) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if src, ok := p.sources[id]; ok {
		src.position = position
	}
}

func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	silent := p.silent
	p.mu.Unlock()
	if !silent {
		speaker.Close()
	}
	return nil
}

// gainToVolume converts linear gain to the exponential volume beep expects
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
