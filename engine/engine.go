// Package engine hosts the ECS world, the phase scheduler, and the frame
// orchestrator that ties timing, platform events, and rendering together.
package engine

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lucent3d/lucent/audio"
	"github.com/lucent3d/lucent/camera"
	"github.com/lucent3d/lucent/config"
	"github.com/lucent3d/lucent/platform"
	"github.com/lucent3d/lucent/render"
)

// Engine owns the world, the frame clock, and the phase scheduler, and
// drives the frame loop. Collaborators (window, renderer, audio) are
// optional; a missing renderer means headless operation where simulation
// phases keep running and draw submission is skipped.
type Engine struct {
	log       *zap.Logger
	cfg       config.Config
	world     *World
	scheduler *Scheduler
	clock     *FrameClock

	window       platform.Window
	renderer     render.Renderer
	player       audio.Player
	timeProvider TimeProvider

	running atomic.Bool
}

// Option configures the engine during construction
type Option func(*Engine)

// WithLogger sets the structured logger; a nop logger is used otherwise
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithWindow attaches the platform window events are polled from
func WithWindow(w platform.Window) Option {
	return func(e *Engine) { e.window = w }
}

// WithRenderer attaches the draw backend; omit it for headless runs
func WithRenderer(r render.Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithAudio attaches the audio backend; the silent player is used otherwise
func WithAudio(p audio.Player) Option {
	return func(e *Engine) { e.player = p }
}

// WithTimeProvider overrides the clock's time source, mainly for tests
func WithTimeProvider(tp TimeProvider) Option {
	return func(e *Engine) { e.timeProvider = tp }
}

// New validates cfg and assembles an engine around a fresh world.
// Registration of systems happens afterwards via Register.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.player == nil {
		e.player = audio.Silent{}
	}
	if e.timeProvider == nil {
		e.timeProvider = NewMonotonicTimeProvider()
	}

	e.world = NewWorld()
	e.scheduler = NewScheduler(e.log)
	e.clock = NewFrameClock(e.timeProvider, cfg.Time.SmoothingAlpha)
	if err := e.clock.SetTimeScale(cfg.Time.TimeScale); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	res := e.world.Resources
	res.Config.Gravity = cfg.GravityVec()
	res.Render.Renderer = e.renderer
	res.Audio.Player = e.player

	aspect := float32(16.0 / 9.0)
	if cfg.Video.Width > 0 && cfg.Video.Height > 0 {
		aspect = float32(cfg.Video.Width) / float32(cfg.Video.Height)
	}
	res.Camera.Camera = camera.New(60, aspect, 0.1, 1000)

	if e.renderer == nil {
		e.log.Warn("no renderer attached, running headless")
	}

	e.running.Store(true)
	return e, nil
}

// World returns the engine's ECS world
func (e *Engine) World() *World { return e.world }

// Clock returns the frame clock for time scale control and timing reads
func (e *Engine) Clock() *FrameClock { return e.clock }

// Register adds a system to the scheduler
func (e *Engine) Register(sys System) error {
	return e.scheduler.Register(sys)
}

// RequestExit stops the frame loop after the current frame completes
func (e *Engine) RequestExit() {
	e.running.Store(false)
}

// Running reports whether the frame loop should keep going
func (e *Engine) Running() bool {
	return e.running.Load()
}

// RunFrame executes one complete frame: event intake, clock tick, all
// phases in order with the Render phase bracketed by the renderer's
// begin/end calls.
func (e *Engine) RunFrame() {
	e.pollEvents()

	delta := e.clock.Tick()
	scaled := e.clock.ScaledDelta()
	e.world.Resources.Time.Update(
		delta, scaled,
		int64(e.clock.FrameCount()),
		e.clock.FPS(), e.clock.AvgFrameMs(),
	)

	e.scheduler.RunSpan(PhaseInit, PhasePreRender, scaled)

	rr := e.world.Resources.Render
	rr.FrameOpen = false
	if e.renderer != nil {
		rr.FrameOpen = e.renderer.BeginFrame()
	}
	e.scheduler.RunSpan(PhaseRender, PhaseRender, scaled)
	if rr.FrameOpen {
		e.renderer.EndFrame()
		rr.FrameOpen = false
	}

	e.scheduler.RunSpan(PhasePostRender, PhaseCleanup, scaled)

	if e.world.Resources.Input.QuitRequested {
		e.RequestExit()
	}
}

// Run drives frames until an exit is requested, then releases collaborators
func (e *Engine) Run() {
	for e.running.Load() {
		e.RunFrame()
	}
	e.Close()
}

// Close releases the audio and window collaborators. Safe to call once
// after the loop exits.
func (e *Engine) Close() {
	if e.player != nil {
		if err := e.player.Close(); err != nil {
			e.log.Warn("audio close failed", zap.Error(err))
		}
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			e.log.Warn("window close failed", zap.Error(err))
		}
	}
}

// pollEvents drains the window into the Input resource and applies resizes
// to the renderer before any phase runs
func (e *Engine) pollEvents() {
	if e.window == nil {
		return
	}
	in := e.world.Resources.Input
	for _, ev := range e.window.Poll() {
		if ev.Kind == platform.EventResize && e.renderer != nil {
			e.renderer.Resize(ev.Width, ev.Height)
		}
		in.Pending = append(in.Pending, ev)
	}
}
