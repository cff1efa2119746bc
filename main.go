// Lucent is a real-time 3D engine core: ECS world, phased frame scheduler,
// fixed-timestep physics, and hierarchical transform propagation. This demo
// entry point runs a small orbiting scene on a terminal backend, or fully
// headless with -headless.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lucent3d/lucent/audio"
	"github.com/lucent3d/lucent/component"
	"github.com/lucent3d/lucent/config"
	"github.com/lucent3d/lucent/core"
	"github.com/lucent3d/lucent/engine"
	"github.com/lucent3d/lucent/platform"
	"github.com/lucent3d/lucent/render"
	"github.com/lucent3d/lucent/system"
)

const humSound core.SoundID = 1

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	headless := flag.Bool("headless", false, "run without a terminal window")
	frames := flag.Int("frames", 0, "exit after N frames (0 = run until quit)")
	flag.Parse()

	if err := run(*configPath, *headless, *frames); err != nil {
		fmt.Fprintln(os.Stderr, "lucent:", err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool, frames int) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if headless {
		cfg.Video.Headless = true
	}

	opts := []engine.Option{engine.WithLogger(log)}

	if !cfg.Video.Headless {
		window, err := platform.NewTermWindow()
		if err != nil {
			return fmt.Errorf("open terminal window: %w", err)
		}
		opts = append(opts,
			engine.WithWindow(window),
			engine.WithRenderer(render.NewTermRenderer(window.Screen())),
		)
	}

	var player audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		bp := audio.NewBeepPlayer()
		bp.RegisterSource(humSound, 220)
		player = bp
	}
	opts = append(opts, engine.WithAudio(player))

	e, err := engine.New(cfg, opts...)
	if err != nil {
		return err
	}

	phys, err := system.RegisterDefaults(e, log, cfg)
	if err != nil {
		return err
	}
	if err := e.Register(&controlSystem{engine: e, phys: phys}); err != nil {
		return err
	}

	buildScene(e.World())

	log.Info("engine starting",
		zap.Bool("headless", cfg.Video.Headless),
		zap.Duration("fixed_step", cfg.FixedStep()),
		zap.Int("max_substeps", cfg.Physics.MaxSubsteps),
	)

	if frames > 0 {
		for i := 0; i < frames && e.Running(); i++ {
			e.RunFrame()
			time.Sleep(time.Millisecond)
		}
		e.Close()
	} else {
		e.Run()
	}

	log.Info("engine stopped",
		zap.Uint64("frames", e.Clock().FrameCount()),
		zap.Float64("avg_frame_ms", e.Clock().AvgFrameMs()),
	)
	return nil
}

// controlSystem maps demo keys: q quits, p toggles physics pause
type controlSystem struct {
	engine *engine.Engine
	phys   *system.PhysicsSystem
}

func (s *controlSystem) Name() string { return "control" }

func (s *controlSystem) Phase() engine.Phase { return engine.PhaseLogic }

func (s *controlSystem) Update(time.Duration) {
	in := s.engine.World().Resources.Input
	if in.Pressed['q'] {
		s.engine.RequestExit()
	}
	if in.Pressed['p'] {
		stepper := s.phys.Stepper()
		stepper.Pause(!stepper.IsPaused())
	}
}

// buildScene creates the demo entities: a camera, a light, a spinning hub
// with a child satellite, and a free body falling under gravity.
func buildScene(w *engine.World) {
	cs := &w.Components

	camComp := component.NewCamera()
	camComp.Primary = true
	engine.With(engine.With(engine.With(w.NewEntity(),
		cs.Position, component.PositionComponent{Value: mgl32.Vec3{0, 2, 10}}),
		cs.Transform, component.NewTransform()),
		cs.Camera, camComp).Build()

	engine.With(engine.With(engine.With(w.NewEntity(),
		cs.Position, component.PositionComponent{Value: mgl32.Vec3{5, 5, 5}}),
		cs.Transform, component.NewTransform()),
		cs.Light, component.LightComponent{
			Type:      component.LightPoint,
			Color:     mgl32.Vec3{1, 1, 1},
			Intensity: 1,
			Range:     30,
		}).Build()

	hub := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		cs.Position, component.PositionComponent{}),
		cs.Transform, component.NewTransform()),
		cs.Spinner, component.SpinnerComponent{Axis: mgl32.Vec3{0, 1, 0}, DegPerSec: 45}),
		cs.Renderable, component.RenderableComponent{Mesh: 1, Shader: 1, Visible: true}),
		cs.AudioSource, component.AudioSourceComponent{
			Sound:       humSound,
			Volume:      0.5,
			Loop:        true,
			Playing:     true,
			MinDistance: 2,
			MaxDistance: 40,
		}).Build()

	engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		cs.Position, component.PositionComponent{Value: mgl32.Vec3{3, 0, 0}}),
		cs.Transform, component.NewTransform()),
		cs.Parent, component.ParentComponent{Entity: hub}),
		cs.Renderable, component.RenderableComponent{Mesh: 2, Shader: 1, Visible: true}).Build()

	engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		cs.Position, component.PositionComponent{Value: mgl32.Vec3{-2, 6, 0}}),
		cs.Transform, component.NewTransform()),
		cs.Velocity, component.VelocityComponent{Linear: mgl32.Vec3{0.5, 0, 0}}),
		cs.RigidBody, component.RigidBodyComponent{Mass: 1}),
		cs.Renderable, component.RenderableComponent{Mesh: 3, Shader: 1, Visible: true}).Build()
}
