// Package config loads the read-only startup bundle that seeds the engine:
// timestep, substep cap, time scale, gravity, smoothing. The engine core
// itself never touches config files after startup.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/go-gl/mathgl/mgl32"
)

type Config struct {
	Time    TimeConfig    `toml:"time"`
	Physics PhysicsConfig `toml:"physics"`
	Video   VideoConfig   `toml:"video"`
	Audio   AudioConfig   `toml:"audio"`
}

type TimeConfig struct {
	// TimeScale multiplies the frame delta fed to simulation; 0 freezes
	TimeScale float64 `toml:"time_scale"`

	// SmoothingAlpha is the EMA factor for average frame time (0..1]
	SmoothingAlpha float64 `toml:"smoothing_alpha"`
}

type PhysicsConfig struct {
	// FixedTimestep is the simulation step in seconds, must be > 0
	FixedTimestep float64 `toml:"fixed_timestep"`

	// MaxSubsteps caps catch-up iterations per frame, clamped to >= 1
	MaxSubsteps int `toml:"max_substeps"`

	Gravity [3]float64 `toml:"gravity"`
}

type VideoConfig struct {
	Headless bool `toml:"headless"`
	Width    int  `toml:"width"`
	Height   int  `toml:"height"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// Default returns the engine defaults used when no config file is present
func Default() Config {
	return Config{
		Time: TimeConfig{
			TimeScale:      1.0,
			SmoothingAlpha: 0.2,
		},
		Physics: PhysicsConfig{
			FixedTimestep: 1.0 / 60.0,
			MaxSubsteps:   10,
			Gravity:       [3]float64{0, -9.81, 0},
		},
		Video: VideoConfig{
			Width:  1280,
			Height: 720,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
		},
	}
}

// GravityVec returns gravity as the vector type simulation consumes
func (c *Config) GravityVec() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.Physics.Gravity[0]),
		float32(c.Physics.Gravity[1]),
		float32(c.Physics.Gravity[2]),
	}
}

// FixedStep returns the physics timestep as a duration
func (c *Config) FixedStep() time.Duration {
	return time.Duration(c.Physics.FixedTimestep * float64(time.Second))
}

// Load reads a TOML config over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize clamps fields with a documented floor instead of rejecting them
func (c *Config) Normalize() {
	if c.Physics.MaxSubsteps < 1 {
		c.Physics.MaxSubsteps = 1
	}
}

// Validate rejects values the engine cannot run with. It never mutates the
// config; clamping happens in Normalize.
func (c *Config) Validate() error {
	if c.Physics.FixedTimestep <= 0 {
		return fmt.Errorf("fixed_timestep must be positive, got %g", c.Physics.FixedTimestep)
	}
	if c.Time.TimeScale < 0 {
		return fmt.Errorf("time_scale must not be negative, got %g", c.Time.TimeScale)
	}
	if c.Time.SmoothingAlpha <= 0 || c.Time.SmoothingAlpha > 1 {
		return fmt.Errorf("smoothing_alpha must be in (0, 1], got %g", c.Time.SmoothingAlpha)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("master_volume must be in [0, 1], got %g", c.Audio.MasterVolume)
	}
	return nil
}
