// Package physics converts variable frame time into fixed simulation steps
// and provides the pure integration helpers applied on each step. It knows
// nothing about worlds or stores; the Physics-phase system bridges the two.
package physics

import (
	"fmt"
	"time"
)

const (
	// DefaultFixedStep is the canonical simulation step (60 Hz)
	DefaultFixedStep = time.Second / 60
	// DefaultMaxSubsteps bounds the catch-up work per frame
	DefaultMaxSubsteps = 10
)

// StepFunc advances the simulation by exactly one fixed (or flush) step
type StepFunc func(dt time.Duration)

// Stepper converts variable frame deltas into fixed simulation steps.
// Frame time accumulates and is drained in fixed-size steps up to a
// substep cap; any remainder past the cap is consumed in a single flush
// step so simulated time never falls behind wall time.
type Stepper struct {
	fixedStep   time.Duration
	maxSubsteps int
	accumulated time.Duration
	iterations  int
	paused      bool
	step        StepFunc
}

// NewStepper creates a stepper driving step with the given cadence.
// Non-positive fixedStep falls back to DefaultFixedStep; maxSubsteps is
// clamped to at least 1.
func NewStepper(fixedStep time.Duration, maxSubsteps int, step StepFunc) *Stepper {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedStep
	}
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}
	return &Stepper{
		fixedStep:   fixedStep,
		maxSubsteps: maxSubsteps,
		step:        step,
	}
}

// Update accumulates dt and drains fixed steps. Returns the number of
// steps taken this call (including the flush step, if any).
func (s *Stepper) Update(dt time.Duration) int {
	s.iterations = 0
	if s.paused || s.step == nil {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	s.accumulated += dt

	for s.accumulated >= s.fixedStep && s.iterations < s.maxSubsteps {
		s.step(s.fixedStep)
		s.accumulated -= s.fixedStep
		s.iterations++
	}

	// Substep cap hit with time still owed: consume it all in one
	// oversized step rather than let the accumulator grow unbounded.
	if s.iterations >= s.maxSubsteps && s.accumulated > 0 {
		s.step(s.accumulated)
		s.accumulated = 0
		s.iterations++
	}
	return s.iterations
}

// SetFixedStep changes the simulation cadence. A non-positive step is
// rejected and the previous value kept.
func (s *Stepper) SetFixedStep(step time.Duration) error {
	if step <= 0 {
		return fmt.Errorf("fixed step must be positive, got %v", step)
	}
	s.fixedStep = step
	return nil
}

// SetMaxSubsteps changes the per-frame substep cap, clamped to at least 1
func (s *Stepper) SetMaxSubsteps(n int) {
	if n < 1 {
		n = 1
	}
	s.maxSubsteps = n
}

// Pause stops stepping; accumulated time is retained
func (s *Stepper) Pause(paused bool) {
	s.paused = paused
}

func (s *Stepper) IsPaused() bool { return s.paused }

// FixedStep returns the current simulation cadence
func (s *Stepper) FixedStep() time.Duration { return s.fixedStep }

// Accumulated returns the banked frame time not yet simulated
func (s *Stepper) Accumulated() time.Duration { return s.accumulated }

// Iterations returns the step count of the most recent Update call
func (s *Stepper) Iterations() int { return s.iterations }
