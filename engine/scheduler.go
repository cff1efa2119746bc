package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Phase is a named stage of the frame. Phases execute in dependency order
// every frame; systems register into exactly one phase.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseInput
	PhasePhysics
	PhaseLogic
	PhaseAnimation
	PhasePreRender
	PhaseRender
	PhasePostRender
	PhaseCleanup

	phaseCount
)

// PhaseNone marks a phase declaration with no predecessor (chain head)
const PhaseNone Phase = -1

var phaseNames = [phaseCount]string{
	"init",
	"input",
	"physics",
	"logic",
	"animation",
	"prerender",
	"render",
	"postrender",
	"cleanup",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) valid() bool {
	return p >= 0 && p < phaseCount
}

// System is one unit of per-frame work. Systems read and write component
// stores; cross-phase communication happens only through component state.
// Within a phase the engine registers its built-in systems in a deliberate
// order, but callers must not depend on intra-phase ordering.
type System interface {
	Name() string
	Phase() Phase
	Update(dt time.Duration)
}

// PhaseDecl declares a phase and its explicit predecessor, allowing the
// default chain to be reordered. Exactly one declaration must use PhaseNone.
type PhaseDecl struct {
	Phase Phase
	After Phase
}

// Scheduler executes systems grouped by phase, phases in dependency order.
// A system that panics is reported and disabled; the frame loop never dies
// with it.
type Scheduler struct {
	log     *zap.Logger
	order   []Phase
	pos     [phaseCount]int
	systems [phaseCount][]*systemEntry
}

// systemEntry pairs a system with its disabled latch. Disabling flips the
// flag in place so recovery never reshapes a slice mid-iteration.
type systemEntry struct {
	sys      System
	disabled bool
}

// NewScheduler creates a scheduler with the default phase chain:
// Init, Input, Physics, Logic, Animation, PreRender, Render, PostRender,
// Cleanup.
func NewScheduler(log *zap.Logger) *Scheduler {
	decls := make([]PhaseDecl, 0, phaseCount)
	for p := Phase(0); p < phaseCount; p++ {
		after := p - 1
		if p == 0 {
			after = PhaseNone
		}
		decls = append(decls, PhaseDecl{Phase: p, After: after})
	}
	s, err := NewSchedulerWithOrder(log, decls)
	if err != nil {
		// The default chain is valid by construction
		panic(err)
	}
	return s
}

// NewSchedulerWithOrder builds a scheduler from explicit predecessor
// declarations. Every engine phase must appear exactly once and the
// declarations must form a single acyclic chain.
func NewSchedulerWithOrder(log *zap.Logger, decls []PhaseDecl) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(decls) != int(phaseCount) {
		return nil, fmt.Errorf("expected %d phase declarations, got %d", phaseCount, len(decls))
	}

	successor := make(map[Phase]Phase, phaseCount)
	var head Phase = PhaseNone
	seen := make(map[Phase]bool, phaseCount)

	for _, d := range decls {
		if !d.Phase.valid() {
			return nil, fmt.Errorf("unknown phase %d in declaration", int(d.Phase))
		}
		if seen[d.Phase] {
			return nil, fmt.Errorf("phase %s declared twice", d.Phase)
		}
		seen[d.Phase] = true

		if d.After == PhaseNone {
			if head != PhaseNone {
				return nil, fmt.Errorf("phases %s and %s both declare no predecessor", head, d.Phase)
			}
			head = d.Phase
			continue
		}
		if !d.After.valid() {
			return nil, fmt.Errorf("phase %s depends on unknown phase %d", d.Phase, int(d.After))
		}
		if _, dup := successor[d.After]; dup {
			return nil, fmt.Errorf("phase %s has two successors", d.After)
		}
		successor[d.After] = d.Phase
	}
	if head == PhaseNone {
		return nil, fmt.Errorf("no phase declares itself the chain head")
	}

	s := &Scheduler{log: log}
	for p := head; ; {
		if len(s.order) > int(phaseCount) {
			return nil, fmt.Errorf("phase declarations form a cycle")
		}
		s.pos[p] = len(s.order)
		s.order = append(s.order, p)
		next, more := successor[p]
		if !more {
			break
		}
		p = next
	}
	if len(s.order) != int(phaseCount) {
		return nil, fmt.Errorf("phase declarations form a cycle or disconnected chain")
	}
	return s, nil
}

// Register adds a system to its declared phase. Fails if the phase is
// unknown; the system is then not registered at all.
func (s *Scheduler) Register(sys System) error {
	p := sys.Phase()
	if !p.valid() {
		return fmt.Errorf("system %q registered to unknown phase %d", sys.Name(), int(p))
	}
	s.systems[p] = append(s.systems[p], &systemEntry{sys: sys})
	return nil
}

// Order returns the phase execution order
func (s *Scheduler) Order() []Phase {
	out := make([]Phase, len(s.order))
	copy(out, s.order)
	return out
}

// RunFrame executes every phase once, in order, passing dt to each system
func (s *Scheduler) RunFrame(dt time.Duration) {
	s.RunSpan(s.order[0], s.order[len(s.order)-1], dt)
}

// RunSpan executes the phases from from through to (inclusive, in schedule
// order). The orchestrator uses it to bracket the Render phase with the
// renderer's begin/end frame calls.
func (s *Scheduler) RunSpan(from, to Phase, dt time.Duration) {
	if !from.valid() || !to.valid() {
		return
	}
	start, end := s.pos[from], s.pos[to]
	if start > end {
		return
	}
	for i := start; i <= end; i++ {
		phase := s.order[i]
		for _, entry := range s.systems[phase] {
			if entry.disabled {
				continue
			}
			s.runSystem(phase, entry, dt)
		}
	}
}

// runSystem isolates one system update; a panic disables only that system
func (s *Scheduler) runSystem(phase Phase, entry *systemEntry, dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("system panicked, disabling",
				zap.String("system", entry.sys.Name()),
				zap.Stringer("phase", phase),
				zap.Any("panic", r),
			)
			entry.disabled = true
		}
	}()
	entry.sys.Update(dt)
}
