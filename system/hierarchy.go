package system

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lucent3d/lucent/core"
	"github.com/lucent3d/lucent/engine"
)

// MaxHierarchyDepth bounds parent chain walks. A chain longer than this is
// treated as a cycle: the entity keeps its previous world matrix and the
// breakage is logged once.
const MaxHierarchyDepth = 64

// HierarchySystem composes world matrices from local matrices through the
// parent chain. It runs in PreRender after TransformSystem, walks entities
// in ascending hierarchy depth so parents resolve before children, and
// clears Dirty once World is final.
type HierarchySystem struct {
	world *engine.World
	log   *zap.Logger

	reportedCycles map[core.Entity]bool

	// scratch reused across frames
	order []depthEntry
}

type depthEntry struct {
	entity core.Entity
	depth  int
}

// NewHierarchySystem creates the world matrix composition system
func NewHierarchySystem(world *engine.World, log *zap.Logger) engine.System {
	if log == nil {
		log = zap.NewNop()
	}
	return &HierarchySystem{
		world:          world,
		log:            log,
		reportedCycles: make(map[core.Entity]bool),
	}
}

func (s *HierarchySystem) Name() string { return "hierarchy" }

func (s *HierarchySystem) Phase() engine.Phase { return engine.PhasePreRender }

// Update recomputes World for every transform. Composition always runs,
// dirty or not: a clean child under a moved parent still needs a fresh
// world matrix, and recomputing is cheaper than tracking cross-entity
// dirtiness.
func (s *HierarchySystem) Update(time.Duration) {
	cs := &s.world.Components

	s.order = s.order[:0]
	for _, entity := range cs.Transform.All() {
		depth, ok := s.depthOf(entity)
		if !ok {
			if !s.reportedCycles[entity] {
				s.reportedCycles[entity] = true
				s.log.Warn("parent chain exceeds depth limit, skipping entity",
					zap.Uint64("entity", uint64(entity)),
					zap.Int("limit", MaxHierarchyDepth),
				)
			}
			continue
		}
		s.order = append(s.order, depthEntry{entity: entity, depth: depth})
	}

	sort.Slice(s.order, func(i, j int) bool {
		return s.order[i].depth < s.order[j].depth
	})

	for _, entry := range s.order {
		tf, ok := cs.Transform.Get(entry.entity)
		if !ok {
			continue
		}

		tf.World = tf.Local
		if parent, ok := cs.Parent.Get(entry.entity); ok {
			if ptf, ok := cs.Transform.Get(parent.Entity); ok {
				tf.World = ptf.World.Mul4(tf.Local)
			}
		}
		tf.Dirty = false
		cs.Transform.Set(entry.entity, tf)
	}
}

// depthOf walks the parent chain and returns the entity's hierarchy depth.
// ok is false when the chain exceeds MaxHierarchyDepth.
func (s *HierarchySystem) depthOf(entity core.Entity) (int, bool) {
	cs := &s.world.Components

	depth := 0
	current := entity
	for {
		parent, ok := cs.Parent.Get(current)
		if !ok || parent.Entity == core.NilEntity {
			return depth, true
		}
		depth++
		if depth > MaxHierarchyDepth {
			return 0, false
		}
		current = parent.Entity
	}
}
