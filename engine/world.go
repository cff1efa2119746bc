package engine

import (
	"sync"

	"github.com/lucent3d/lucent/core"
)

// World contains all entities and their components using typed stores.
// One world belongs to one engine context; nothing here is process-global,
// so tests can run several worlds side by side.
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	// Typed component stores, public for direct system access
	Components ComponentStore

	// Singleton resources shared by systems
	Resources *Resource

	allStores []AnyStore
}

// NewWorld creates an ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    newResource(),
	}
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID without attaching components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes the entity's components from every store.
// After this returns no store holds a reference to the entity.
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether the entity still holds at least one component
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// EntityCount returns the number of IDs handed out so far.
// For live counts query the individual stores.
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(w.nextEntityID - 1)
}
