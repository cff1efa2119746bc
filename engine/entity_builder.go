package engine

import (
	"github.com/lucent3d/lucent/core"
)

// EntityBuilder constructs an entity fluently: the ID is reserved up front,
// components are attached via With, Build returns the finished entity.
//
//	e := With(With(w.NewEntity(),
//	    w.Components.Position, component.PositionComponent{}),
//	    w.Components.Transform, component.NewTransform()).Build()
type EntityBuilder struct {
	entity core.Entity
	built  bool
}

// NewEntity starts building an entity with a freshly reserved ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{entity: w.CreateEntity()}
}

// With attaches a component of type T to the entity under construction.
// Panics if called after Build.
func With[T any](eb *EntityBuilder, store *Store[T], val T) *EntityBuilder {
	if eb.built {
		panic("entity already built")
	}
	store.Set(eb.entity, val)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
