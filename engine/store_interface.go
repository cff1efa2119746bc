package engine

import (
	"github.com/lucent3d/lucent/core"
)

// AnyStore provides type-erased operations so the world can manage every
// store uniformly, e.g. removing all of an entity's components on destroy
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the iteration hook the query builder
// needs to intersect component sets
type QueryableStore interface {
	AnyStore

	All() []core.Entity
}
