package engine

import (
	"sort"

	"github.com/lucent3d/lucent/core"
)

// QueryBuilder finds entities holding components in every listed store.
// Intersection starts from the smallest store to keep the work proportional
// to the rarest component.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query starts a new component intersection query.
//
//	entities := w.Query().
//	    With(w.Components.Position).
//	    With(w.Components.Velocity).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a store to the filter; only entities present in all added stores
// survive. Panics if called after Execute.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query. Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = []core.Entity{}
		return qb.results
	}
	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Smallest store first minimizes Has checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
