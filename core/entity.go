package core

// Entity is a unique identifier for an entity.
// It carries no data of its own; components are keyed by it.
type Entity uint64

// NilEntity is the zero entity, never assigned by a world
const NilEntity Entity = 0
