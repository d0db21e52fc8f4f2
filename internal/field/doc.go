// Package field holds the spatial entity store and the tick-driven growth
// engine.
//
// A Field owns every entity record, a per-cell index of the uids occupying
// each cell and the set of uids changed since the last DrainChanges call.
// Callers refer to entities only by UID and re-resolve them through the Field
// on every access, so no handle ever aliases Field-owned memory.
//
// Nothing in this package is safe for concurrent use. Tick and DrainChanges
// must be called from the same goroutine or be serialised by the caller.
//
// Entities are never removed: memory grows with the total number of entities
// ever created. Growth stops on its own once every cell next to a spawning
// entity is occupied.
package field
