// Package kernel contains the shared value objects of the dispatch domain.
//
// The kernel holds the primitive building blocks that every aggregate
// depends on:
//   - UUID: identifier for orders, partners, areas and assignment records
//   - TimeOfDay: minute-precision wall-clock time for schedules and shifts
//
// Value objects here are immutable, constructed through factory functions,
// and carry their own validation. Aggregates in the model packages build
// on top of these primitives.
package kernel
