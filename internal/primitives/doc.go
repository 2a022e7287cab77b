// Package primitives provides the foundational data structures for the
// behavior engine.
//
// This package and the engine tier (internal/core) use only the Go standard
// library. Libraries are used at the edges: configuration, identities, the
// demo and tests.
//
// Core invariants:
//   - Reactive values recompute lazily and at most once per upstream change
//   - The reactive graph is single-threaded; it belongs to one event loop
//   - Dispatch delivers to a snapshot of listeners, in registration order
//   - Descriptors are plain values; applying them is the core package's job
package primitives
