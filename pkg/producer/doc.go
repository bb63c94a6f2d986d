// Package producer implements the primitive sampling layer the typed
// producers are built on.
//
// Base wraps a math/rand/v2 source and offers uniform draws, weighted
// choice, and mask filling (# for digits, ? for letters). Dates adds
// instant generation between bounds and relative to an injectable
// clock. All methods validate their arguments and fail with a
// *ValidationError rather than clamping out-of-range input.
//
// Two producers built over sources seeded identically emit identical
// sequences as long as calls are made in the same order.
package producer
