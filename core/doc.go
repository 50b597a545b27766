// Package core defines the shared primitives of the crew pipeline: the
// immutable Message record, the append-only History it accumulates into,
// the Agent contract every pipeline participant implements, and the error
// taxonomy shared between the chain and the boundary layer.
package core
