// Package pipeline drives the record loop across an ordered list of
// FASTX sources and hands each parsed record to a visit callback.
//
// The only contract to implement is Visit. This keeps the consumers
// (matching, counting, filtering) swappable and testable.
package pipeline
