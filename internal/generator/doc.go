// Package generator provides the low-level machinery shared by every
// lyrebird generator: template rendering with caching, validated file
// operations, two-phase execution, transactions with rollback, and
// conflict resolution with styled diffs.
//
// Generators produce []Operation; nothing touches disk until Execute runs.
// This keeps each file's content fully computed in memory before any write,
// so a failed run never leaves a half-written file behind.
package generator
