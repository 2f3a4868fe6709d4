// Sentinel errors for the builder package.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Factories attach context via %w wrapping and never
// stringify parameters into the sentinel definitions.
package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the minimum the
// requested topology admits (e.g. Cycle needs n ≥ 3).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")
