// Package modmat: sentinel errors and the Mat2 value type.
package modmat

import "errors"

// ErrNotInvertible is returned whenever a key matrix whose determinant
// shares a factor with 26 reaches an operation that needs the inverse.
// Sweeps recover from it per-iteration by skipping the matrix; it is never
// fatal to a search.
var ErrNotInvertible = errors.New("modmat: matrix determinant has no inverse mod 26")

// Mat2 is a 2×2 key matrix with entries in [0,25]. The zero value is the
// zero matrix (never invertible). Mat2 is a comparable value type, so it can
// key caches directly.
type Mat2 struct {
	A, B int // first row
	C, D int // second row
}
