// Package pipeline: sentinel errors, the position mask and validation result.
package pipeline

import "errors"

// ErrOffsetLength indicates a correction table shorter than its region.
var ErrOffsetLength = errors.New("pipeline: offset table does not cover region")

// Mask selects the in-region positions that receive offset corrections.
// A nil Mask applies corrections everywhere; a non-nil Mask applies them
// only where the value is true (so an empty non-nil mask disables the
// correction stage entirely).
type Mask map[int]bool

// Applies reports whether position i receives its correction under m.
func (m Mask) Applies(i int) bool {
	if m == nil {
		return true
	}

	return m[i]
}

// ValidationResult reports how a candidate plaintext fared against a
// region's known fragment.
type ValidationResult struct {
	// Pass is true when every fragment position matched. Regions without a
	// known fragment pass vacuously.
	Pass bool

	// Matched lists the in-region positions whose letters agreed with the
	// fragment, in ascending order, even when Pass is false. Used for
	// partial-credit ranking.
	Matched []int
}
