// Package core: sentinel error set and shared value types.
//
// This file defines ONLY package-level sentinel errors and the small value
// types shared across the polygraph packages. All validators MUST return
// these sentinels and tests MUST check them via errors.Is. No function in
// this package panics on user-triggered error conditions.
package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping. Do not %w-wrap these sentinels when returning directly;
// wrap with fmt.Errorf("ctx: %w", ErrX) only where context is essential —
// callers still match via errors.Is.

var (
	// ErrEmptyCiphertext indicates a zero-length ciphertext was supplied.
	ErrEmptyCiphertext = errors.New("core: ciphertext is empty")

	// ErrNonAlphabetic indicates the ciphertext contains a character outside
	// the uppercase A–Z alphabet.
	ErrNonAlphabetic = errors.New("core: ciphertext contains non-alphabetic character")

	// ErrRegionBounds indicates a region whose [Start,End) range is inverted,
	// negative, or falls outside the ciphertext.
	ErrRegionBounds = errors.New("core: region bounds out of range")

	// ErrRegionOverlap indicates two regions in the same list share at least
	// one ciphertext position.
	ErrRegionOverlap = errors.New("core: regions overlap")

	// ErrFragmentLength indicates a known fragment whose length does not
	// equal the length of its region.
	ErrFragmentLength = errors.New("core: known fragment length does not match region")
)

// Region addresses a contiguous sub-range [Start,End) of a ciphertext,
// carrying an optional known plaintext fragment for constraint checking.
//
// End is exclusive. An odd-length region is legal: block decryption passes
// the trailing character through unchanged.
type Region struct {
	Start int    // first ciphertext position covered (inclusive)
	End   int    // one past the last position covered (exclusive)
	Label string // human-readable region name, e.g. "BERLIN"

	// KnownFragment is the expected plaintext for the whole region, or ""
	// when the region is unconstrained. When non-empty its length must equal
	// End-Start.
	KnownFragment string
}

// Len returns the number of ciphertext positions the region covers.
func (r Region) Len() int { return r.End - r.Start }

// Constraint pins a single absolute ciphertext position to an expected
// plaintext letter. Constraints are derived from Region.KnownFragment and
// from the sculpture's self-encryption property.
type Constraint struct {
	Position int  // absolute position within the ciphertext
	Expected byte // expected plaintext letter, 'A'..'Z'
}
