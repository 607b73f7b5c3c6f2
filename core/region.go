package core

import (
	"fmt"
	"sort"
)

// Validate checks a single region against a ciphertext of length ctLen.
//
// Contracts:
//   - 0 ≤ Start < End ≤ ctLen (ErrRegionBounds).
//   - KnownFragment, when set, must be exactly End-Start uppercase letters
//     (ErrFragmentLength, ErrNonAlphabetic).
//
// Complexity: O(Len).
func (r Region) Validate(ctLen int) error {
	if r.Start < 0 || r.End <= r.Start || r.End > ctLen {
		return fmt.Errorf("region %q [%d,%d): %w", r.Label, r.Start, r.End, ErrRegionBounds)
	}
	if r.KnownFragment == "" {
		return nil
	}
	if len(r.KnownFragment) != r.Len() {
		return fmt.Errorf("region %q: fragment %q: %w", r.Label, r.KnownFragment, ErrFragmentLength)
	}
	var i int
	for i = 0; i < len(r.KnownFragment); i++ {
		if r.KnownFragment[i] < 'A' || r.KnownFragment[i] > 'Z' {
			return fmt.Errorf("region %q fragment position %d: %w", r.Label, i, ErrNonAlphabetic)
		}
	}

	return nil
}

// ValidateRegions checks every region individually and then enforces
// pairwise non-overlap across the list. Region order is irrelevant.
//
// Errors: ErrRegionBounds, ErrFragmentLength, ErrNonAlphabetic from the
// per-region pass; ErrRegionOverlap from the overlap scan.
//
// Complexity: O(n log n + total fragment length) for n regions.
func ValidateRegions(regions []Region, ctLen int) error {
	var (
		i   int
		err error
	)
	for i = range regions {
		if err = regions[i].Validate(ctLen); err != nil {
			return err
		}
	}

	// Sort a copy of the index space by Start; any overlap then shows up
	// between neighbours.
	order := make([]int, len(regions))
	for i = range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return regions[order[a]].Start < regions[order[b]].Start })

	for i = 1; i < len(order); i++ {
		prev, cur := regions[order[i-1]], regions[order[i]]
		if cur.Start < prev.End {
			return fmt.Errorf("regions %q and %q: %w", prev.Label, cur.Label, ErrRegionOverlap)
		}
	}

	return nil
}

// Constraints expands the region's known fragment into absolute
// (position, expected letter) pairs. Unconstrained regions yield nil.
//
// Complexity: O(Len).
func (r Region) Constraints() []Constraint {
	if r.KnownFragment == "" {
		return nil
	}
	out := make([]Constraint, 0, len(r.KnownFragment))
	var i int
	for i = 0; i < len(r.KnownFragment); i++ {
		out = append(out, Constraint{Position: r.Start + i, Expected: r.KnownFragment[i]})
	}

	return out
}
