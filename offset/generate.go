package offset

import (
	"fmt"

	"github.com/kryptolab/polygraph/core"
)

// Generate computes the signed correction for a single position.
//
// Contracts:
//   - p must already satisfy p.Validate(); Generate re-checks only the mix
//     mode (the one branch it dispatches on).
//   - word must be non-empty and consist of A–Z letters (either case).
//   - position must be ≥ 0 (regional indices are never negative).
//   - cipherChar must be an A–Z letter.
//   - Output lies in [−OutputRange/2, OutputRange−OutputRange/2) plus any
//     per-position adjustment; the sign is meaningful and never clamped.
//
// Complexity: O(len(word)).
func Generate(p Params, word string, position int, cipherChar byte) (int, error) {
	wh, err := wordHash(p, word)
	if err != nil {
		return 0, err
	}

	return combine(p, wh, position, cipherChar)
}

// Table generates one correction per position of the region, feeding each
// regional index and its ciphertext letter through the same mixing scheme
// as Generate. The table is recomputed functionally on every call — there
// is no shared state to mutate between iterations.
//
// Contracts:
//   - region must be validated against ct beforehand.
//
// Complexity: O(len(word) + region length); the word hash is computed once.
func Table(p Params, word string, region core.Region, ct core.Ciphertext) ([]int, error) {
	wh, err := wordHash(p, word)
	if err != nil {
		return nil, err
	}

	out := make([]int, region.Len())
	var (
		i int // regional position
		v int // correction for position i
	)
	for i = 0; i < region.Len(); i++ {
		v, err = combine(p, wh, i, ct.At(region.Start+i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// wordHash folds the 6-bit codes of the input word into a single hash:
// rotate left, multiply mod ModBase, XOR-accumulate.
func wordHash(p Params, word string) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}
	var (
		hash int // running XOR accumulator
		code int // 6-bit code of the current letter
		ok   bool
		i    int
	)
	for i = 0; i < len(word); i++ {
		code, ok = sixbit(word[i])
		if !ok {
			return 0, fmt.Errorf("word %q position %d: %w", word, i, ErrUnencodable)
		}
		hash ^= (rotl6(code, p.Rotation) * p.Multiplier) % p.ModBase
	}

	return hash, nil
}

// combine mixes a precomputed word hash with the position and cipher-letter
// factors and folds the result into the signed output range.
func combine(p Params, wh, position int, cipherChar byte) (int, error) {
	cipherCode, ok := sixbit(cipherChar)
	if !ok {
		return 0, fmt.Errorf("cipher character %q: %w", cipherChar, ErrUnencodable)
	}

	pf := ((position + p.PosOffset) * p.PosPrime) % p.PosMod
	cf := (cipherCode * p.CipherPrime * p.CipherMultiplier) % p.ModBase

	var combined int
	switch p.Mix {
	case MixAdd:
		combined = wh + pf + cf
	case MixXor:
		combined = wh ^ pf ^ cf
	default:
		return 0, ErrUnknownMixMode
	}

	// Fold into the signed range. combined is non-negative here (all three
	// factors are), so the % result needs no normalization.
	base := (combined % p.OutputRange) - p.OutputRange/2

	return base + p.Adjust[position], nil
}
