package pipeline

import (
	"fmt"

	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
)

// DecryptRegion produces the candidate plaintext for one region.
//
// Stage 1 decrypts consecutive 2-letter blocks with the inverse of m; a
// trailing letter in an odd-length region is carried unmodified. Stage 2
// adds offsets[i] mod 26 at every masked position.
//
// Contracts:
//   - region must be validated against ct beforehand.
//   - len(offsets) must be ≥ region.Len() (ErrOffsetLength); extra entries
//     are ignored.
//   - m is checked for invertibility here, on every call — candidate
//     matrices come straight from sweep input and roughly half of them
//     share a factor with 26.
//
// Errors: modmat.ErrNotInvertible (recoverable, skip the combination),
// ErrOffsetLength (caller bug or malformed config).
//
// Complexity: O(region length).
func DecryptRegion(ct core.Ciphertext, region core.Region, m modmat.Mat2, offsets []int, mask Mask) (string, error) {
	inv, err := m.Inverse()
	if err != nil {
		return "", err
	}
	return DecryptRegionInverse(ct, region, inv, offsets, mask)
}

// DecryptRegionInverse is DecryptRegion with the inversion hoisted out:
// inv must already be the decryption matrix. Sweeps that memoize inverses
// across thousands of combinations call this directly.
func DecryptRegionInverse(ct core.Ciphertext, region core.Region, inv modmat.Mat2, offsets []int, mask Mask) (string, error) {
	if len(offsets) < region.Len() {
		return "", fmt.Errorf("region %q needs %d offsets, have %d: %w",
			region.Label, region.Len(), len(offsets), ErrOffsetLength)
	}

	out := make([]byte, region.Len())

	// Stage 1: Hill blocks. The inverse is applied directly; EncryptBlock on
	// the inverse matrix IS block decryption.
	var (
		i      int // in-region position of the block start
		p1, p2 int // decrypted letter values
	)
	for i = 0; i+1 < region.Len(); i += 2 {
		p1, p2 = inv.EncryptBlock(
			core.LetterIndex(ct.At(region.Start+i)),
			core.LetterIndex(ct.At(region.Start+i+1)),
		)
		out[i] = core.IndexLetter(p1)
		out[i+1] = core.IndexLetter(p2)
	}
	if region.Len()%2 == 1 {
		// Trailing odd letter passes through the Hill stage untouched.
		out[region.Len()-1] = ct.At(region.End - 1)
	}

	// Stage 2: signed corrections at masked positions.
	for i = 0; i < region.Len(); i++ {
		if !mask.Applies(i) {
			continue
		}
		out[i] = core.IndexLetter(core.LetterIndex(out[i]) + offsets[i])
	}

	return string(out), nil
}

// ZeroOffsets returns an all-zero correction table sized for region, for
// callers exercising the raw Hill stage.
func ZeroOffsets(region core.Region) []int {
	return make([]int, region.Len())
}
