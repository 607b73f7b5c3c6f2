package core

import "fmt"

// alphabetSize is the modulus of all letter arithmetic in this library.
const alphabetSize = 26

// Ciphertext is an immutable, validated sequence of uppercase letters.
// The zero value is empty and unusable; construct via NewCiphertext.
type Ciphertext struct {
	s string
}

// NewCiphertext validates s and wraps it as an immutable Ciphertext.
//
// Contracts:
//   - s must be non-empty (ErrEmptyCiphertext).
//   - every byte of s must be in 'A'..'Z' (ErrNonAlphabetic).
//
// Complexity: O(len(s)).
func NewCiphertext(s string) (Ciphertext, error) {
	if len(s) == 0 {
		return Ciphertext{}, ErrEmptyCiphertext
	}
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return Ciphertext{}, fmt.Errorf("position %d (%q): %w", i, s[i], ErrNonAlphabetic)
		}
	}

	return Ciphertext{s: s}, nil
}

// String returns the underlying letter sequence.
func (c Ciphertext) String() string { return c.s }

// Len returns the number of letters.
func (c Ciphertext) Len() int { return len(c.s) }

// At returns the letter at absolute position i. The caller is responsible
// for range checks (regions are validated before use).
func (c Ciphertext) At(i int) byte { return c.s[i] }

// Slice returns the letters covered by region r. The region must already be
// validated against this ciphertext.
func (c Ciphertext) Slice(r Region) string { return c.s[r.Start:r.End] }

// LetterIndex maps 'A'..'Z' to 0..25.
func LetterIndex(b byte) int { return int(b - 'A') }

// IndexLetter maps any integer to a letter by reducing it mod 26 first,
// so negative offset arithmetic lands on the expected letter.
func IndexLetter(n int) byte { return byte(Mod26(n)) + 'A' }

// Mod26 reduces n into [0,25]. Unlike the built-in % operator it is total
// on negative inputs.
func Mod26(n int) int {
	n %= alphabetSize
	if n < 0 {
		n += alphabetSize
	}

	return n
}
