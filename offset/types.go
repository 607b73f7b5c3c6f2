// Package offset: sentinel errors, the mixing-mode enum and Params.
package offset

import "errors"

var (
	// ErrUnknownMixMode indicates a Params.Mix value outside the closed enum.
	ErrUnknownMixMode = errors.New("offset: unknown mix mode")

	// ErrBadParams indicates a Params field outside its documented domain
	// (rotation, moduli, output range).
	ErrBadParams = errors.New("offset: parameter outside valid domain")

	// ErrUnencodable indicates an input-word or ciphertext character with no
	// entry in the 6-bit code table.
	ErrUnencodable = errors.New("offset: character has no 6-bit encoding")

	// ErrEmptyWord indicates an empty input word.
	ErrEmptyWord = errors.New("offset: input word is empty")
)

// Mix selects how the word hash, position factor and cipher factor are
// combined. The enum is closed: anything else fails validation up front.
type Mix int

const (
	// MixAdd combines the three factors by integer addition.
	MixAdd Mix = iota

	// MixXor combines the three factors by bitwise XOR.
	MixXor
)

// String returns the configuration-file spelling of the mode.
func (m Mix) String() string {
	switch m {
	case MixAdd:
		return "add"
	case MixXor:
		return "xor"
	default:
		return "unknown"
	}
}

// Params is the complete, closed configuration of the correction generator.
// A Params value is resolved and validated once at sweep start and treated
// as immutable afterwards.
type Params struct {
	Rotation         int // left bit-rotation within 6 bits, 1..5
	Multiplier       int // odd mixing constant for the word hash, > 0
	ModBase          int // modulus for hash and cipher factors, > 0
	PosPrime         int // prime multiplier for the position factor, > 0
	PosMod           int // modulus for the position factor, > 0
	PosOffset        int // constant added to the position before mixing, ≥ 0
	CipherPrime      int // prime multiplier for the cipher-letter factor, > 0
	CipherMultiplier int // secondary cipher-letter multiplier, > 0
	Mix              Mix // how the three factors combine
	OutputRange      int // width of the signed output range, > 0

	// Adjust holds optional per-position corrections layered on the base
	// hash output, keyed by regional position. It captures the
	// position-specific fine-tuning the base mixing scheme cannot express.
	// A nil map means no adjustments.
	Adjust map[int]int
}

// DefaultParams returns the parameter set validated against the documented
// region offsets of the historical puzzle (rotation 1, multiplier 127,
// additive mix, signed range [−15,14]).
func DefaultParams() Params {
	return Params{
		Rotation:         1,
		Multiplier:       127,
		ModBase:          255,
		PosPrime:         1019,
		PosMod:           2311,
		PosOffset:        1,
		CipherPrime:      149,
		CipherMultiplier: 2,
		Mix:              MixAdd,
		OutputRange:      30,
	}
}

// Validate checks every field against its documented domain.
//
// Errors: ErrBadParams for numeric fields, ErrUnknownMixMode for the enum.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.Rotation < 1 || p.Rotation > 5 {
		return ErrBadParams
	}
	if p.Multiplier <= 0 || p.ModBase <= 0 || p.PosPrime <= 0 || p.PosMod <= 0 {
		return ErrBadParams
	}
	if p.CipherPrime <= 0 || p.CipherMultiplier <= 0 || p.OutputRange <= 0 {
		return ErrBadParams
	}
	if p.PosOffset < 0 {
		return ErrBadParams
	}
	switch p.Mix {
	case MixAdd, MixXor:
	default:
		return ErrUnknownMixMode
	}

	return nil
}
