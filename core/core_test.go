package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptolab/polygraph/core"
)

// TestNewCiphertext_Valid verifies that a clean uppercase string round-trips
// through the constructor unchanged.
func TestNewCiphertext_Valid(t *testing.T) {
	ct, err := core.NewCiphertext("OBKRUOXOGH")
	require.NoError(t, err)
	assert.Equal(t, "OBKRUOXOGH", ct.String())
	assert.Equal(t, 10, ct.Len())
	assert.Equal(t, byte('B'), ct.At(1))
}

// TestNewCiphertext_Empty verifies the empty-input sentinel.
func TestNewCiphertext_Empty(t *testing.T) {
	_, err := core.NewCiphertext("")
	assert.ErrorIs(t, err, core.ErrEmptyCiphertext)
}

// TestNewCiphertext_NonAlphabetic rejects lowercase, digits and punctuation.
func TestNewCiphertext_NonAlphabetic(t *testing.T) {
	for _, s := range []string{"OBKr", "OB2R", "OB R", "OB?R"} {
		_, err := core.NewCiphertext(s)
		assert.ErrorIs(t, err, core.ErrNonAlphabetic, "input %q must be rejected", s)
	}
}

// TestCiphertext_Slice extracts the documented BERLIN segment from the
// sculpture ciphertext.
func TestCiphertext_Slice(t *testing.T) {
	ct, err := core.NewCiphertext(core.SculptureK4)
	require.NoError(t, err)
	assert.Equal(t, "NYPVTT", ct.Slice(core.Region{Start: 63, End: 69}))
	assert.Equal(t, "MZFPK", ct.Slice(core.Region{Start: 69, End: 74}))
	assert.Equal(t, "FLRVQQPRNGKSS", ct.Slice(core.Region{Start: 21, End: 34}))
}

// TestMod26_Negative verifies the total mod reduction on negative inputs.
func TestMod26_Negative(t *testing.T) {
	assert.Equal(t, 25, core.Mod26(-1))
	assert.Equal(t, 0, core.Mod26(-26))
	assert.Equal(t, 13, core.Mod26(-13))
	assert.Equal(t, 3, core.Mod26(29))
}

// TestIndexLetter_SignedOffsets checks that letter re-mapping accepts the
// signed corrections produced by the offset generator.
func TestIndexLetter_SignedOffsets(t *testing.T) {
	// V(21) corrected by -13 lands on I(8).
	assert.Equal(t, byte('I'), core.IndexLetter(core.LetterIndex('V')-13))
	// R(17) corrected by -4 lands on N(13).
	assert.Equal(t, byte('N'), core.IndexLetter(core.LetterIndex('R')-4))
}

// TestRegionValidate_Bounds rejects inverted, negative and out-of-range
// region windows.
func TestRegionValidate_Bounds(t *testing.T) {
	cases := []core.Region{
		{Start: -1, End: 4},
		{Start: 4, End: 4},
		{Start: 6, End: 2},
		{Start: 90, End: 120},
	}
	for _, r := range cases {
		assert.ErrorIs(t, r.Validate(97), core.ErrRegionBounds, "region [%d,%d)", r.Start, r.End)
	}
}

// TestRegionValidate_Fragment enforces fragment length and alphabet.
func TestRegionValidate_Fragment(t *testing.T) {
	r := core.Region{Start: 63, End: 69, Label: "BERLIN", KnownFragment: "BERL"}
	assert.ErrorIs(t, r.Validate(97), core.ErrFragmentLength)

	r.KnownFragment = "BERLiN"
	assert.ErrorIs(t, r.Validate(97), core.ErrNonAlphabetic)

	r.KnownFragment = "BERLIN"
	assert.NoError(t, r.Validate(97))
}

// TestValidateRegions_Overlap detects shared positions regardless of the
// order regions are listed in.
func TestValidateRegions_Overlap(t *testing.T) {
	regions := []core.Region{
		{Start: 69, End: 74, Label: "CLOCK"},
		{Start: 63, End: 70, Label: "BERLIN"}, // spills one position into CLOCK
	}
	assert.ErrorIs(t, core.ValidateRegions(regions, 97), core.ErrRegionOverlap)

	regions[1].End = 69 // adjacent, no overlap
	assert.NoError(t, core.ValidateRegions(regions, 97))
}

// TestRegionConstraints expands a fragment into absolute positions.
func TestRegionConstraints(t *testing.T) {
	r := core.Region{Start: 69, End: 74, Label: "CLOCK", KnownFragment: "CLOCK"}
	cs := r.Constraints()
	require.Len(t, cs, 5)
	assert.Equal(t, core.Constraint{Position: 69, Expected: 'C'}, cs[0])
	assert.Equal(t, core.Constraint{Position: 73, Expected: 'K'}, cs[4])

	assert.Nil(t, core.Region{Start: 0, End: 4}.Constraints())
}

// TestSculptureFixtures sanity-checks the shipped puzzle constants against
// each other.
func TestSculptureFixtures(t *testing.T) {
	ct, err := core.NewCiphertext(core.SculptureK4)
	require.NoError(t, err)
	assert.Equal(t, 97, ct.Len())
	assert.NoError(t, core.ValidateRegions(core.SculptureRegions(), ct.Len()))
	assert.Equal(t, byte('K'), ct.At(core.SelfEncryptPosition))
}
