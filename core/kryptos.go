package core

// Fixture data for the historical puzzle instance: the fourth, unsolved
// panel of the Kryptos sculpture. The library never depends on these; they
// feed the CLI defaults and the test suite.
const (
	// SculptureK4 is the 97-letter ciphertext of the fourth panel.
	SculptureK4 = "OBKRUOXOGHULBSOLIFBBWFLRVQQPRNGKSSOTWTQSJQSSEKZZWATJKLUDIAWINFBNYPVTTMZFPKWGDKZXTJCDIGKUHUAUEKCAR"

	// SelfEncryptPosition is the one ciphertext position publicly known to
	// decrypt to its own letter ('K', the trailing letter of CLOCK).
	SelfEncryptPosition = 73
)

// SculptureRegions returns the three publicly clued regions of the fourth
// panel with their known plaintext fragments:
//
//	positions 21..33  FLRVQQPRNGKSS → EASTNORTHEAST
//	positions 63..68  NYPVTT        → BERLIN
//	positions 69..73  MZFPK         → CLOCK (odd length; trailing K
//	                                  self-encrypts)
func SculptureRegions() []Region {
	return []Region{
		{Start: 21, End: 34, Label: "EASTNORTHEAST", KnownFragment: "EASTNORTHEAST"},
		{Start: 63, End: 69, Label: "BERLIN", KnownFragment: "BERLIN"},
		{Start: 69, End: 74, Label: "CLOCK", KnownFragment: "CLOCK"},
	}
}
