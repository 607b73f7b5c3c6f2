package score

// Reference data for English-likeness scoring. The tables are fixed: the
// scorer's behavior must not drift between iterations of a sweep.

// englishFreq is the relative frequency of each letter A..Z in English
// prose, indexed by letter value (A=0). Values sum to ~1.
var englishFreq = [26]float64{
	0.0817, 0.0150, 0.0278, 0.0425, 0.1270, // A–E
	0.0223, 0.0202, 0.0609, 0.0697, 0.0015, // F–J
	0.0077, 0.0403, 0.0241, 0.0675, 0.0751, // K–O
	0.0193, 0.0010, 0.0599, 0.0633, 0.0906, // P–T
	0.0276, 0.0098, 0.0236, 0.0015, 0.0197, // U–Y
	0.0007, // Z
}

// refBigrams are the highest-frequency English bigrams used for hit
// counting.
var refBigrams = []string{
	"TH", "HE", "IN", "ER", "AN", "RE", "ED", "ND", "ON", "EN",
}

// refTrigrams are the highest-frequency English trigrams used for hit
// counting.
var refTrigrams = []string{
	"THE", "AND", "ING", "HER", "HAT", "HIS", "THA", "ERE", "FOR", "ENT",
}

// isVowel reports whether the letter value v (A=0) is one of AEIOU.
func isVowel(v int) bool {
	switch v {
	case 0, 4, 8, 14, 20:
		return true
	default:
		return false
	}
}
