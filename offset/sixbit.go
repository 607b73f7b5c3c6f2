package offset

// CDC 6600 display code for the letters: a closed historical 6-bit encoding
// with A=0o41 through Z=0o72. Only the alphabet rows of the table are
// carried; the cipher alphabet never leaves A–Z.
const (
	codeA    = 0o41 // 'A' → 33; letters are consecutive through 'Z' → 58
	codeMask = 0x3F // all values stay within 6 bits
)

// sixbit returns the display code for an ASCII letter, accepting either
// case, with ok=false for anything outside A–Z.
func sixbit(b byte) (int, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return codeA + int(b-'A'), true
	case b >= 'a' && b <= 'z':
		return codeA + int(b-'a'), true
	default:
		return 0, false
	}
}

// rotl6 rotates a 6-bit value left by r (1..5), keeping the result within
// the 6-bit mask.
func rotl6(v, r int) int {
	return ((v << r) | (v >> (6 - r))) & codeMask
}
