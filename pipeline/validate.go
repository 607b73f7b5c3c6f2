package pipeline

import "github.com/kryptolab/polygraph/core"

// Validate compares candidate plaintext against the region's known
// fragment, letter by letter.
//
// Behavior:
//   - No fragment ⇒ vacuous pass, nil Matched.
//   - Any mismatch ⇒ Pass=false, but Matched still lists every agreeing
//     in-region position for partial-credit ranking.
//   - A plaintext shorter than the fragment fails; the comparison covers
//     the overlapping prefix only.
//
// The self-encryption constraint is expressed upstream as a one-letter
// fragment and needs no special handling here.
//
// Complexity: O(fragment length).
func Validate(region core.Region, plaintext string) ValidationResult {
	if region.KnownFragment == "" {
		return ValidationResult{Pass: true}
	}

	var (
		res = ValidationResult{Pass: len(plaintext) >= len(region.KnownFragment)}
		n   = len(region.KnownFragment)
		i   int
	)
	if len(plaintext) < n {
		n = len(plaintext)
	}
	for i = 0; i < n; i++ {
		if plaintext[i] == region.KnownFragment[i] {
			res.Matched = append(res.Matched, i)
			continue
		}
		res.Pass = false
	}

	return res
}
