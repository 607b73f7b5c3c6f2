package score

import "strings"

// Component weights. Fixed by design: weightTrigram + 2·weightBigram must
// stay ≥ weightVowel + weightChi so that appending a recognized trigram
// never lowers the total.
const (
	weightVowel   = 0.15 // vowel-band component, bounded [0, weightVowel]
	weightChi     = 0.25 // frequency component, bounded [0, weightChi]
	weightBigram  = 0.05 // per bigram occurrence, unbounded
	weightTrigram = 0.30 // per trigram occurrence, unbounded

	// English prose tends to keep its vowel ratio inside this band.
	vowelBandLow  = 0.35
	vowelBandHigh = 0.45

	// vowelFalloff is the slope of the linear penalty outside the band:
	// the component reaches zero 0.25 away from the nearer edge.
	vowelFalloff = 4.0
)

// Score computes the English-likeness of a candidate plaintext.
//
// Contracts:
//   - Never fails: empty strings or strings without letters return 0.
//   - Pure: identical input, identical output; no state across calls.
//   - Appending a reference trigram never decreases the result.
//
// Complexity: O(len(s) · number of reference n-grams).
func Score(s string) float64 {
	counts, letters := tally(s)
	if letters == 0 {
		return 0
	}

	total := weightVowel * vowelComponent(counts, letters)
	total += weightChi * chiComponent(counts, letters)
	total += weightBigram * float64(countHits(s, refBigrams))
	total += weightTrigram * float64(countHits(s, refTrigrams))

	return total
}

// ScoreLexicon extends Score with a flat bonus per lexicon term found as a
// substring, for callers with domain vocabularies (place names, tradecraft
// terms). The bonus weight mirrors the trigram weight: a domain word is at
// least as strong a signal as a common trigram.
func ScoreLexicon(s string, lexicon []string) float64 {
	total := Score(s)
	var term string
	for _, term = range lexicon {
		if term != "" && strings.Contains(s, term) {
			total += weightTrigram
		}
	}

	return total
}

// tally counts the A–Z letters of s. Bytes outside the alphabet are
// ignored rather than rejected: the scorer is total by contract.
func tally(s string) (counts [26]int, letters int) {
	var i int
	for i = 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			counts[s[i]-'A']++
			letters++
		}
	}

	return counts, letters
}

// vowelComponent maps the vowel ratio to [0,1]: 1 inside the reference
// band, falling off linearly outside it.
func vowelComponent(counts [26]int, letters int) float64 {
	var vowels int
	for v := 0; v < 26; v++ {
		if isVowel(v) {
			vowels += counts[v]
		}
	}
	ratio := float64(vowels) / float64(letters)

	var dist float64
	switch {
	case ratio < vowelBandLow:
		dist = vowelBandLow - ratio
	case ratio > vowelBandHigh:
		dist = ratio - vowelBandHigh
	default:
		return 1
	}
	if c := 1 - dist*vowelFalloff; c > 0 {
		return c
	}

	return 0
}

// chiComponent maps the per-letter chi-square distance from the English
// reference distribution to (0,1]: identical distributions approach 1,
// growing distance decays toward 0.
func chiComponent(counts [26]int, letters int) float64 {
	var (
		chi float64 // running χ² accumulator
		exp float64 // expected count of the current letter
		d   float64 // observed − expected
		v   int
	)
	for v = 0; v < 26; v++ {
		exp = englishFreq[v] * float64(letters)
		if exp == 0 {
			continue
		}
		d = float64(counts[v]) - exp
		chi += d * d / exp
	}

	// Normalize by length so the component is scale-free, then squash.
	return 1 / (1 + chi/float64(letters))
}

// countHits counts every sliding-window occurrence of the reference
// n-grams in s. Occurrences may overlap; extending s never removes a hit.
func countHits(s string, grams []string) int {
	var (
		hits int
		g    string
		i    int
	)
	for _, g = range grams {
		for i = 0; i+len(g) <= len(s); i++ {
			if s[i:i+len(g)] == g {
				hits++
			}
		}
	}

	return hits
}
