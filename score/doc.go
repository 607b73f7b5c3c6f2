// Package score ranks candidate plaintexts by English-likeness.
//
// The score is a pure function of the string, combining three signals with
// fixed, documented weights (not tunable mid-sweep):
//
//   - vowel ratio: closeness to the 0.35–0.45 band typical of English prose
//     (weight 0.15, linear falloff outside the band);
//   - letter frequencies: chi-square distance from the fixed English
//     reference distribution, mapped through 1/(1+χ²/n) so lower distance
//     scores higher (weight 0.25);
//   - n-gram hits: every occurrence of a reference high-frequency bigram
//     adds 0.05 and every trigram occurrence adds 0.30, counted over all
//     sliding windows (occurrences may overlap).
//
// The weights are chosen so that appending a recognized trigram can never
// lower the total: the guaranteed n-gram gain (0.30 + 2·0.05) covers the
// worst-case movement of the two bounded components (0.15 + 0.25).
//
// The scorer never fails: empty or letterless input scores 0, and bytes
// outside A–Z are ignored. Scores are unbounded above; only relative order
// matters to the search.
package score
