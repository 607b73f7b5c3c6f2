// Package offset implements the deterministic position-dependent correction
// generator used on top of raw Hill-cipher output.
//
// The generator maps (input word, regional position, ciphertext letter) to a
// signed integer correction through a fixed mixing scheme over a 6-bit
// character encoding:
//
//  1. Encode every letter of the input word with the CDC 6600 display code
//     (a closed historical 6-bit table, A=0o41 … Z=0o72).
//  2. Rotate each code left within 6 bits, multiply by a fixed odd constant
//     modulo ModBase, and XOR-accumulate into a word hash.
//  3. Derive a position factor ((position+PosOffset)·PosPrime mod PosMod)
//     and a cipher-letter factor (code·CipherPrime·CipherMultiplier mod
//     ModBase).
//  4. Combine the three with the configured Mix operation (addition or XOR)
//     and fold into the signed range [−OutputRange/2, OutputRange/2).
//
// The function is pure and total: identical inputs always produce identical
// output, and there is no randomness anywhere. Outputs are SIGNED by
// construction — earlier exploratory variants that clamped corrections to
// positive values collapsed the sign information the pipeline needs, and
// that behavior is deliberately not reproducible here.
//
// Configuration is a closed Params struct resolved and validated once per
// sweep; there is no string-keyed variant dispatch at call time.
//
// Complexity: Generate is O(len(word)); Table is O(len(word) + region
// length) thanks to word-hash hoisting.
package offset
