// Package pipeline turns a (region, key matrix, correction table) triple
// into candidate plaintext and checks it against known fragments.
//
// Decryption is staged exactly like the historical three-stage system:
//
//  1. Hill stage — split the region's ciphertext into 2-letter blocks and
//     multiply each by the key's modular inverse (modmat.Mat2). A trailing
//     odd letter passes through unchanged.
//  2. Correction stage — for every output position selected by the position
//     mask, add the signed correction offsets[i] mod 26 and re-map to a
//     letter. The mask is explicit configuration: empirically only a subset
//     of positions needs correcting, and which subset is a finding, not a
//     constant buried in code.
//
// Validation compares candidate plaintext to a region's known fragment
// letter by letter. A mismatch fails the candidate but the matched
// positions are still reported, because partial agreement feeds the
// ranking when constraints are only partially known. The self-encryption
// property is just a one-letter fragment flowing through the same path.
//
// Failure policy: a non-invertible key surfaces modmat.ErrNotInvertible so
// the sweep can skip the combination; nothing in this package aborts a
// sweep on its own.
package pipeline
