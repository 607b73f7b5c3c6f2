// Package core provides the shared primitives of the polygraph library:
// the immutable Ciphertext, the Region addressing model, and the Constraint
// records derived from known plaintext fragments.
//
// 🚀 What lives here?
//
//	• Ciphertext — a validated, immutable uppercase A–Z sequence
//	• Region     — a contiguous ciphertext sub-range with an optional
//	  known plaintext fragment
//	• Constraint — a single (position, expected letter) requirement
//	• Letter arithmetic — A=0..Z=25 conversions and a total mod-26 helper
//
// Design rules:
//
//   - Ciphertext and Regions are loaded once and never mutated.
//   - All validation happens up front: malformed ciphertext or region lists
//     are rejected with sentinel errors before any cryptographic work begins.
//   - No logging, no panics on user input — only sentinel errors from
//     types.go, matched via errors.Is.
//
// The historical 97-letter sculpture instance ships as fixture constants
// (see kryptos.go); nothing in the algorithms depends on them.
package core
