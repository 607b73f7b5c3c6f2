// Package polygraph is a toolkit for parameterized Hill-cipher decryption
// of the Kryptos fourth passage — from modular matrix primitives to full
// combination sweeps ranked against the confirmed clue fragments.
//
// 🚀 What is polygraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: the sculpture ciphertext, region addressing,
//		  fragment constraints
//		• modmat: 2×2 matrix algebra over ℤ/26ℤ with invertibility checks
//		• offset: the rotate-multiply word hash and its signed corrective
//		  overlay
//		• pipeline: two-stage region decryption with masked corrections
//		• score: frequency, n-gram and lexicon scoring of candidates
//		• search: concurrent, reproducible sweeps over the
//		  word × matrix × config space
//
// Each concern lives in its own package with explicit error contracts;
// the cmd/polygraph binary wires them behind a sweep-file CLI.
//
// Start with pipeline.DecryptRegion for a single decryption, or
// search.Search for the whole combination space.
package polygraph
