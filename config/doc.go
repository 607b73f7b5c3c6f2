// Package config loads sweep definitions from YAML.
//
// A sweep file declares the ciphertext, the regions with their known
// fragments, and the three combination axes (candidate words, key
// matrices, offset configurations) plus search tuning. Omitted sections
// fall back to the sculpture defaults, so a minimal file needs only the
// words and matrices to try.
//
// Loading is fail-fast: unknown YAML keys, malformed matrices and unknown
// mix modes are rejected at load time, before any search work starts.
// Domain validation (region bounds, parameter ranges) happens once more
// inside the search itself; this package only guarantees the file was
// structurally sound.
package config
