// Package search sweeps combinations of candidate input words, key
// matrices and offset configurations over a region list, ranking the
// resulting candidate plaintexts.
//
// The sweep enumerates the Cartesian product word × matrix × config up to
// an explicit MaxCombinations cap (termination is never open-ended). Each
// combination decrypts every region through the pipeline, validates known
// fragments and scores the plaintexts; the per-region candidates feed a
// bounded top-K ranking.
//
// Concurrency model:
//
//   - A producer issues combination indices over a channel; a pool of
//     errgroup-managed workers evaluates them independently. Evaluation is
//     pure CPU work over immutable inputs — the only shared state is the
//     final reduction.
//   - Ranking is a commutative top-K reduction with a total ordering
//     (pass, score, match count, word, enumeration index), so the final
//     list does not depend on worker completion order or worker count.
//   - Early exit: the first combination (in enumeration order) whose
//     constrained regions all pass records itself as the definitive result;
//     the producer stops issuing work and workers skip later indices
//     cooperatively, between combinations. A perfect sweep reports exactly
//     the definitive combination.
//
// Failure policy: malformed input (ciphertext, regions, words, options)
// and invalid offset configurations fail fast before any work begins.
// Non-invertible matrices are skipped and counted per combination, never
// fatal.
//
// Matrix inverses are memoized in a small LRU cache shared by the worker
// pool: a sweep revisits the same few matrices once per combination.
package search
