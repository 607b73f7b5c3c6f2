package search

import (
	"errors"

	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
	"github.com/kryptolab/polygraph/pipeline"
)

var (
	// ErrEmptyInput - a sweep input list (words, matrices, configs or
	// regions) is empty.
	ErrEmptyInput = errors.New("search: sweep input list is empty")

	// ErrBadWord - a candidate word contains a character outside A-Z/a-z.
	ErrBadWord = errors.New("search: candidate word is not alphabetic")

	// ErrBadOptions - an Options field is outside its allowed domain.
	ErrBadOptions = errors.New("search: options out of range")
)

// OffsetConfig couples a named offset parameter set with the correction
// mask the pipeline applies under it. An empty Name is allowed; ranking
// falls back to enumeration order for ties either way.
type OffsetConfig struct {
	Name   string
	Params offset.Params
	Mask   pipeline.Mask
}

// Input is the immutable sweep domain: one ciphertext, its regions, and
// the three axes of the combination space.
type Input struct {
	Ciphertext core.Ciphertext
	Regions    []core.Region
	Words      []string
	Matrices   []modmat.Mat2
	Configs    []OffsetConfig
}

// Options tunes the sweep without changing its outcome: the ranked result
// is identical for any Workers value.
type Options struct {
	// MaxCombinations caps the number of (word, matrix, config) triples
	// evaluated. Must be positive.
	MaxCombinations int

	// TopK bounds the ranked candidate list. Must be positive.
	TopK int

	// Workers sizes the evaluation pool. Must be positive.
	Workers int

	// Lexicon holds optional expected terms; candidates containing one
	// score a fixed bonus per term. May be empty.
	Lexicon []string
}

// DefaultOptions returns the standard sweep tuning.
//
// Defaults: MaxCombinations=100000, TopK=20, Workers=4.
func DefaultOptions() Options {
	return Options{
		MaxCombinations: 100_000,
		TopK:            20,
		Workers:         4,
	}
}

// validate reports ErrBadOptions unless every tunable is positive.
func (o Options) validate() error {
	if o.MaxCombinations <= 0 || o.TopK <= 0 || o.Workers <= 0 {
		return ErrBadOptions
	}
	return nil
}

// Candidate is one region's outcome under one (word, matrix, config)
// combination.
type Candidate struct {
	RegionLabel string
	Word        string
	Matrix      modmat.Mat2
	ConfigName  string
	Offsets     []int
	Plaintext   string
	Pass        bool  // this region's known fragment reproduced
	Matched     []int // region-relative positions matching the fragment
	Score       float64

	// CombinedPass mirrors Combined.Pass for the candidate's combination,
	// so perfect combinations rank above every partial one.
	CombinedPass bool

	combo     int // enumeration index, total tie-break
	regionIdx int
}

// Combined aggregates one combination across all regions.
type Combined struct {
	Word       string
	Matrix     modmat.Mat2
	ConfigName string

	// Pass is true when at least one region carries a known fragment and
	// every such region reproduced it exactly.
	Pass    bool
	Matched int // total matched fragment positions across regions
	Score   float64

	Plaintexts []RegionPlaintext // in region order

	combo int
}

// RegionPlaintext pairs a region label with its decrypted text.
type RegionPlaintext struct {
	Label     string
	Plaintext string
}

// Result is a completed sweep.
type Result struct {
	// Ranked is the bounded candidate list, best first. On a perfect sweep
	// it holds exactly the definitive combination's candidates.
	Ranked []Candidate

	// Best is the highest-ranked combination, nil only when every
	// combination was skipped.
	Best *Combined

	// Perfect is true when a combination passed every constrained region
	// and the sweep terminated early on it.
	Perfect bool

	Evaluated int // combinations processed, skips included
	Skipped   int // combinations skipped on a non-invertible matrix
}
