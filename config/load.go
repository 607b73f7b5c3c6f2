package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
	"github.com/kryptolab/polygraph/pipeline"
	"github.com/kryptolab/polygraph/search"
)

// Load reads a sweep definition from path. Sections absent from the file
// keep the DefaultSweep values; unknown keys are an error.
func Load(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a sweep definition from raw YAML.
func Parse(data []byte) (*Sweep, error) {
	s := DefaultSweep()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse sweep file: %w", err)
	}
	return s, nil
}

// Build converts the declaration into a validated search input and its
// options.
//
// Errors: core.ErrNonAlphabetic and core.ErrEmptyCiphertext for the
// ciphertext, ErrBadMatrix, ErrBadMix, offset.ErrBadParams wrapped with
// the config name. Region and word problems surface from search.Search.
func (s *Sweep) Build() (search.Input, search.Options, error) {
	var in search.Input

	ct, err := core.NewCiphertext(s.Ciphertext)
	if err != nil {
		return in, search.Options{}, err
	}
	in.Ciphertext = ct

	for _, r := range s.Regions {
		in.Regions = append(in.Regions, core.Region{
			Start:         r.Start,
			End:           r.End,
			Label:         r.Label,
			KnownFragment: r.Fragment,
		})
	}
	in.Words = s.Words

	for i, m := range s.Matrices {
		if len(m) != 4 {
			return in, search.Options{}, fmt.Errorf("matrix %d: %w", i, ErrBadMatrix)
		}
		in.Matrices = append(in.Matrices, modmat.New(m[0], m[1], m[2], m[3]))
	}

	for i, c := range s.Configs {
		oc, err := c.build()
		if err != nil {
			return in, search.Options{}, fmt.Errorf("config %d (%s): %w", i, c.Name, err)
		}
		in.Configs = append(in.Configs, oc)
	}
	if len(in.Configs) == 0 {
		// A sweep without explicit configs runs the default parameters over
		// every position.
		in.Configs = []search.OffsetConfig{{Name: "default", Params: offset.DefaultParams()}}
	}

	opts := search.DefaultOptions()
	if s.Search.MaxCombinations > 0 {
		opts.MaxCombinations = s.Search.MaxCombinations
	}
	if s.Search.TopK > 0 {
		opts.TopK = s.Search.TopK
	}
	if s.Search.Workers > 0 {
		opts.Workers = s.Search.Workers
	}
	opts.Lexicon = s.Search.Lexicon

	return in, opts, nil
}

// build assembles one offset configuration on top of the defaults.
func (c ConfigDef) build() (search.OffsetConfig, error) {
	p := offset.DefaultParams()
	if c.Rotation != 0 {
		p.Rotation = c.Rotation
	}
	if c.Multiplier != 0 {
		p.Multiplier = c.Multiplier
	}
	if c.ModBase != 0 {
		p.ModBase = c.ModBase
	}
	if c.PosPrime != 0 {
		p.PosPrime = c.PosPrime
	}
	if c.PosMod != 0 {
		p.PosMod = c.PosMod
	}
	if c.PosOffset != nil {
		p.PosOffset = *c.PosOffset
	}
	if c.CipherPrime != 0 {
		p.CipherPrime = c.CipherPrime
	}
	if c.CipherMultiplier != 0 {
		p.CipherMultiplier = c.CipherMultiplier
	}
	if c.OutputRange != 0 {
		p.OutputRange = c.OutputRange
	}
	switch c.Mix {
	case "", "add":
		p.Mix = offset.MixAdd
	case "xor":
		p.Mix = offset.MixXor
	default:
		return search.OffsetConfig{}, fmt.Errorf("%q: %w", c.Mix, ErrBadMix)
	}
	if len(c.Adjust) > 0 {
		p.Adjust = make(map[int]int, len(c.Adjust))
		for pos, v := range c.Adjust {
			p.Adjust[pos] = v
		}
	}
	if err := p.Validate(); err != nil {
		return search.OffsetConfig{}, err
	}

	var mask pipeline.Mask
	if c.Mask != nil {
		mask = make(pipeline.Mask, len(c.Mask))
		for _, pos := range c.Mask {
			mask[pos] = true
		}
	}
	return search.OffsetConfig{Name: c.Name, Params: p, Mask: mask}, nil
}
