package config

import (
	"errors"

	"github.com/kryptolab/polygraph/core"
)

var (
	// ErrBadMatrix - a matrix entry does not hold exactly four integers.
	ErrBadMatrix = errors.New("config: matrix needs exactly four entries")

	// ErrBadMix - a mix field is neither "add" nor "xor".
	ErrBadMix = errors.New("config: unknown mix mode")
)

// Sweep is the YAML shape of a sweep definition file.
type Sweep struct {
	// Ciphertext defaults to the sculpture's fourth passage.
	Ciphertext string `yaml:"ciphertext"`

	// Regions defaults to the three sculpture clue regions.
	Regions []RegionDef `yaml:"regions"`

	Words    []string    `yaml:"words"`
	Matrices [][]int     `yaml:"matrices"` // row-major: [a, b, c, d]
	Configs  []ConfigDef `yaml:"configs"`

	Search SearchDef `yaml:"search"`
}

// RegionDef declares one ciphertext region; End is exclusive.
type RegionDef struct {
	Label    string `yaml:"label"`
	Start    int    `yaml:"start"`
	End      int    `yaml:"end"`
	Fragment string `yaml:"fragment"`
}

// ConfigDef declares one offset configuration. Zero-valued numeric fields
// fall back to the defaults; PosOffset is a pointer because zero is a
// meaningful value for it.
type ConfigDef struct {
	Name string `yaml:"name"`

	Rotation         int    `yaml:"rotation"`
	Multiplier       int    `yaml:"multiplier"`
	ModBase          int    `yaml:"mod_base"`
	PosPrime         int    `yaml:"pos_prime"`
	PosMod           int    `yaml:"pos_mod"`
	PosOffset        *int   `yaml:"pos_offset"`
	CipherPrime      int    `yaml:"cipher_prime"`
	CipherMultiplier int    `yaml:"cipher_multiplier"`
	Mix              string `yaml:"mix"` // "add" (default) or "xor"
	OutputRange      int    `yaml:"output_range"`

	// Adjust maps region-relative positions to additive corrections
	// layered on top of the generated offsets.
	Adjust map[int]int `yaml:"adjust"`

	// Mask lists the region-relative positions corrections apply to.
	// Absent means every position; present but empty means none.
	Mask []int `yaml:"mask"`
}

// SearchDef tunes the sweep; zero values fall back to the defaults.
type SearchDef struct {
	MaxCombinations int      `yaml:"max_combinations"`
	TopK            int      `yaml:"top_k"`
	Workers         int      `yaml:"workers"`
	Lexicon         []string `yaml:"lexicon"`
}

// DefaultSweep returns a sweep over the sculpture ciphertext and its clue
// regions, with no combination axes filled in.
func DefaultSweep() *Sweep {
	s := &Sweep{Ciphertext: core.SculptureK4}
	for _, r := range core.SculptureRegions() {
		s.Regions = append(s.Regions, RegionDef{
			Label:    r.Label,
			Start:    r.Start,
			End:      r.End,
			Fragment: r.KnownFragment,
		})
	}
	return s
}
