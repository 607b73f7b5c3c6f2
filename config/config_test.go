package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptolab/polygraph/config"
	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
)

const sweepYAML = `
words: [KRYPTOS, BERLIN]
matrices:
  - [25, 10, 16, 15]
  - [13, 19, 3, 2]
configs:
  - name: xor-wide
    mix: xor
    output_range: 40
    adjust: {4: -13, 5: -4}
    mask: [4, 5]
search:
  max_combinations: 500
  top_k: 5
  workers: 2
  lexicon: [BERLIN, CLOCK]
`

// TestParse_FillsDefaults checks that an axes-only file inherits the
// sculpture ciphertext and regions.
func TestParse_FillsDefaults(t *testing.T) {
	s, err := config.Parse([]byte(sweepYAML))
	require.NoError(t, err)

	assert.Equal(t, core.SculptureK4, s.Ciphertext)
	require.Len(t, s.Regions, 3)
	assert.Equal(t, "BERLIN", s.Regions[1].Fragment)
	assert.Equal(t, []string{"KRYPTOS", "BERLIN"}, s.Words)
}

// TestBuild_Translation checks the YAML-to-domain translation end to end.
func TestBuild_Translation(t *testing.T) {
	s, err := config.Parse([]byte(sweepYAML))
	require.NoError(t, err)

	in, opts, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 97, in.Ciphertext.Len())
	require.Len(t, in.Matrices, 2)
	assert.Equal(t, modmat.New(25, 10, 16, 15), in.Matrices[0])

	require.Len(t, in.Configs, 1)
	cfg := in.Configs[0]
	assert.Equal(t, "xor-wide", cfg.Name)
	assert.Equal(t, offset.MixXor, cfg.Params.Mix)
	assert.Equal(t, 40, cfg.Params.OutputRange)
	// Untouched fields keep their defaults.
	assert.Equal(t, offset.DefaultParams().Multiplier, cfg.Params.Multiplier)
	assert.Equal(t, map[int]int{4: -13, 5: -4}, cfg.Params.Adjust)
	assert.True(t, cfg.Mask.Applies(4))
	assert.False(t, cfg.Mask.Applies(0))

	assert.Equal(t, 500, opts.MaxCombinations)
	assert.Equal(t, 5, opts.TopK)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, []string{"BERLIN", "CLOCK"}, opts.Lexicon)
}

// TestBuild_EmptyConfigsGetDefault gives config-less sweeps the default
// parameter set over every position.
func TestBuild_EmptyConfigsGetDefault(t *testing.T) {
	s, err := config.Parse([]byte("words: [KRYPTOS]\nmatrices:\n  - [1, 0, 0, 1]\n"))
	require.NoError(t, err)

	in, _, err := s.Build()
	require.NoError(t, err)
	require.Len(t, in.Configs, 1)
	assert.Equal(t, "default", in.Configs[0].Name)
	assert.Equal(t, offset.DefaultParams(), in.Configs[0].Params)
	assert.Nil(t, in.Configs[0].Mask)
}

// TestBuild_ZeroPosOffset distinguishes an explicit zero from an omitted
// field.
func TestBuild_ZeroPosOffset(t *testing.T) {
	s, err := config.Parse([]byte(`
words: [A]
matrices: [[1, 0, 0, 1]]
configs:
  - name: shifted
    pos_offset: 0
`))
	require.NoError(t, err)
	in, _, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, in.Configs[0].Params.PosOffset)
}

// TestParse_UnknownKeyRejected fails on typoed keys instead of silently
// dropping them.
func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := config.Parse([]byte("wordz: [KRYPTOS]\n"))
	assert.Error(t, err)
}

// TestParse_EmptyFileIsDefaults treats an empty file as DefaultSweep.
func TestParse_EmptyFileIsDefaults(t *testing.T) {
	s, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, core.SculptureK4, s.Ciphertext)
}

// TestBuild_Errors covers the structural failure paths.
func TestBuild_Errors(t *testing.T) {
	t.Run("short matrix", func(t *testing.T) {
		s, err := config.Parse([]byte("matrices: [[1, 2, 3]]\n"))
		require.NoError(t, err)
		_, _, err = s.Build()
		assert.ErrorIs(t, err, config.ErrBadMatrix)
	})
	t.Run("bad mix", func(t *testing.T) {
		s, err := config.Parse([]byte("configs:\n  - name: x\n    mix: mul\n"))
		require.NoError(t, err)
		_, _, err = s.Build()
		assert.ErrorIs(t, err, config.ErrBadMix)
	})
	t.Run("bad params", func(t *testing.T) {
		s, err := config.Parse([]byte("configs:\n  - name: x\n    rotation: 9\n"))
		require.NoError(t, err)
		_, _, err = s.Build()
		assert.ErrorIs(t, err, offset.ErrBadParams)
	})
	t.Run("bad ciphertext", func(t *testing.T) {
		s, err := config.Parse([]byte("ciphertext: \"OBKR?\"\n"))
		require.NoError(t, err)
		_, _, err = s.Build()
		assert.ErrorIs(t, err, core.ErrNonAlphabetic)
	})
}

// TestLoad_File round-trips a sweep through the filesystem.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sweepYAML), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"KRYPTOS", "BERLIN"}, s.Words)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
