package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
	"github.com/kryptolab/polygraph/pipeline"
	"github.com/kryptolab/polygraph/search"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// planted returns a sweep whose second matrix decrypts the planted
// ciphertext back to BERLIN with no corrections: NYPVSL is BERLIN
// encrypted under [[25,10],[16,15]]. The first matrix has det 18 and is
// skipped. The empty non-nil mask suppresses the generated offsets, so
// the Hill stage alone must reproduce the fragment.
func planted(t *testing.T) search.Input {
	t.Helper()
	ct, err := core.NewCiphertext("NYPVSL")
	require.NoError(t, err)
	return search.Input{
		Ciphertext: ct,
		Regions: []core.Region{
			{Start: 0, End: 6, Label: "PLANT", KnownFragment: "BERLIN"},
		},
		Words:    []string{"KRYPTOS"},
		Matrices: []modmat.Mat2{modmat.New(2, 4, 6, 8), modmat.New(25, 10, 16, 15)},
		Configs: []search.OffsetConfig{
			{Name: "bare", Params: offset.DefaultParams(), Mask: pipeline.Mask{}},
		},
	}
}

// open returns a sweep over an unconstrained region of the sculpture
// ciphertext: no fragment, so no combination can pass and the whole capped
// space is evaluated.
func open(t *testing.T) search.Input {
	t.Helper()
	ct, err := core.NewCiphertext(core.SculptureK4)
	require.NoError(t, err)
	xor := offset.DefaultParams()
	xor.Mix = offset.MixXor
	return search.Input{
		Ciphertext: ct,
		Regions: []core.Region{
			{Start: 63, End: 74, Label: "TAIL"},
		},
		Words: []string{"KRYPTOS", "PALIMPSEST", "ABSCISSA"},
		Matrices: []modmat.Mat2{
			modmat.New(13, 19, 3, 2),
			modmat.New(25, 10, 16, 15),
			modmat.New(2, 4, 6, 8), // det 18, skipped
			modmat.New(1, 0, 0, 1),
		},
		Configs: []search.OffsetConfig{
			{Name: "add", Params: offset.DefaultParams()},
			{Name: "xor", Params: xor},
		},
	}
}

// TestSearch_PerfectShortCircuits verifies the planted combination ends the
// sweep as the definitive result and later combinations are never counted.
func TestSearch_PerfectShortCircuits(t *testing.T) {
	in := planted(t)
	// Pad the word axis; everything after the perfect combination must be
	// ignored.
	in.Words = append(in.Words, "BERLIN", "CLOCK", "SHADOW", "LUCID")
	opts := search.DefaultOptions()
	opts.Workers = 3

	res, err := search.Search(context.Background(), in, opts)
	require.NoError(t, err)

	assert.True(t, res.Perfect)
	assert.Equal(t, 2, res.Evaluated) // skipped matrix, then the hit
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Ranked, 1)
	top := res.Ranked[0]
	assert.Equal(t, "BERLIN", top.Plaintext)
	assert.True(t, top.Pass)
	assert.True(t, top.CombinedPass)
	assert.Equal(t, "KRYPTOS", top.Word)
	assert.Equal(t, modmat.New(25, 10, 16, 15), top.Matrix)
	require.NotNil(t, res.Best)
	assert.True(t, res.Best.Pass)
	assert.Equal(t, 6, res.Best.Matched)
}

// TestSearch_PerfectStableAcrossWorkerCounts pins the definitive result to
// the enumeration order, not the pool size.
func TestSearch_PerfectStableAcrossWorkerCounts(t *testing.T) {
	var prev *search.Result
	for _, workers := range []int{1, 2, 8} {
		opts := search.DefaultOptions()
		opts.Workers = workers
		res, err := search.Search(context.Background(), planted(t), opts)
		require.NoError(t, err)
		require.True(t, res.Perfect)
		if prev != nil {
			assert.Equal(t, *prev, res, "workers=%d", workers)
		}
		prev = &res
	}
}

// TestSearch_DeterministicRanking runs an exhaustive (no-pass) sweep under
// three pool sizes and requires byte-identical ranked output.
func TestSearch_DeterministicRanking(t *testing.T) {
	opts := search.DefaultOptions()
	opts.TopK = 10

	var prev *search.Result
	for _, workers := range []int{1, 4, 16} {
		opts.Workers = workers
		res, err := search.Search(context.Background(), open(t), opts)
		require.NoError(t, err)
		assert.False(t, res.Perfect)
		if prev != nil {
			assert.Equal(t, *prev, res, "workers=%d", workers)
		}
		prev = &res
	}
}

// TestSearch_CountsAndSkips checks the full-space counters: 3 words × 4
// matrices × 2 configs, one matrix non-invertible.
func TestSearch_CountsAndSkips(t *testing.T) {
	res, err := search.Search(context.Background(), open(t), search.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 24, res.Evaluated)
	assert.Equal(t, 6, res.Skipped) // 3 words × 1 matrix × 2 configs
	require.NotNil(t, res.Best)
	assert.False(t, res.Best.Pass)
	// One region per combination, 18 usable combinations, capped at TopK.
	assert.Len(t, res.Ranked, 18)
}

// TestSearch_CapBoundsEvaluation caps a 24-combination space at 5.
func TestSearch_CapBoundsEvaluation(t *testing.T) {
	opts := search.DefaultOptions()
	opts.MaxCombinations = 5
	res, err := search.Search(context.Background(), open(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Evaluated)
}

// TestSearch_TopKBound keeps the ranked list within TopK.
func TestSearch_TopKBound(t *testing.T) {
	opts := search.DefaultOptions()
	opts.TopK = 3
	res, err := search.Search(context.Background(), open(t), opts)
	require.NoError(t, err)
	assert.Len(t, res.Ranked, 3)
	// Best first.
	for i := 1; i < len(res.Ranked); i++ {
		assert.GreaterOrEqual(t, res.Ranked[i-1].Score, res.Ranked[i].Score)
	}
}

// TestSearch_AllSkipped leaves Best nil when no matrix is invertible.
func TestSearch_AllSkipped(t *testing.T) {
	in := open(t)
	in.Matrices = []modmat.Mat2{modmat.New(2, 4, 6, 8), modmat.New(13, 0, 0, 2)}
	res, err := search.Search(context.Background(), in, search.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, res.Evaluated, res.Skipped)
	assert.Nil(t, res.Best)
	assert.Empty(t, res.Ranked)
}

// TestSearch_InputValidation exercises the fail-fast paths.
func TestSearch_InputValidation(t *testing.T) {
	base := open(t)

	t.Run("no words", func(t *testing.T) {
		in := base
		in.Words = nil
		_, err := search.Search(context.Background(), in, search.DefaultOptions())
		assert.ErrorIs(t, err, search.ErrEmptyInput)
	})
	t.Run("bad word", func(t *testing.T) {
		in := base
		in.Words = []string{"B3RLIN"}
		_, err := search.Search(context.Background(), in, search.DefaultOptions())
		assert.ErrorIs(t, err, search.ErrBadWord)
	})
	t.Run("bad region", func(t *testing.T) {
		in := base
		in.Regions = []core.Region{{Start: 90, End: 120, Label: "OOB"}}
		_, err := search.Search(context.Background(), in, search.DefaultOptions())
		assert.ErrorIs(t, err, core.ErrRegionBounds)
	})
	t.Run("bad config", func(t *testing.T) {
		in := base
		in.Configs = []search.OffsetConfig{{Name: "zero"}}
		_, err := search.Search(context.Background(), in, search.DefaultOptions())
		assert.ErrorIs(t, err, offset.ErrBadParams)
	})
	t.Run("bad options", func(t *testing.T) {
		_, err := search.Search(context.Background(), base, search.Options{})
		assert.ErrorIs(t, err, search.ErrBadOptions)
	})
	t.Run("empty ciphertext", func(t *testing.T) {
		in := base
		in.Ciphertext = core.Ciphertext{}
		_, err := search.Search(context.Background(), in, search.DefaultOptions())
		assert.ErrorIs(t, err, core.ErrEmptyCiphertext)
	})
}

// TestSearch_ContextCancel returns the context error without leaking the
// pool.
func TestSearch_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Search(ctx, open(t), search.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
