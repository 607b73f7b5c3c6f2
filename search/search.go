package search

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
	"github.com/kryptolab/polygraph/pipeline"
	"github.com/kryptolab/polygraph/score"
)

// invCacheSize bounds the shared matrix-inverse memo. Sweeps revisit the
// same matrix list once per combination, so a small cache covers it.
const invCacheSize = 256

// comboResult carries one evaluated combination from a worker to the
// reduction.
type comboResult struct {
	idx      int
	skipped  bool
	cands    []Candidate
	combined Combined
}

// Search sweeps every (word, matrix, config) combination over the regions
// and returns the ranked outcome.
//
// Contracts:
//   - in.Ciphertext must be non-empty; regions must be valid against it.
//   - in.Words, in.Matrices, in.Configs and in.Regions must be non-empty;
//     each word must be purely alphabetic.
//   - opts fields must be positive (see Options).
//
// The ranked list is deterministic for fixed inputs regardless of
// opts.Workers. A combination whose constrained regions all pass stops the
// sweep and becomes the definitive result. ctx cancels the sweep; the
// context error is returned and the partial result discarded.
//
// Errors: ErrBadOptions, ErrEmptyInput, ErrBadWord, core region and
// ciphertext sentinels, offset.ErrBadParams wrapped with the config name.
//
// Complexity: O(C · R · L) for C evaluated combinations, R regions of
// length ≤ L, plus O(C log k) ranking.
func Search(ctx context.Context, in Input, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if err := validateInput(in); err != nil {
		return Result{}, err
	}

	total := len(in.Words) * len(in.Matrices) * len(in.Configs)
	if total > opts.MaxCombinations {
		total = opts.MaxCombinations
	}

	invCache, err := lru.New[modmat.Mat2, modmat.Mat2](invCacheSize)
	if err != nil {
		return Result{}, fmt.Errorf("search: inverse cache: %w", err)
	}

	// perfectIdx holds the smallest enumeration index whose combination
	// passed every constrained region; MaxInt64 until one is found. Every
	// index below it is evaluated in any run, which makes the minimum, and
	// with it the definitive result, independent of scheduling.
	var perfectIdx atomic.Int64
	perfectIdx.Store(math.MaxInt64)

	jobs := make(chan int)
	results := make(chan comboResult, opts.Workers)

	eg, egCtx := errgroup.WithContext(ctx)

	// Stage 1 - producer: issue indices in order, stopping at the cap, at
	// cancellation, or once a perfect combination is known.
	eg.Go(func() error {
		defer close(jobs)
		for idx := 0; idx < total; idx++ {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if int64(idx) > perfectIdx.Load() {
				return nil
			}
			select {
			case jobs <- idx:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})

	// Stage 2 - workers: evaluate combinations independently. Indices past
	// a known perfect combination are dropped; their results could never
	// survive the reduction.
	for w := 0; w < opts.Workers; w++ {
		eg.Go(func() error {
			for idx := range jobs {
				if int64(idx) > perfectIdx.Load() {
					continue
				}
				res := evaluate(in, opts, invCache, idx)
				if res.combined.Pass {
					storeMin(&perfectIdx, int64(idx))
				}
				select {
				case results <- res:
				case <-egCtx.Done():
					return egCtx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		// Workers return only after jobs closes or egCtx cancels; either
		// way eg.Wait releases and the reduction below drains out.
		_ = eg.Wait()
		close(results)
	}()

	// Stage 3 - reduction: a single consumer folds results into the top-K
	// heap, the running best combination, and the counters.
	var (
		ranked    = newTopK(opts.TopK)
		best      *Combined
		perfect   *comboResult
		evaluated int
		skipIdxs  []int
	)
	for res := range results {
		evaluated++
		if res.skipped {
			skipIdxs = append(skipIdxs, res.idx)
			continue
		}
		if res.combined.Pass && (perfect == nil || res.idx < perfect.idx) {
			r := res
			perfect = &r
		}
		if best == nil || betterCombined(res.combined, *best) {
			c := res.combined
			best = &c
		}
		for _, cand := range res.cands {
			ranked.add(cand)
		}
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	if perfect != nil {
		return finishPerfect(perfect, skipIdxs), nil
	}
	skipped := len(skipIdxs)
	return Result{
		Ranked:    ranked.ranked(),
		Best:      best,
		Evaluated: evaluated,
		Skipped:   skipped,
	}, nil
}

// finishPerfect builds the definitive result: exactly the perfect
// combination's candidates, with counters restricted to the enumeration
// prefix every run is guaranteed to have evaluated.
func finishPerfect(perfect *comboResult, skipIdxs []int) Result {
	cands := append([]Candidate(nil), perfect.cands...)
	// Regions of one combination share every ranking key above regionIdx,
	// so insertion sort by region order suffices.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && better(cands[j], cands[j-1]); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
	skipped := 0
	for _, s := range skipIdxs {
		if s <= perfect.idx {
			skipped++
		}
	}
	best := perfect.combined
	return Result{
		Ranked:    cands,
		Best:      &best,
		Perfect:   true,
		Evaluated: perfect.idx + 1,
		Skipped:   skipped,
	}
}

// evaluate decrypts and scores every region under combination idx.
func evaluate(in Input, opts Options, invCache *lru.Cache[modmat.Mat2, modmat.Mat2], idx int) comboResult {
	wi, mi, ci := splitIndex(in, idx)
	word, mat, cfg := in.Words[wi], in.Matrices[mi], in.Configs[ci]

	inv, ok := invCache.Get(mat)
	if !ok {
		var err error
		inv, err = mat.Inverse()
		if err != nil {
			return comboResult{idx: idx, skipped: true}
		}
		invCache.Add(mat, inv)
	}

	res := comboResult{idx: idx}
	res.combined = Combined{
		Word:       word,
		Matrix:     mat,
		ConfigName: cfg.Name,
		Pass:       true,
		combo:      idx,
	}
	constrained := 0
	for ri, region := range in.Regions {
		offsets, err := offset.Table(cfg.Params, word, region, in.Ciphertext)
		if err != nil {
			// Params and word are validated up front; unreachable here.
			return comboResult{idx: idx, skipped: true}
		}
		plain, err := pipeline.DecryptRegionInverse(in.Ciphertext, region, inv, offsets, cfg.Mask)
		if err != nil {
			return comboResult{idx: idx, skipped: true}
		}
		check := pipeline.Validate(region, plain)
		var sc float64
		if len(opts.Lexicon) > 0 {
			sc = score.ScoreLexicon(plain, opts.Lexicon)
		} else {
			sc = score.Score(plain)
		}

		if region.KnownFragment != "" {
			constrained++
			if !check.Pass {
				res.combined.Pass = false
			}
		}
		res.combined.Matched += len(check.Matched)
		res.combined.Score += sc
		res.combined.Plaintexts = append(res.combined.Plaintexts, RegionPlaintext{
			Label:     region.Label,
			Plaintext: plain,
		})
		res.cands = append(res.cands, Candidate{
			RegionLabel: region.Label,
			Word:        word,
			Matrix:      mat,
			ConfigName:  cfg.Name,
			Offsets:     offsets,
			Plaintext:   plain,
			Pass:        check.Pass,
			Matched:     check.Matched,
			Score:       sc,
			combo:       idx,
			regionIdx:   ri,
		})
	}
	// A pass needs something to pass against.
	if constrained == 0 {
		res.combined.Pass = false
	}
	for i := range res.cands {
		res.cands[i].CombinedPass = res.combined.Pass
	}
	return res
}

// splitIndex decodes an enumeration index into (word, matrix, config)
// positions; the config axis varies fastest.
func splitIndex(in Input, idx int) (wi, mi, ci int) {
	ci = idx % len(in.Configs)
	idx /= len(in.Configs)
	mi = idx % len(in.Matrices)
	wi = idx / len(in.Matrices)
	return wi, mi, ci
}

// storeMin lowers v to x unless it is already smaller.
func storeMin(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if cur <= x || v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// validateInput fails the sweep before any work starts.
func validateInput(in Input) error {
	if in.Ciphertext.Len() == 0 {
		return core.ErrEmptyCiphertext
	}
	if len(in.Regions) == 0 || len(in.Words) == 0 ||
		len(in.Matrices) == 0 || len(in.Configs) == 0 {
		return ErrEmptyInput
	}
	if err := core.ValidateRegions(in.Regions, in.Ciphertext.Len()); err != nil {
		return err
	}
	for _, w := range in.Words {
		if w == "" {
			return fmt.Errorf("word %q: %w", w, ErrBadWord)
		}
		for i := 0; i < len(w); i++ {
			c := w[i]
			if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
				return fmt.Errorf("word %q: %w", w, ErrBadWord)
			}
		}
	}
	for i, cfg := range in.Configs {
		if err := cfg.Params.Validate(); err != nil {
			return fmt.Errorf("config %d (%s): %w", i, cfg.Name, err)
		}
	}
	return nil
}
