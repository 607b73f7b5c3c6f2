package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kryptolab/polygraph/config"
	"github.com/kryptolab/polygraph/core"
	"github.com/kryptolab/polygraph/modmat"
	"github.com/kryptolab/polygraph/offset"
	"github.com/kryptolab/polygraph/pipeline"
	"github.com/kryptolab/polygraph/search"
)

var (
	// Global flags
	verbose bool

	// sweep flags
	maxCombinations int
	topK            int
	workers         int
	lexicon         []string

	// decrypt flags
	matrixSpec string
	word       string
	maskSpec   []int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "polygraph",
	Short: "Parameterized Hill-cipher sweeps over the Kryptos K4 passage",
	Long: `polygraph decrypts ciphertext regions with 2x2 Hill-cipher keys and a
position-dependent corrective overlay, then ranks candidate plaintexts
against known fragments and English statistics.

A sweep file declares the regions, candidate words, key matrices and
offset configurations; see the config package for the YAML shape.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [sweep-file]",
	Short: "Run a combination sweep and print the ranked candidates",
	Long: `Enumerates every (word, matrix, config) combination from the sweep file,
decrypts all regions under each, and prints the top candidates. Without a
file the sculpture defaults apply and the axes must come from flags.

A combination reproducing every known fragment ends the sweep immediately
and is reported as definitive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSweep,
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt the sculpture regions under one matrix and word",
	Long: `Runs the two-stage pipeline once: Hill-block decryption under the given
matrix, then the generated offsets for the given word at the masked
positions. Prints each region's plaintext and its fragment check.`,
	RunE: runDecrypt,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	sweepCmd.Flags().IntVar(&maxCombinations, "max-combinations", 0, "Cap on evaluated combinations (default from file)")
	sweepCmd.Flags().IntVar(&topK, "top-k", 0, "Ranked list size (default from file)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "Evaluation pool size (default from file)")
	sweepCmd.Flags().StringSliceVar(&lexicon, "lexicon", nil, "Expected terms scored with a bonus")

	decryptCmd.Flags().StringVarP(&matrixSpec, "matrix", "m", "", "Key matrix, row-major: a,b,c,d (required)")
	decryptCmd.Flags().StringVarP(&word, "word", "w", "", "Input word for the offset generator (required)")
	decryptCmd.Flags().IntSliceVar(&maskSpec, "mask", nil, "Region positions corrections apply to (default: all)")
	_ = decryptCmd.MarkFlagRequired("matrix")
	_ = decryptCmd.MarkFlagRequired("word")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(decryptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	var (
		sw  *config.Sweep
		err error
	)
	if len(args) == 1 {
		sw, err = config.Load(args[0])
		if err != nil {
			return err
		}
	} else {
		sw = config.DefaultSweep()
	}

	in, opts, err := sw.Build()
	if err != nil {
		return err
	}
	if maxCombinations > 0 {
		opts.MaxCombinations = maxCombinations
	}
	if topK > 0 {
		opts.TopK = topK
	}
	if workers > 0 {
		opts.Workers = workers
	}
	if len(lexicon) > 0 {
		opts.Lexicon = lexicon
	}

	ctx, cancel := signalContext()
	defer cancel()

	logger.Info("Starting sweep",
		zap.Int("words", len(in.Words)),
		zap.Int("matrices", len(in.Matrices)),
		zap.Int("configs", len(in.Configs)),
		zap.Int("workers", opts.Workers))

	res, err := search.Search(ctx, in, opts)
	if err != nil {
		return err
	}

	logger.Info("Sweep finished",
		zap.Int("evaluated", res.Evaluated),
		zap.Int("skipped", res.Skipped),
		zap.Bool("perfect", res.Perfect))

	printResult(cmd, res)
	return nil
}

func printResult(cmd *cobra.Command, res search.Result) {
	out := cmd.OutOrStdout()
	if res.Perfect {
		fmt.Fprintln(out, "DEFINITIVE: every known fragment reproduced")
	}
	for i, c := range res.Ranked {
		status := " "
		if c.Pass {
			status = "*"
		}
		fmt.Fprintf(out, "%3d %s %-14s word=%-12s cfg=%-10s score=%.4f matched=%d  %s\n",
			i+1, status, c.RegionLabel, c.Word, c.ConfigName, c.Score, len(c.Matched), c.Plaintext)
	}
	if res.Best != nil {
		fmt.Fprintf(out, "best combination: word=%s matrix=[[%d,%d],[%d,%d]] cfg=%s score=%.4f\n",
			res.Best.Word,
			res.Best.Matrix.A, res.Best.Matrix.B, res.Best.Matrix.C, res.Best.Matrix.D,
			res.Best.ConfigName, res.Best.Score)
	}
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	mat, err := parseMatrix(matrixSpec)
	if err != nil {
		return err
	}

	ct, err := core.NewCiphertext(core.SculptureK4)
	if err != nil {
		return err
	}

	var mask pipeline.Mask
	if maskSpec != nil {
		mask = make(pipeline.Mask, len(maskSpec))
		for _, pos := range maskSpec {
			mask[pos] = true
		}
	}

	params := offset.DefaultParams()
	out := cmd.OutOrStdout()
	for _, region := range core.SculptureRegions() {
		offsets, err := offset.Table(params, word, region, ct)
		if err != nil {
			return err
		}
		plain, err := pipeline.DecryptRegion(ct, region, mat, offsets, mask)
		if err != nil {
			return err
		}
		check := pipeline.Validate(region, plain)
		logger.Debug("Region decrypted",
			zap.String("region", region.Label),
			zap.Ints("offsets", offsets),
			zap.Bool("pass", check.Pass))
		fmt.Fprintf(out, "%-14s %s  want=%s matched=%d/%d\n",
			region.Label, plain, region.KnownFragment, len(check.Matched), region.Len())
	}
	return nil
}

// parseMatrix reads a row-major "a,b,c,d" key.
func parseMatrix(s string) (modmat.Mat2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return modmat.Mat2{}, fmt.Errorf("matrix %q: want four comma-separated integers", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return modmat.Mat2{}, fmt.Errorf("matrix %q: %w", s, err)
		}
		v[i] = n
	}
	return modmat.New(v[0], v[1], v[2], v[3]), nil
}

// signalContext cancels on SIGINT/SIGTERM for a clean sweep shutdown.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
