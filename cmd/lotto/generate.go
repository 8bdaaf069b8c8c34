package main

import (
	"errors"

	"github.com/fystack/lotto-analyzer/internal/generator"
	"github.com/fystack/lotto-analyzer/internal/report"
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/fystack/lotto-analyzer/pkg/common/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type generateOptions struct {
	attempts      int
	candidates    int
	strategy      string
	seed          uint64
	sumMode       string
	confidence    float64
	anchorSum     int
	anchorSpread  int
	tolerance     float64
	minAC         int
	maxOverlap    int
	maxHistoryHit int
	excludeWon    bool
	minOdd        int
	maxOdd        int
	maxRun        int
	output        string
	format        string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <history-file>",
		Short: "Generate filtered combinations by rejection sampling",
		Long: `Samples combinations (hot, cold or uniform weighting) until enough of
them pass every filter or the attempt cap is reached, then recommends one.

Filters, in order: duplicate, sum window, AC value, overlap with the latest
draw, modulo balance, odd/even bounds, consecutive run, historical collision.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.attempts, "attempts", "n", 0, "hard cap on sampled combinations")
	f.IntVarP(&opts.candidates, "candidates", "k", 0, "stop after this many candidates")
	f.StringVar(&opts.strategy, "strategy", "", "sampling weights: hot, cold or uniform")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	f.StringVar(&opts.sumMode, "sum-mode", "", "sum window: stddev, anchor or tolerance")
	f.Float64Var(&opts.confidence, "confidence", 0, "σ multiplier for the stddev window (0.5-2.0)")
	f.IntVar(&opts.anchorSum, "anchor-sum", 0, "centre the sum window on this sum instead of the mean")
	f.IntVar(&opts.anchorSpread, "anchor-spread", 0, "half width of the anchor window")
	f.Float64Var(&opts.tolerance, "tolerance", 0, "max distance from the mean sum in tolerance mode")
	f.IntVar(&opts.minAC, "min-ac", 0, "minimum AC value (default from the game profile)")
	f.IntVar(&opts.maxOverlap, "max-overlap", 0, "max balls shared with the latest draw, negative disables")
	f.IntVar(&opts.maxHistoryHit, "max-history-hit", 0, "max balls shared with any past draw, 0 disables")
	f.BoolVar(&opts.excludeWon, "exclude-won", false, "drop combinations that ever matched 4 or more balls")
	f.IntVar(&opts.minOdd, "min-odd", 0, "minimum odd balls")
	f.IntVar(&opts.maxOdd, "max-odd", 0, "maximum odd balls, 0 disables")
	f.IntVar(&opts.maxRun, "max-run", 0, "longest allowed run of consecutive numbers, 0 disables")
	addOutputFlags(cmd, &opts.output, &opts.format)
	return cmd
}

// params starts from the config file and applies the flags the user set.
func (a *app) params(flags *pflag.FlagSet, opts *generateOptions) generator.Params {
	g := a.cfg.Generator
	p := generator.DefaultParams(a.profile)
	p.MaxAttempts = g.Attempts
	p.Want = g.Candidates
	p.Strategy = g.Strategy
	p.Seed = g.Seed
	p.SumWindow = generator.SumWindow{
		Mode:         g.SumWindow.Mode,
		Confidence:   g.SumWindow.Confidence,
		Anchor:       g.SumWindow.Anchor,
		AnchorSpread: g.SumWindow.AnchorSpread,
		Tolerance:    g.SumWindow.Tolerance,
	}
	if g.MinAC > 0 {
		p.MinAC = g.MinAC
	}
	if g.MaxLastDrawOverlap != nil {
		p.MaxLastDrawOverlap = *g.MaxLastDrawOverlap
	}
	p.Modulus = g.Modulus
	p.MaxPerResidue = g.MaxPerResidue
	p.MaxHistoryHit = g.MaxHistoryHit
	p.MinOdd, p.MaxOdd = g.Odd.Min, g.Odd.Max
	p.MaxRun = g.MaxRun

	set := flags.Changed
	if set("attempts") {
		p.MaxAttempts = opts.attempts
	}
	if set("candidates") {
		p.Want = opts.candidates
	}
	if set("strategy") {
		p.Strategy = enum.Strategy(opts.strategy)
	}
	if set("seed") {
		p.Seed = opts.seed
	}
	if set("sum-mode") {
		p.SumWindow.Mode = enum.SumWindowMode(opts.sumMode)
	}
	if set("confidence") {
		p.SumWindow.Confidence = opts.confidence
	}
	if set("anchor-sum") {
		p.SumWindow.Anchor = opts.anchorSum
	}
	if p.SumWindow.Anchor > 0 {
		p.SumWindow.Mode = enum.SumWindowAnchor
	}
	if set("anchor-spread") {
		p.SumWindow.AnchorSpread = opts.anchorSpread
	}
	if set("tolerance") {
		p.SumWindow.Tolerance = opts.tolerance
	}
	if set("min-ac") {
		p.MinAC = opts.minAC
	}
	if set("max-overlap") {
		p.MaxLastDrawOverlap = opts.maxOverlap
	}
	if opts.excludeWon {
		p.MaxHistoryHit = constant.ExcludeWonHistoryHit
	}
	if set("max-history-hit") {
		p.MaxHistoryHit = opts.maxHistoryHit
	}
	if set("min-odd") {
		p.MinOdd = opts.minOdd
	}
	if set("max-odd") {
		p.MaxOdd = opts.maxOdd
	}
	if set("max-run") {
		p.MaxRun = opts.maxRun
	}
	return p
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions, path string) error {
	h, s, err := a.load(cmd.Context(), cmd, path, 0)
	if err != nil {
		return err
	}

	g, err := generator.New(a.profile, h.Draws, s, a.params(cmd.Flags(), opts))
	if err != nil {
		return err
	}
	res, err := g.Generate(cmd.Context())
	if err != nil {
		if errors.Is(err, generator.ErrNoCandidates) && res != nil {
			logger.Warn("Every sample was rejected", "attempts", res.Attempts, "rejections", res.Rejections)
		}
		return err
	}

	pick, idx, err := res.Recommend()
	if err != nil {
		return err
	}
	logger.Info("Candidates generated",
		"run_id", res.RunID, "candidates", len(res.Candidates), "attempts", res.Attempts, "recommended", pick.Numbers.String())

	overview := s.Overview()
	payload := report.Payload{Stats: &overview, Result: res, Recommended: &pick}
	return emit(cmd, opts.output, opts.format, payload, func() error {
		return report.RenderCandidates(cmd.OutOrStdout(), res, idx)
	})
}
