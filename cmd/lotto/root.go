package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/history"
	"github.com/fystack/lotto-analyzer/internal/stats"
	"github.com/fystack/lotto-analyzer/pkg/common/config"
	"github.com/fystack/lotto-analyzer/pkg/common/logger"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath  string
	debug       bool
	game        string
	column      int
	span        int
	sheet       string
	strict      bool
	oldestFirst bool
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	opts     *globalOptions
	cfg      config.Config
	registry *game.Registry
	profile  game.Profile
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "lotto",
		Short: "Lottery draw history analyzer",
		Long: `lotto reads a spreadsheet of historical draws and

  - summarises the distribution of draw sums and ball frequencies,
  - generates combinations that pass the AC, sum window, parity, modulo,
    run and collision filters,
  - back-tests any combination against the history.

Draw results are independent and uniform; nothing here predicts a draw.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logs")
	pf.StringVarP(&opts.game, "game", "g", "", "game profile (lotto649, daily539, ...)")
	pf.IntVar(&opts.column, "column", 0, "1-based column holding the drawn numbers")
	pf.IntVar(&opts.span, "span", 0, "number of columns to join, for one ball per cell")
	pf.StringVar(&opts.sheet, "sheet", "", "worksheet name (xlsx only, default first sheet)")
	pf.BoolVar(&opts.strict, "strict", false, "fail on any malformed draw row")
	pf.BoolVar(&opts.oldestFirst, "oldest-first", false, "the file lists the oldest draw first")

	root.AddCommand(
		newGamesCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newBacktestCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := logger.ParseLevel(cfg.Log.Level)
	if a.opts.debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		Writer:     cmd.ErrOrStderr(),
		TimeFormat: cfg.Log.TimeFormat,
		NoColor:    cfg.Log.NoColor,
	})

	a.registry = game.NewRegistry()
	for _, g := range cfg.Games {
		if err := a.registry.Register(game.Profile{
			Name:      g.Name,
			Title:     g.Title,
			MaxNumber: g.MaxNumber,
			PickCount: g.PickCount,
			MinAC:     g.MinAC,
		}); err != nil {
			return fmt.Errorf("config games: %w", err)
		}
	}

	name := cfg.History.Game
	if a.opts.game != "" {
		name = a.opts.game
	}
	a.profile, err = a.registry.Get(name)
	if err != nil {
		return err
	}
	logger.Debug("Config loaded", "path", a.opts.configPath, "env", cfg.Environment, "game", a.profile.String())
	return nil
}

func (a *app) historyOptions(cmd *cobra.Command) history.Options {
	h := a.cfg.History
	opts := history.Options{
		Column:      h.Column,
		Span:        h.Span,
		Sheet:       h.Sheet,
		LatestFirst: h.LatestFirst == nil || *h.LatestFirst,
		Strict:      h.Strict,
	}
	flags := cmd.Flags()
	if flags.Changed("column") {
		opts.Column = a.opts.column
	}
	if flags.Changed("span") {
		opts.Span = a.opts.span
	}
	if flags.Changed("sheet") {
		opts.Sheet = a.opts.sheet
	}
	if flags.Changed("strict") {
		opts.Strict = a.opts.strict
	}
	if flags.Changed("oldest-first") {
		opts.LatestFirst = !a.opts.oldestFirst
	}
	return opts
}

// load reads the history file and summarises it.
func (a *app) load(ctx context.Context, cmd *cobra.Command, path string, hotN int) (*history.History, *stats.Summary, error) {
	h, err := history.Load(ctx, path, a.profile, a.historyOptions(cmd))
	if err != nil {
		return nil, nil, err
	}
	if h.Skipped > 0 {
		logger.Warn("Skipped rows that are not valid draws", "skipped", h.Skipped, "game", a.profile.Name)
	}
	if hotN <= 0 {
		hotN = a.cfg.Generator.HotCount
	}
	s, err := stats.Compute(h.Draws, a.profile, hotN)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("History loaded", "path", path, "draws", h.Len(), "mean_sum", stats.Round1(s.MeanSum).String())
	return h, s, nil
}
