package main

import (
	"github.com/fystack/lotto-analyzer/internal/backtest"
	"github.com/fystack/lotto-analyzer/internal/report"
	"github.com/spf13/cobra"
)

type backtestOptions struct {
	combo   string
	minHits int
	output  string
	format  string
}

func newBacktestCmd(a *app) *cobra.Command {
	opts := &backtestOptions{}
	cmd := &cobra.Command{
		Use:   "backtest <history-file>",
		Short: "Count how many balls a combination shared with every past draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			combo, err := backtest.ParseCombination(opts.combo)
			if err != nil {
				return err
			}
			h, _, err := a.load(cmd.Context(), cmd, args[0], 0)
			if err != nil {
				return err
			}
			r, err := backtest.Run(combo, h.Draws, a.profile, opts.minHits)
			if err != nil {
				return err
			}
			return emit(cmd, opts.output, opts.format, report.Payload{Backtest: r}, func() error {
				return report.RenderBacktest(cmd.OutOrStdout(), r)
			})
		},
	}
	cmd.Flags().StringVar(&opts.combo, "combo", "", `combination to test, e.g. "3,14,22,29,35,41"`)
	_ = cmd.MarkFlagRequired("combo")
	cmd.Flags().IntVar(&opts.minHits, "min-hits", 0, "list draws sharing at least this many balls (default 2)")
	addOutputFlags(cmd, &opts.output, &opts.format)
	return cmd
}
