package main

import (
	"github.com/fystack/lotto-analyzer/internal/report"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	hot    int
	output string
	format string
}

func newStatsCmd(a *app) *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats <history-file>",
		Short: "Summarise draw sums and ball frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := a.load(cmd.Context(), cmd, args[0], opts.hot)
			if err != nil {
				return err
			}
			overview := s.Overview()
			return emit(cmd, opts.output, opts.format, report.Payload{Stats: &overview}, func() error {
				return report.RenderStats(cmd.OutOrStdout(), overview, s)
			})
		},
	}
	cmd.Flags().IntVar(&opts.hot, "hot", 0, "how many hot and cold numbers to list (default from config)")
	addOutputFlags(cmd, &opts.output, &opts.format)
	return cmd
}
