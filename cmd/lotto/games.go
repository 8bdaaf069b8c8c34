package main

import (
	"github.com/fystack/lotto-analyzer/internal/report"
	"github.com/spf13/cobra"
)

func newGamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the known game profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.RenderGames(cmd.OutOrStdout(), a.registry.List())
		},
	}
}
