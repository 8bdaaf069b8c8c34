package main

import (
	"github.com/fystack/lotto-analyzer/internal/report"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/fystack/lotto-analyzer/pkg/common/logger"
	"github.com/spf13/cobra"
)

func addOutputFlags(cmd *cobra.Command, output, format *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "export to this file (.json, .yaml, .csv, .xlsx)")
	cmd.Flags().StringVarP(format, "format", "f", "", "export format; without --output text formats go to stdout")
}

// emit renders to the terminal, or exports when --output / --format is set.
func emit(cmd *cobra.Command, output, format string, p report.Payload, render func() error) error {
	var f enum.ExportFormat
	if format != "" {
		parsed, err := report.ParseFormat(format)
		if err != nil {
			return err
		}
		f = parsed
	}

	switch {
	case output != "":
		if f == "" {
			parsed, err := report.FormatFromPath(output)
			if err != nil {
				return err
			}
			f = parsed
		}
		if err := report.Export(output, f, p); err != nil {
			return err
		}
		logger.Info("Exported", "path", output, "format", f)
		return render()
	case f != "":
		return report.Encode(cmd.OutOrStdout(), f, p)
	default:
		return render()
	}
}
