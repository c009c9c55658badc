package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgforecaster/internal/app"
	"pkgforecaster/internal/types"
)

type batchOptions struct {
	Captures  []string
	Workers   int
	OutputDir string
	Format    string
}

func newBatchCommand() *cobra.Command {
	opts := batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch [capture|dir]...",
		Short: "Forecast several captured simulations concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Captures, "capture", nil, "Capture files or directories (added to positional arguments)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Number of captures forecast in parallel")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory for one report per capture")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatJSON), "Report format (json|yaml|text)")
	_ = viper.BindPFlag("captures", cmd.Flags().Lookup("capture"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("batch_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runBatch(ctx context.Context, cmd *cobra.Command, args []string, opts batchOptions) error {
	files := append(append([]string{}, args...), resolveStrings(cmd, opts.Captures, "captures", "capture")...)
	service := newAppService()
	result, err := service.ForecastFiles(ctx, app.ForecastFilesRequest{
		Files:     files,
		Workers:   resolveInt(cmd, opts.Workers, "workers", "workers"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
		Format:    resolveString(cmd, opts.Format, "batch_format", "format"),
	})
	if err != nil {
		return err
	}
	for _, forecast := range result.Forecasts {
		summary := forecast.Simulation.Summary
		fmt.Printf("%s: total=%d high=%d medium=%d\n", forecast.Path, summary.Total, summary.HighRisk, summary.MediumRisk)
		if forecast.ReportPath != "" {
			fmt.Printf("  report: %s\n", forecast.ReportPath)
		}
	}
	return nil
}
