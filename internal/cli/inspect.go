package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgforecaster/internal/app"
)

type inspectOptions struct {
	Report string
	Top    int
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a saved forecast report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Report, "report", "", "Forecast report (json or yaml)")
	cmd.Flags().IntVar(&opts.Top, "top", 5, "Number of riskiest packages to list")
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("top", cmd.Flags().Lookup("top"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
		Top:        resolveInt(cmd, opts.Top, "top", "top"),
	})
	if err != nil {
		return err
	}

	summary := result.Recomputed
	fmt.Printf("packages: %d (high=%d medium=%d low=%d)\n", summary.Total, summary.HighRisk, summary.MediumRisk, result.LowRisk)
	if !result.Consistent {
		fmt.Printf("stored summary differs: total=%d high=%d medium=%d\n", result.Stored.Total, result.Stored.HighRisk, result.Stored.MediumRisk)
	}
	fmt.Println("riskiest packages:")
	for _, update := range result.Top {
		fmt.Printf("- %s %s -> %s (risk=%.2f)\n", update.Name, update.Current, update.New, update.Score())
	}
	if len(result.Downgrades) > 0 {
		fmt.Println("downgrades:")
		for _, update := range result.Downgrades {
			fmt.Printf("- %s %s -> %s\n", update.Name, update.Current, update.New)
		}
	}
	return nil
}
