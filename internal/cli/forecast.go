package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgforecaster/internal/app"
	"pkgforecaster/internal/types"
)

type forecastOptions struct {
	Source      string
	File        string
	Release     string
	Mirror      string
	Image       string
	DistUpgrade bool
	Format      string
	Output      string
	FailOn      string
}

func newForecastCommand() *cobra.Command {
	opts := forecastOptions{}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Simulate an upgrade and report the risk of each package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Simulation source (file|local|debootstrap|container)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Captured simulation output (- for stdin)")
	cmd.Flags().StringVar(&opts.Release, "release", "", "Release to bootstrap for the debootstrap source")
	cmd.Flags().StringVar(&opts.Mirror, "mirror", "", "Archive mirror for the debootstrap source")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Container image for the container source")
	cmd.Flags().BoolVar(&opts.DistUpgrade, "dist-upgrade", false, "Simulate dist-upgrade instead of upgrade")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatJSON), "Report format (json|yaml|text)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Report file path (stdout when empty)")
	cmd.Flags().StringVar(&opts.FailOn, "fail-on", string(types.RiskLevelNone), "Exit non-zero at this risk level (none|low|medium|high)")

	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("release", cmd.Flags().Lookup("release"))
	_ = viper.BindPFlag("mirror", cmd.Flags().Lookup("mirror"))
	_ = viper.BindPFlag("image", cmd.Flags().Lookup("image"))
	_ = viper.BindPFlag("dist_upgrade", cmd.Flags().Lookup("dist-upgrade"))
	_ = viper.BindPFlag("forecast_format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("fail_on", cmd.Flags().Lookup("fail-on"))

	return cmd
}

func runForecast(ctx context.Context, cmd *cobra.Command, opts forecastOptions) error {
	service := newAppService()
	result, err := service.Forecast(ctx, app.ForecastRequest{
		Source: app.SourceRequest{
			Kind:        types.SourceKind(resolveString(cmd, opts.Source, "source", "source")),
			File:        resolveString(cmd, opts.File, "file", "file"),
			Release:     resolveString(cmd, opts.Release, "release", "release"),
			Mirror:      resolveString(cmd, opts.Mirror, "mirror", "mirror"),
			Image:       resolveString(cmd, opts.Image, "image", "image"),
			DistUpgrade: resolveBool(cmd, opts.DistUpgrade, "dist_upgrade", "dist-upgrade"),
		},
		Format:     resolveString(cmd, opts.Format, "forecast_format", "format"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
		FailOn:     resolveString(cmd, opts.FailOn, "fail_on", "fail-on"),
	})
	if result.OutputPath != "" && err == nil {
		log.Ctx(ctx).Info().Str("path", result.OutputPath).Msg("wrote forecast report")
	}
	return err
}
