package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgforecaster/internal/app"
	"pkgforecaster/internal/types"
)

type watchOptions struct {
	File   string
	Format string
}

func newWatchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-forecast a captured simulation whenever it changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Captured simulation output to watch")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Report format (json|yaml|text)")
	_ = viper.BindPFlag("watch_file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("watch_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts watchOptions) error {
	service := newAppService()
	format := resolveString(cmd, opts.Format, "watch_format", "format")
	if err := service.Render(io.Discard, types.NewSimulation(), format); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sims := make(chan types.Simulation)
	rendered := make(chan error, 1)
	go func() {
		var renderErr error
		for sim := range sims {
			if renderErr != nil {
				continue
			}
			if renderErr = service.Render(os.Stdout, sim, format); renderErr != nil {
				cancel()
			}
		}
		rendered <- renderErr
	}()

	err := service.Watch(ctx, app.WatchRequest{
		File: resolveString(cmd, opts.File, "watch_file", "file"),
	}, sims)
	close(sims)
	if renderErr := <-rendered; err == nil {
		err = renderErr
	}
	log.Ctx(ctx).Debug().Msg("watch stopped")
	return err
}
