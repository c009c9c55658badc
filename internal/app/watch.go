package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sync/errgroup"

	"pkgforecaster/internal/types"
)

// Watch forecasts the capture at req.File every time it changes and sends
// each completed Simulation on out. It returns when ctx is done; out is
// left open for the caller to close.
func (s Service) Watch(ctx context.Context, req WatchRequest, out chan<- types.Simulation) error {
	path := strings.TrimSpace(req.File)
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("simulation file path is required")
	}
	texts := make(chan string)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(texts)
		return s.Watcher.Watch(groupCtx, path, texts)
	})
	group.Go(func() error {
		for text := range texts {
			sim := s.Forecaster.Forecast(groupCtx, text)
			select {
			case out <- sim:
			case <-groupCtx.Done():
				return nil
			}
		}
		return nil
	})
	return group.Wait()
}
