package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sync/errgroup"

	"pkgforecaster/internal/adapters"
	"pkgforecaster/internal/types"
)

const defaultBatchWorkers = 4

// capture is one expanded batch input. Rel is its path below the directory
// it was found in, or its base name when it was named directly.
type capture struct {
	Path string
	Rel  string
}

// ForecastFiles classifies several captured simulations concurrently.
// Directories expand to the captures found below them. Results keep the
// order of the expanded file list; the first failure cancels the rest.
func (s Service) ForecastFiles(ctx context.Context, req ForecastFilesRequest) (ForecastFilesResult, error) {
	format, err := parseFormat(req.Format)
	if err != nil {
		return ForecastFilesResult{}, err
	}
	captures, err := s.expandCaptures(req.Files)
	if err != nil {
		return ForecastFilesResult{}, err
	}
	if len(captures) == 0 {
		return ForecastFilesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one simulation file is required")
	}
	workers := req.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	var reportPaths []string
	if outputDir := strings.TrimSpace(req.OutputDir); outputDir != "" {
		reportPaths, err = planReportPaths(captures, outputDir, format)
		if err != nil {
			return ForecastFilesResult{}, err
		}
	}

	forecasts := make([]FileForecast, len(captures))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, item := range captures {
		group.Go(func() error {
			text, err := adapters.NewFileSourceAdapter(item.Path).Capture(groupCtx)
			if err != nil {
				return err
			}
			forecast := FileForecast{
				Path:       item.Path,
				Simulation: s.Forecaster.Forecast(groupCtx, text),
			}
			if reportPaths != nil {
				forecast.ReportPath = reportPaths[i]
				if err := s.ReportWriter.WriteFile(forecast.ReportPath, forecast.Simulation, format); err != nil {
					return err
				}
			}
			forecasts[i] = forecast
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ForecastFilesResult{}, err
	}
	return ForecastFilesResult{Forecasts: forecasts}, nil
}

func (s Service) expandCaptures(entries []string) ([]capture, error) {
	var captures []capture
	for _, entry := range entries {
		info, err := os.Stat(entry)
		if err != nil || !info.IsDir() {
			captures = append(captures, capture{Path: entry, Rel: filepath.Base(entry)})
			continue
		}
		found, err := s.Captures.FindCaptures(entry)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			rel, err := filepath.Rel(entry, path)
			if err != nil {
				rel = filepath.Base(path)
			}
			captures = append(captures, capture{Path: path, Rel: rel})
		}
	}
	return captures, nil
}

// planReportPaths maps each capture to a report below outputDir, keeping
// its relative layout. A name already taken gets a numeric suffix; a report
// that would overwrite a capture is rejected.
func planReportPaths(captures []capture, outputDir string, format types.OutputFormat) ([]string, error) {
	inputs := make(map[string]struct{}, len(captures))
	for _, item := range captures {
		inputs[cleanAbs(item.Path)] = struct{}{}
	}
	taken := make(map[string]struct{}, len(captures))
	paths := make([]string, len(captures))
	for i, item := range captures {
		stem := filepath.Join(outputDir, strings.TrimSuffix(item.Rel, filepath.Ext(item.Rel)))
		path := stem + formatExtension(format)
		for n := 2; ; n++ {
			if _, ok := taken[cleanAbs(path)]; !ok {
				break
			}
			path = fmt.Sprintf("%s-%d%s", stem, n, formatExtension(format))
		}
		if _, ok := inputs[cleanAbs(path)]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("report would overwrite capture: %s", item.Path))
		}
		taken[cleanAbs(path)] = struct{}{}
		paths[i] = path
	}
	return paths, nil
}

func cleanAbs(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
