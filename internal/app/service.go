package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgforecaster/internal/adapters"
	"pkgforecaster/internal/core"
	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/types"
)

// SourceFactory builds the simulation source selected by a request.
type SourceFactory func(req SourceRequest) (ports.SimulationSourcePort, error)

type Service struct {
	Sources      SourceFactory
	Forecaster   core.Forecaster
	Versions     core.VersionComparer
	ReportWriter ports.ReportWriterPort
	ReportReader ports.ReportReaderPort
	Watcher      ports.FileWatchPort
	Captures     ports.CaptureFinderPort
	Stdout       io.Writer
}

func NewService() Service {
	return Service{
		Sources:      NewSource,
		Forecaster:   core.NewForecaster(),
		Versions:     core.NewVersionComparer(),
		ReportWriter: adapters.NewReportFileAdapter(),
		ReportReader: adapters.NewReportReaderAdapter(),
		Watcher:      adapters.NewFileWatcherAdapter(),
		Captures:     adapters.NewCaptureFinderAdapter(),
		Stdout:       os.Stdout,
	}
}

// NewSource maps a request to its adapter. Without an explicit kind a
// file path selects the file source, otherwise the local apt-get run.
func NewSource(req SourceRequest) (ports.SimulationSourcePort, error) {
	kind := req.Kind
	if kind == "" {
		kind = types.SourceKindLocal
		if strings.TrimSpace(req.File) != "" {
			kind = types.SourceKindFile
		}
	}
	switch kind {
	case types.SourceKindFile:
		return adapters.NewFileSourceAdapter(req.File), nil
	case types.SourceKindLocal:
		return adapters.NewLocalAptSourceAdapter(req.DistUpgrade), nil
	case types.SourceKindDebootstrap:
		return adapters.NewDebootstrapSourceAdapter(req.Release, req.Mirror, req.DistUpgrade), nil
	case types.SourceKindContainer:
		return adapters.NewContainerSourceAdapter(req.Image, req.DistUpgrade), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported simulation source: %s", kind))
	}
}

// Render writes sim to w in the requested format.
func (s Service) Render(w io.Writer, sim types.Simulation, format string) error {
	parsed, err := parseFormat(format)
	if err != nil {
		return err
	}
	return s.ReportWriter.Write(w, sim, parsed)
}

func parseFormat(value string) (types.OutputFormat, error) {
	switch format := types.OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return types.OutputFormatJSON, nil
	case types.OutputFormatJSON, types.OutputFormatYAML, types.OutputFormatText:
		return format, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", value))
	}
}

func formatExtension(format types.OutputFormat) string {
	switch format {
	case types.OutputFormatYAML:
		return ".yaml"
	case types.OutputFormatText:
		return ".txt"
	default:
		return ".json"
	}
}
