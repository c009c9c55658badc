package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/types"
)

type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) Write(w io.Writer, sim types.Simulation, format types.OutputFormat) error {
	var err error
	switch format {
	case types.OutputFormatJSON, "":
		err = writeJSON(w, sim)
	case types.OutputFormatYAML:
		err = writeYAML(w, sim)
	case types.OutputFormatText:
		err = writeText(w, sim)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

func (a ReportFileAdapter) WriteFile(path string, sim types.Simulation, format types.OutputFormat) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report file").
			WithCause(err)
	}
	if err := a.Write(file, sim, format); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close report file").
			WithCause(err)
	}
	return nil
}

func writeJSON(w io.Writer, sim types.Simulation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	// "->" must stay readable in version strings.
	encoder.SetEscapeHTML(false)
	return encoder.Encode(sim)
}

func writeYAML(w io.Writer, sim types.Simulation) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sim); err != nil {
		return err
	}
	return encoder.Close()
}

func writeText(w io.Writer, sim types.Simulation) error {
	for _, update := range sim.Updates {
		level := "unclassified"
		score := "-"
		if update.RiskScore != nil {
			level = string(types.LevelForScore(*update.RiskScore))
			score = fmt.Sprintf("%.2f", *update.RiskScore)
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s (risk=%s %s)\n", update.Name, update.Current, update.New, score, level); err != nil {
			return err
		}
		for _, risk := range update.Risks {
			if _, err := fmt.Fprintf(w, "  - %s\n", risk); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "summary: total=%d high=%d medium=%d\n", sim.Summary.Total, sim.Summary.HighRisk, sim.Summary.MediumRisk)
	return err
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
