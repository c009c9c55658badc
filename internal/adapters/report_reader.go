package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/types"
)

type ReportReaderAdapter struct{}

func NewReportReaderAdapter() ReportReaderAdapter {
	return ReportReaderAdapter{}
}

// ReadReport loads a report written in json or yaml format. The format is
// taken from the file extension; anything else is read as json.
func (a ReportReaderAdapter) ReadReport(path string) (types.Simulation, error) {
	if strings.TrimSpace(path) == "" {
		return types.Simulation{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Simulation{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("report not found").
			WithCause(err)
	}
	sim := types.NewSimulation()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &sim)
	default:
		err = json.Unmarshal(data, &sim)
	}
	if err != nil {
		return types.Simulation{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse report").
			WithCause(err)
	}
	if sim.Updates == nil {
		sim.Updates = []types.PackageUpdate{}
	}
	return sim, nil
}

var _ ports.ReportReaderPort = ReportReaderAdapter{}
