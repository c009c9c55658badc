package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgforecaster/internal/types"
)

const gateExceededMsg = "upgrade risk threshold exceeded"

// Forecast captures one simulation, classifies it and writes the report.
// When the risk gate trips the full result is still returned alongside a
// FailedPrecondition error.
func (s Service) Forecast(ctx context.Context, req ForecastRequest) (ForecastResult, error) {
	format, err := parseFormat(req.Format)
	if err != nil {
		return ForecastResult{}, err
	}
	gate, ok := types.ParseRiskLevel(req.FailOn)
	if !ok {
		return ForecastResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported risk gate: %s", req.FailOn))
	}
	source, err := s.Sources(req.Source)
	if err != nil {
		return ForecastResult{}, err
	}

	text, err := source.Capture(ctx)
	if err != nil {
		return ForecastResult{}, err
	}
	sim := s.Forecaster.Forecast(ctx, text)
	log.Ctx(ctx).Info().
		Str("source", source.Name()).
		Int("total", sim.Summary.Total).
		Int("high", sim.Summary.HighRisk).
		Int("medium", sim.Summary.MediumRisk).
		Msg("simulation forecast")

	result := ForecastResult{
		Source:     source.Name(),
		Simulation: sim,
		OutputPath: strings.TrimSpace(req.OutputPath),
		Gate:       gate,
	}
	if result.OutputPath == "" {
		err = s.ReportWriter.Write(s.Stdout, sim, format)
	} else {
		err = s.ReportWriter.WriteFile(result.OutputPath, sim, format)
	}
	if err != nil {
		return result, err
	}

	if worst, tripped := gateTripped(sim, gate); tripped {
		result.GateTripped = true
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s: %s update at or above %s", gateExceededMsg, worst, gate))
	}
	return result, nil
}

// gateTripped reports the worst level found when it reaches gate. A gate
// of none never trips.
func gateTripped(sim types.Simulation, gate types.RiskLevel) (types.RiskLevel, bool) {
	if gate.Rank() == 0 {
		return "", false
	}
	worst := types.RiskLevelNone
	for _, update := range sim.Updates {
		if update.RiskScore == nil {
			continue
		}
		level := types.LevelForScore(*update.RiskScore)
		if level.Rank() > worst.Rank() {
			worst = level
		}
	}
	return worst, worst.Rank() >= gate.Rank()
}
