package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pkgforecaster/internal/types"
)

// Forecaster runs extraction, classification and aggregation over one
// captured simulation.
type Forecaster struct {
	Classifier RiskClassifier
}

func NewForecaster() Forecaster {
	return Forecaster{Classifier: NewRiskClassifier()}
}

// Forecast is total: any text, including empty or binary noise, produces a
// valid Simulation. Output order follows the order of the matches in text.
func (f Forecaster) Forecast(ctx context.Context, text string) types.Simulation {
	records := ExtractRecords(text)
	sim := types.NewSimulation()
	for _, record := range records {
		sim.Updates = append(sim.Updates, f.Classifier.Classify(ctx, record))
	}
	sim.Summary = Summarize(sim.Updates)
	log.Ctx(ctx).Debug().
		Int("updates", sim.Summary.Total).
		Int("high", sim.Summary.HighRisk).
		Int("medium", sim.Summary.MediumRisk).
		Msg("simulation classified")
	return sim
}
