package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgforecaster/internal/core"
	"pkgforecaster/internal/types"
)

const defaultInspectTop = 5

// Inspect re-reads a saved report, checks its summary against the updates
// and lists the riskiest packages and any version downgrades.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	reportPath := strings.TrimSpace(req.ReportPath)
	if reportPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is required")
	}
	sim, err := s.ReportReader.ReadReport(reportPath)
	if err != nil {
		return InspectResult{}, err
	}

	recomputed := core.Summarize(sim.Updates)
	result := InspectResult{
		Stored:     sim.Summary,
		Recomputed: recomputed,
		Consistent: recomputed == sim.Summary,
		LowRisk:    countLevel(sim.Updates, types.RiskLevelLow),
		Top:        topUpdates(sim.Updates, req.Top),
	}
	for _, update := range sim.Updates {
		if s.Versions.Direction(update.Current, update.New) == types.VersionDirectionDowngrade {
			result.Downgrades = append(result.Downgrades, update)
		}
	}
	return result, nil
}

func countLevel(updates []types.PackageUpdate, level types.RiskLevel) int {
	count := 0
	for _, update := range updates {
		if update.RiskScore != nil && types.LevelForScore(*update.RiskScore) == level {
			count++
		}
	}
	return count
}

// topUpdates returns the n highest scored updates. Ties keep report order.
func topUpdates(updates []types.PackageUpdate, n int) []types.PackageUpdate {
	if n <= 0 {
		n = defaultInspectTop
	}
	ordered := append([]types.PackageUpdate(nil), updates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score() > ordered[j].Score()
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}
