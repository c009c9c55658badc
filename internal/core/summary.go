package core

import "pkgforecaster/internal/types"

// Summarize counts updates per risk bucket. Unclassified updates are only
// counted in Total.
func Summarize(updates []types.PackageUpdate) types.Summary {
	summary := types.Summary{Total: len(updates)}
	for _, update := range updates {
		if update.RiskScore == nil {
			continue
		}
		score := *update.RiskScore
		switch {
		case score >= types.HighRiskThreshold:
			summary.HighRisk++
		case score >= types.MediumRiskThreshold:
			summary.MediumRisk++
		}
	}
	return summary
}
