package types

import "strings"

type SourceKind string

const (
	SourceKindFile        SourceKind = "file"
	SourceKindLocal       SourceKind = "local"
	SourceKindDebootstrap SourceKind = "debootstrap"
	SourceKindContainer   SourceKind = "container"
)

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatText OutputFormat = "text"
)

type RiskLevel string

const (
	RiskLevelNone   RiskLevel = "none"
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Rank orders levels for gate comparisons (none=0, high=3).
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	default:
		return 0
	}
}

// LevelForScore buckets a score with the same thresholds as Summary.
func LevelForScore(score float64) RiskLevel {
	switch {
	case score >= HighRiskThreshold:
		return RiskLevelHigh
	case score >= MediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// ParseRiskLevel accepts gate names case-insensitively. An empty value
// means no gate.
func ParseRiskLevel(value string) (RiskLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return RiskLevelNone, true
	case "low":
		return RiskLevelLow, true
	case "medium":
		return RiskLevelMedium, true
	case "high":
		return RiskLevelHigh, true
	default:
		return "", false
	}
}

type VersionDirection string

const (
	VersionDirectionUpgrade   VersionDirection = "upgrade"
	VersionDirectionDowngrade VersionDirection = "downgrade"
	VersionDirectionSame      VersionDirection = "same"
	VersionDirectionUnknown   VersionDirection = "unknown"
)
