package app

import "pkgforecaster/internal/types"

type SourceRequest struct {
	Kind        types.SourceKind
	File        string
	Release     string
	Mirror      string
	Image       string
	DistUpgrade bool
}

type ForecastRequest struct {
	Source     SourceRequest
	Format     string
	OutputPath string
	FailOn     string
}

type ForecastResult struct {
	Source      string
	Simulation  types.Simulation
	OutputPath  string
	Gate        types.RiskLevel
	GateTripped bool
}

type ForecastFilesRequest struct {
	Files     []string
	Workers   int
	OutputDir string
	Format    string
}

type FileForecast struct {
	Path       string
	ReportPath string
	Simulation types.Simulation
}

type ForecastFilesResult struct {
	Forecasts []FileForecast
}

type InspectRequest struct {
	ReportPath string
	Top        int
}

type InspectResult struct {
	Stored     types.Summary
	Recomputed types.Summary
	Consistent bool
	LowRisk    int
	Top        []types.PackageUpdate
	Downgrades []types.PackageUpdate
}

type WatchRequest struct {
	File string
}
