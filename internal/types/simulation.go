package types

// UnknownVersion is recorded when a transition fragment does not carry the
// installed version.
const UnknownVersion = "unknown"

const (
	HighRiskThreshold   = 0.75
	MediumRiskThreshold = 0.4
)

// UpdateRecord is one raw "Inst" match before classification.
type UpdateRecord struct {
	Name       string
	Transition string
}

// PackageUpdate is one upgrade candidate. RiskScore stays nil until the
// record has been classified.
type PackageUpdate struct {
	Name      string   `json:"name" yaml:"name"`
	Current   string   `json:"current" yaml:"current"`
	New       string   `json:"new" yaml:"new"`
	Risks     []string `json:"risks" yaml:"risks"`
	RiskScore *float64 `json:"risk_score,omitempty" yaml:"risk_score,omitempty"`
}

// Score returns the classified score, or 0 for an unclassified update.
func (u PackageUpdate) Score() float64 {
	if u.RiskScore == nil {
		return 0
	}
	return *u.RiskScore
}

type Summary struct {
	Total      int `json:"total" yaml:"total"`
	HighRisk   int `json:"highRisk" yaml:"highRisk"`
	MediumRisk int `json:"mediumRisk" yaml:"mediumRisk"`
}

type Simulation struct {
	Updates []PackageUpdate `json:"updates" yaml:"updates"`
	Summary Summary         `json:"summary" yaml:"summary"`
}

// NewSimulation returns the empty simulation used before any data is
// available.
func NewSimulation() Simulation {
	return Simulation{Updates: []PackageUpdate{}}
}

// ScorePtr is a small helper for building classified updates.
func ScorePtr(value float64) *float64 {
	return &value
}
