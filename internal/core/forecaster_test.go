package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgforecaster/internal/types"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(root, "fixtures", name))
	require.NoError(t, err)
	return string(data)
}

func TestForecastFixture(t *testing.T) {
	sim := NewForecaster().Forecast(t.Context(), loadFixture(t, "apt-simulate-upgrade.txt"))

	if diff := cmp.Diff(types.Summary{Total: 7, HighRisk: 3, MediumRisk: 2}, sim.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}

	names := make([]string, 0, len(sim.Updates))
	scores := map[string]float64{}
	for _, update := range sim.Updates {
		names = append(names, update.Name)
		scores[update.Name] = update.Score()
	}
	wantNames := []string{"libc6", "openssl", "systemd", "curl", "libcurl4", "python3-yaml", "tzdata"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("unexpected update order (-want +got):\n%s", diff)
	}
	wantScores := map[string]float64{
		"libc6":        0.9,
		"openssl":      0.9,
		"systemd":      0.9,
		"curl":         0.2,
		"libcurl4":     0.7,
		"python3-yaml": 0.7,
		"tzdata":       0.2,
	}
	if diff := cmp.Diff(wantScores, scores); diff != "" {
		t.Fatalf("unexpected scores (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{
		"systemd is critical system package",
		"major version change detected",
	}, sim.Updates[2].Risks)
}

func TestForecastNoRecords(t *testing.T) {
	inputs := []string{
		"",
		loadFixture(t, "apt-simulate-noop.txt"),
		"\xff\xfe\x00 Inst",
	}
	for _, input := range inputs {
		sim := NewForecaster().Forecast(t.Context(), input)
		assert.Empty(t, sim.Updates)
		assert.NotNil(t, sim.Updates)
		assert.Equal(t, types.Summary{}, sim.Summary)
	}
}

func TestForecastSummaryInvariants(t *testing.T) {
	inputs := []string{
		loadFixture(t, "apt-simulate-upgrade.txt"),
		"Inst openssl (1.1.1 -> 3.0.2)\nInst foo (bar)\nInst a (1 -> 1)",
		strings.Repeat("Inst libfoo (1.0 -> 2.0)\n", 25),
	}
	for _, input := range inputs {
		sim := NewForecaster().Forecast(t.Context(), input)
		require.Equal(t, len(sim.Updates), sim.Summary.Total)
		require.LessOrEqual(t, sim.Summary.HighRisk+sim.Summary.MediumRisk, sim.Summary.Total)
	}
}

func TestForecastCriticalPackageProperty(t *testing.T) {
	sim := NewForecaster().Forecast(t.Context(), "Inst libopenssl-dev (3.0 -> 3.0.1)\nInst openssl (1.1.1 -> 3.0.2)")
	for _, update := range sim.Updates {
		assert.GreaterOrEqual(t, update.Score(), 0.9)
		found := false
		for _, risk := range update.Risks {
			if strings.Contains(risk, "openssl") {
				found = true
			}
		}
		assert.True(t, found, "missing openssl annotation for %s", update.Name)
	}
}

func TestForecastIsDeterministic(t *testing.T) {
	text := loadFixture(t, "apt-simulate-upgrade.txt")
	forecaster := NewForecaster()
	first, err := json.Marshal(forecaster.Forecast(t.Context(), text))
	require.NoError(t, err)
	second, err := json.Marshal(forecaster.Forecast(t.Context(), text))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEmptySimulationSerialization(t *testing.T) {
	data, err := json.Marshal(types.NewSimulation())
	require.NoError(t, err)
	assert.JSONEq(t, `{"updates":[],"summary":{"total":0,"highRisk":0,"mediumRisk":0}}`, string(data))
}

func TestUnclassifiedUpdateOmitsScore(t *testing.T) {
	data, err := json.Marshal(types.PackageUpdate{Name: "foo", Current: "1", New: "2", Risks: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "risk_score")
}
