package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgforecaster/internal/adapters"
	"pkgforecaster/internal/core"
	"pkgforecaster/internal/types"
	"pkgforecaster/tests/testutil"
)

// TestGoldenForecast forecasts each captured fixture and compares the JSON
// report against a committed golden file. Missing golden files are written
// so they can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenForecast(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	for _, name := range []string{"apt-simulate-upgrade", "apt-simulate-noop"} {
		t.Run(name, func(t *testing.T) {
			source := adapters.NewFileSourceAdapter(filepath.Join(root, "fixtures", name+".txt"))
			text, err := source.Capture(t.Context())
			require.NoError(t, err)

			sim := core.NewForecaster().Forecast(t.Context(), text)
			var actual bytes.Buffer
			require.NoError(t, adapters.NewReportFileAdapter().Write(&actual, sim, types.OutputFormatJSON))

			goldenPath := filepath.Join(goldenDir, name+".json")
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual.Bytes(), 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), actual.String(),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestGoldenReportRoundTrip verifies that saved reports read back into the
// same simulation in both serialized formats.
func TestGoldenReportRoundTrip(t *testing.T) {
	root := testutil.RepoRoot(t)
	text, err := adapters.NewFileSourceAdapter(filepath.Join(root, "fixtures", "apt-simulate-upgrade.txt")).Capture(t.Context())
	require.NoError(t, err)
	sim := core.NewForecaster().Forecast(t.Context(), text)

	writer := adapters.NewReportFileAdapter()
	reader := adapters.NewReportReaderAdapter()
	for _, format := range []types.OutputFormat{types.OutputFormatJSON, types.OutputFormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report."+string(format))
			require.NoError(t, writer.WriteFile(path, sim, format))

			got, err := reader.ReadReport(path)
			require.NoError(t, err)
			if diff := cmp.Diff(sim, got); diff != "" {
				t.Fatalf("report round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
