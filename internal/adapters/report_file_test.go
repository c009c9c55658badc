package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgforecaster/internal/types"
)

func sampleSimulation() types.Simulation {
	return types.Simulation{
		Updates: []types.PackageUpdate{
			{
				Name:      "openssl",
				Current:   "3.0.2",
				New:       "3.0.13",
				Risks:     []string{"openssl is critical system package"},
				RiskScore: types.ScorePtr(0.9),
			},
			{
				Name:      "foo",
				Current:   "unknown",
				New:       "some-opaque-text",
				Risks:     []string{"recommended: test before deploy"},
				RiskScore: types.ScorePtr(0.2),
			},
		},
		Summary: types.Summary{Total: 2, HighRisk: 1},
	}
}

func TestReportFileAdapterJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().Write(&buf, sampleSimulation(), types.OutputFormatJSON))
	assert.JSONEq(t, `{
		"updates": [
			{"name": "openssl", "current": "3.0.2", "new": "3.0.13", "risks": ["openssl is critical system package"], "risk_score": 0.9},
			{"name": "foo", "current": "unknown", "new": "some-opaque-text", "risks": ["recommended: test before deploy"], "risk_score": 0.2}
		],
		"summary": {"total": 2, "highRisk": 1, "mediumRisk": 0}
	}`, buf.String())
}

func TestReportFileAdapterJSONKeepsArrows(t *testing.T) {
	sim := types.Simulation{
		Updates: []types.PackageUpdate{{Name: "a", Current: "1", New: "2 -> 3", Risks: []string{}}},
		Summary: types.Summary{Total: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().Write(&buf, sim, types.OutputFormatJSON))
	assert.Contains(t, buf.String(), `"new": "2 -> 3"`)
}

func TestReportFileAdapterText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().Write(&buf, sampleSimulation(), types.OutputFormatText))
	want := "openssl 3.0.2 -> 3.0.13 (risk=0.90 high)\n" +
		"  - openssl is critical system package\n" +
		"foo unknown -> some-opaque-text (risk=0.20 low)\n" +
		"  - recommended: test before deploy\n" +
		"summary: total=2 high=1 medium=0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected text report (-want +got):\n%s", diff)
	}
}

func TestReportFileAdapterUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportFileAdapter().Write(&buf, sampleSimulation(), "xml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestReportRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format types.OutputFormat
	}{
		{name: "json", file: "report.json", format: types.OutputFormatJSON},
		{name: "yaml", file: "report.yaml", format: types.OutputFormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", tt.file)
			require.NoError(t, NewReportFileAdapter().WriteFile(path, sampleSimulation(), tt.format))

			got, err := NewReportReaderAdapter().ReadReport(path)
			require.NoError(t, err)
			if diff := cmp.Diff(sampleSimulation(), got); diff != "" {
				t.Fatalf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReportYAMLFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().Write(&buf, sampleSimulation(), types.OutputFormatYAML))
	assert.Contains(t, buf.String(), "highRisk: 1")
	assert.Contains(t, buf.String(), "risk_score: 0.9")
}

func TestReportReaderAdapterErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0644))

	tests := []struct {
		name     string
		path     string
		wantCode errbuilder.ErrCode
	}{
		{name: "empty path", path: "", wantCode: errbuilder.CodeInvalidArgument},
		{name: "missing", path: filepath.Join(dir, "missing.json"), wantCode: errbuilder.CodeNotFound},
		{name: "malformed", path: broken, wantCode: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReportReaderAdapter().ReadReport(tt.path)
			require.Error(t, err)
			if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected error code (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReportReaderAdapterEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"summary":{"total":0,"highRisk":0,"mediumRisk":0}}`), 0644))

	got, err := NewReportReaderAdapter().ReadReport(path)
	require.NoError(t, err)
	assert.NotNil(t, got.Updates)
	assert.Empty(t, got.Updates)
}
