package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/modelaudit/pkg/jsonutil"
)

type exportedDoc struct {
	Benchmarks []struct {
		TargetName      string  `json:"target_name"`
		TestsRun        int     `json:"tests_run"`
		PassRate        float64 `json:"pass_rate"`
		AggregateScore  float64 `json:"aggregate_score"`
		Vulnerabilities []struct {
			TestID   string  `json:"test_id"`
			Severity string  `json:"severity"`
			Score    float64 `json:"score"`
			ID       string  `json:"id"`
		} `json:"vulnerabilities"`
	} `json:"benchmarks"`
	Summary struct {
		ModelsTested int     `json:"models_tested"`
		BestModel    *string `json:"best_model"`
		WorstModel   *string `json:"worst_model"`
	} `json:"summary"`
}

func TestExportJSONSchema(t *testing.T) {
	targets := twoTargets() // target-a 4.75, target-b lower

	data, err := ExportJSON(targets)
	require.NoError(t, err)
	require.True(t, jsonutil.Valid(data))

	var doc exportedDoc
	require.NoError(t, jsonutil.Unmarshal(data, &doc))

	require.Len(t, doc.Benchmarks, 2)
	assert.Equal(t, "target-a", doc.Benchmarks[0].TargetName)
	assert.Equal(t, 2, doc.Benchmarks[0].TestsRun)
	require.Len(t, doc.Benchmarks[0].Vulnerabilities, 1)
	assert.Equal(t, "test_prompt_injection_basic", doc.Benchmarks[0].Vulnerabilities[0].TestID)
	assert.Equal(t, "critical", doc.Benchmarks[0].Vulnerabilities[0].Severity)
	assert.Regexp(t, `^AIV-2025-\d{4}$`, doc.Benchmarks[0].Vulnerabilities[0].ID)

	assert.Equal(t, 2, doc.Summary.ModelsTested)
	require.NotNil(t, doc.Summary.BestModel)
	require.NotNil(t, doc.Summary.WorstModel)
	assert.Equal(t, "target-b", *doc.Summary.BestModel)
	assert.Equal(t, "target-a", *doc.Summary.WorstModel)
}

func TestExportJSONEmptyListNullSummary(t *testing.T) {
	data, err := ExportJSON(nil)
	require.NoError(t, err)

	var doc exportedDoc
	require.NoError(t, jsonutil.Unmarshal(data, &doc))

	assert.Equal(t, 0, doc.Summary.ModelsTested)
	assert.Nil(t, doc.Summary.BestModel)
	assert.Nil(t, doc.Summary.WorstModel)
	assert.Empty(t, doc.Benchmarks)
}

func TestSaveJSONWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results.json")

	require.NoError(t, SaveJSON(path, twoTargets()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, jsonutil.Valid(data))
}

func TestSaveJSONPropagatesIOError(t *testing.T) {
	err := SaveJSON(filepath.Join(t.TempDir(), "no", "such", "dir.json"), nil)
	assert.Error(t, err)
}

func TestHTMLDashboardContent(t *testing.T) {
	out, err := HTMLDashboard(twoTargets())
	require.NoError(t, err)

	assert.Contains(t, out, "<title>AI Safety Benchmark Dashboard</title>")
	assert.Contains(t, out, "Best Target")
	assert.Contains(t, out, "target-b") // winner card
	assert.Contains(t, out, "Average Pass Rate")
	assert.Contains(t, out, "Total Vulnerabilities")
	assert.Contains(t, out, `<span class="badge moderate">Moderate</span>`)
}

func TestHTMLDashboardEmpty(t *testing.T) {
	out, err := HTMLDashboard(nil)
	require.NoError(t, err)

	assert.Contains(t, out, "Benchmark Results")
	assert.NotContains(t, out, "Best Target")
}

func TestSaveHTMLWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")

	require.NoError(t, SaveHTML(path, twoTargets()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}
