package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/scoring"
	"github.com/modelaudit/modelaudit/pkg/testutil"
)

func TestGenerateHeaderStats(t *testing.T) {
	records := []finding.Vulnerability{
		scoring.Classify("test_prompt_injection_basic", false),
		scoring.Classify("test_math_reasoning", true),
	}

	out := Generate(records)

	assert.Contains(t, out, "AI SAFETY VULNERABILITY REPORT")
	assert.Regexp(t, `Report ID: RPT-[0-9a-f-]{36}`, out)
	assert.Contains(t, out, "Aggregate Security Score: 4.75/10.0")
	assert.Contains(t, out, "Tests Run: 2 | Passed: 1 | Failed: 1")
	assert.Contains(t, out, "Pass Rate: 50.0%")
}

func TestGenerateSeverityBreakdownExcludesPass(t *testing.T) {
	records := []finding.Vulnerability{
		scoring.Classify("test_prompt_injection_basic", false), // critical
		scoring.Classify("test_gender_bias_hiring", false),     // medium
		scoring.Classify("test_math_reasoning", true),          // pass
	}

	out := Generate(records)

	assert.Contains(t, out, "CRITICAL: 1 vulnerabilities")
	assert.Contains(t, out, "MEDIUM: 1 vulnerabilities")
	assert.NotContains(t, out, "PASS:")
	assert.NotContains(t, out, "HIGH:")
}

func TestGenerateDetailSections(t *testing.T) {
	records := []finding.Vulnerability{
		scoring.Classify("test_prompt_injection_basic", false),
		scoring.Classify("test_pii_generation_refusal", false),
		scoring.Classify("test_stereotype_professions", false),
	}

	out := Generate(records)

	// Fixed section order: critical, then high, then medium.
	ci := strings.Index(out, "CRITICAL VULNERABILITIES")
	hi := strings.Index(out, "HIGH VULNERABILITIES")
	mi := strings.Index(out, "MEDIUM VULNERABILITIES")
	require.NotEqual(t, -1, ci)
	require.NotEqual(t, -1, hi)
	require.NotEqual(t, -1, mi)
	assert.Less(t, ci, hi)
	assert.Less(t, hi, mi)

	// Per-record fields appear.
	assert.Contains(t, out, "test_prompt_injection_basic")
	assert.Contains(t, out, "Score: 9.5/10.0")
	assert.Contains(t, out, "Model executes arbitrary instructions from user input")
	// Remediation steps rendered one per indented line.
	assert.Contains(t, out, "  1. Implement input validation and sanitization")
	assert.Contains(t, out, "  2. Use instruction hierarchy (system > assistant > user)")
}

func TestGenerateLowNeverDetailed(t *testing.T) {
	low := finding.Vulnerability{
		TestID:      "test_minor_leak",
		Severity:    finding.Low,
		Score:       2.0,
		Description: "minor information disclosure",
		Impact:      "limited",
		Remediation: "tighten output filter",
		ID:          scoring.RecordID("test_minor_leak"),
	}

	out := Generate([]finding.Vulnerability{low})

	assert.Contains(t, out, "LOW: 1 vulnerabilities")
	assert.NotContains(t, out, "LOW VULNERABILITIES")
	assert.NotContains(t, out, "minor information disclosure")
}

func TestGenerateEmptyInput(t *testing.T) {
	var out string
	testutil.AssertNoPanic(t, "generate with no records", func() {
		out = Generate(nil)
	})

	// Header score keeps its two decimals even at zero.
	assert.Contains(t, out, "Aggregate Security Score: 0.00/10.0")
	assert.Contains(t, out, "Report ID: RPT-")
	assert.Contains(t, out, "Tests Run: 0 | Passed: 0 | Failed: 0")
	assert.Contains(t, out, "Pass Rate: 0.0%")
	assert.NotContains(t, out, "VULNERABILITIES")
}

func TestGenerateAllPassed(t *testing.T) {
	records := []finding.Vulnerability{
		scoring.Classify("test_a", true),
		scoring.Classify("test_b", true),
	}

	out := Generate(records)

	assert.Contains(t, out, "Pass Rate: 100.0%")
	assert.NotContains(t, out, "VULNERABILITIES")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	records := []finding.Vulnerability{scoring.Classify("test_prompt_injection_basic", false)}

	require.NoError(t, WriteFile(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CRITICAL VULNERABILITIES")
}

func TestWriteFilePropagatesIOError(t *testing.T) {
	// Parent directory does not exist; the os error must surface as-is.
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "report.txt"), nil)
	assert.Error(t, err)
}

func TestNewRunIDUnique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.True(t, strings.HasPrefix(a, "RPT-"))
	assert.NotEqual(t, a, b)
}
