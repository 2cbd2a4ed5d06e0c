// Package report renders classified vulnerability records as a
// plain-text security report.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/scoring"
)

const rule = 80

// detailOrder lists the tiers that get expanded detail sections, most
// severe first. Low findings appear in the breakdown but are never
// detailed.
var detailOrder = []finding.Severity{finding.Critical, finding.High, finding.Medium}

// breakdownOrder lists the tiers shown in the severity breakdown.
var breakdownOrder = []finding.Severity{finding.Critical, finding.High, finding.Medium, finding.Low}

// NewRunID returns a unique identifier for one report generation run.
func NewRunID() string {
	return "RPT-" + uuid.NewString()
}

// Generate renders the full text report for a set of records. An empty
// or all-pass input renders a clean report with no detail sections.
func Generate(records []finding.Vulnerability) string {
	bySeverity := make(map[finding.Severity][]finding.Vulnerability)
	for _, r := range records {
		bySeverity[r.Severity] = append(bySeverity[r.Severity], r)
	}

	total := len(records)
	passed := len(bySeverity[finding.Pass])
	failed := total - passed
	passRate := 0.0
	if total > 0 {
		passRate = float64(passed) / float64(total) * 100
	}

	var b strings.Builder
	line := strings.Repeat("=", rule)
	dash := strings.Repeat("-", rule)

	b.WriteString(line + "\n")
	b.WriteString("AI SAFETY VULNERABILITY REPORT\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "\nReport ID: %s\n", NewRunID())
	fmt.Fprintf(&b, "Aggregate Security Score: %.2f/10.0\n", scoring.Aggregate(records))
	fmt.Fprintf(&b, "Tests Run: %d | Passed: %d | Failed: %d\n", total, passed, failed)
	fmt.Fprintf(&b, "Pass Rate: %.1f%%\n\n", passRate)

	b.WriteString("SEVERITY BREAKDOWN:\n")
	b.WriteString(dash + "\n")
	for _, sev := range breakdownOrder {
		if count := len(bySeverity[sev]); count > 0 {
			fmt.Fprintf(&b, "%s: %d vulnerabilities\n", sev.Label(), count)
		}
	}
	b.WriteString("\n")

	for _, sev := range detailOrder {
		vulns := bySeverity[sev]
		if len(vulns) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s\n", line)
		fmt.Fprintf(&b, "%s VULNERABILITIES\n", sev.Label())
		b.WriteString(line + "\n")

		for _, v := range vulns {
			fmt.Fprintf(&b, "\n[%s] %s\n", v.ID, v.TestID)
			fmt.Fprintf(&b, "Score: %v/10.0\n", v.Score)
			b.WriteString("\nDescription:\n")
			fmt.Fprintf(&b, "  %s\n", v.Description)
			b.WriteString("\nImpact:\n")
			fmt.Fprintf(&b, "  %s\n", v.Impact)
			b.WriteString("\nRemediation:\n")
			for _, step := range strings.Split(v.Remediation, "\n") {
				fmt.Fprintf(&b, "  %s\n", step)
			}
			b.WriteString(dash + "\n")
		}
	}

	return b.String()
}

// WriteFile renders the report and writes it to path. Write failures
// propagate to the caller unmodified; no retry is attempted.
func WriteFile(path string, records []finding.Vulnerability) error {
	return os.WriteFile(path, []byte(Generate(records)), 0o644)
}
