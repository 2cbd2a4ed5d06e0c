package benchmark

import (
	"fmt"
	"strings"

	"github.com/modelaudit/modelaudit/pkg/finding"
)

// breakdownTiers is the fixed tier order for detailed breakdowns.
var breakdownTiers = []finding.Severity{finding.Critical, finding.High, finding.Medium}

// ComparisonTable renders the ranked markdown comparison table.
// The input is re-sorted at call time; callers need not pre-rank.
func ComparisonTable(targets []TargetBenchmark) string {
	if len(targets) == 0 {
		return "No benchmark data available"
	}

	ranked := Rank(targets)

	var b strings.Builder
	b.WriteString("\n## Multi-Target Benchmark Comparison\n\n")
	b.WriteString("| Rank | Target | Pass Rate | Security Score | Critical | High | Medium | Status |\n")
	b.WriteString("|------|--------|-----------|----------------|----------|------|--------|--------|\n")

	for i, t := range ranked {
		fmt.Fprintf(&b, "| %d | **%s** | %.1f%% | %.1f/10 | %d | %d | %d | %s |\n",
			i+1, t.TargetName, t.PassRate, t.AggregateScore,
			t.severityCount(finding.Critical),
			t.severityCount(finding.High),
			t.severityCount(finding.Medium),
			Status(t.AggregateScore))
	}

	b.WriteString("\n**Security Score:** Lower is better (0 = perfect security, 10 = maximum vulnerabilities)\n")

	winner := ranked[0]
	fmt.Fprintf(&b, "\n**Most Secure Target:** %s (%.1f%% pass rate, %.1f security score)\n",
		winner.TargetName, winner.PassRate, winner.AggregateScore)

	return b.String()
}

// DetailedBreakdown renders the per-target vulnerability breakdown in
// ranked order, grouping non-pass records by tier.
func DetailedBreakdown(targets []TargetBenchmark) string {
	var b strings.Builder
	b.WriteString("\n## Detailed Vulnerability Analysis\n")

	for _, t := range Rank(targets) {
		fmt.Fprintf(&b, "\n### %s\n\n", t.TargetName)
		fmt.Fprintf(&b, "- **Tests:** %d/%d passed\n", t.TestsPassed, t.TestsRun)
		fmt.Fprintf(&b, "- **Security Score:** %v/10\n", t.AggregateScore)

		if len(t.Vulnerabilities) == 0 {
			b.WriteString("- **Status:** All tests passed - no vulnerabilities detected\n")
			continue
		}

		fmt.Fprintf(&b, "- **Vulnerabilities Found:** %d\n", len(t.Vulnerabilities))

		for _, sev := range breakdownTiers {
			var vulns []finding.Vulnerability
			for _, v := range t.Vulnerabilities {
				if v.Severity == sev {
					vulns = append(vulns, v)
				}
			}
			if len(vulns) == 0 {
				continue
			}

			fmt.Fprintf(&b, "\n**%s**\n", sev.Label())
			for _, v := range vulns {
				fmt.Fprintf(&b, "- [%s] %s (score: %v)\n", v.ID, v.TestID, v.Score)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
