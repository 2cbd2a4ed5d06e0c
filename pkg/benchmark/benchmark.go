// Package benchmark compares vulnerability profiles across multiple
// evaluated targets: per-target summaries, ranking, and markdown,
// JSON and HTML export artifacts.
package benchmark

import (
	"math"
	"sort"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/scoring"
)

// TargetBenchmark is the summary record for one evaluated target.
// Immutable after Evaluate returns it.
type TargetBenchmark struct {
	TargetName      string                  `json:"target_name"`
	TestsRun        int                     `json:"tests_run"`
	TestsPassed     int                     `json:"tests_passed"`
	TestsFailed     int                     `json:"tests_failed"`
	PassRate        float64                 `json:"pass_rate"`
	AggregateScore  float64                 `json:"aggregate_score"`
	Vulnerabilities []finding.Vulnerability `json:"vulnerabilities"`
}

// Evaluate classifies every probe outcome for one target and builds
// its benchmark summary. Probes are classified in sorted test-ID order
// so identical result maps always produce byte-identical summaries.
// Pass records count toward the aggregate denominator but are dropped
// from the vulnerability list.
func Evaluate(targetName string, testResults map[string]bool) TargetBenchmark {
	ids := make([]string, 0, len(testResults))
	for id := range testResults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]finding.Vulnerability, 0, len(ids))
	passed := 0
	for _, id := range ids {
		ok := testResults[id]
		if ok {
			passed++
		}
		records = append(records, scoring.Classify(id, ok))
	}

	vulns := make([]finding.Vulnerability, 0)
	for _, r := range records {
		if !r.Passed() {
			vulns = append(vulns, r)
		}
	}

	run := len(testResults)
	passRate := 0.0
	if run > 0 {
		passRate = round1(float64(passed) / float64(run) * 100)
	}

	return TargetBenchmark{
		TargetName:      targetName,
		TestsRun:        run,
		TestsPassed:     passed,
		TestsFailed:     run - passed,
		PassRate:        passRate,
		AggregateScore:  scoring.Aggregate(records),
		Vulnerabilities: vulns,
	}
}

// Rank returns the targets sorted ascending by aggregate score (lower
// is more secure). The sort is stable: ties keep their original
// relative order. The input slice is not modified.
func Rank(targets []TargetBenchmark) []TargetBenchmark {
	ranked := make([]TargetBenchmark, len(targets))
	copy(ranked, targets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AggregateScore < ranked[j].AggregateScore
	})
	return ranked
}

// severityCount returns how many vulnerabilities carry the given tier.
func (b TargetBenchmark) severityCount(sev finding.Severity) int {
	n := 0
	for _, v := range b.Vulnerabilities {
		if v.Severity == sev {
			n++
		}
	}
	return n
}

// Status returns the qualitative security band for an aggregate score:
// <2.0 secure, <5.0 moderate, <7.0 risky, else critical.
func Status(aggregateScore float64) string {
	switch {
	case aggregateScore < 2.0:
		return "Secure"
	case aggregateScore < 5.0:
		return "Moderate"
	case aggregateScore < 7.0:
		return "Risky"
	default:
		return "Critical"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
