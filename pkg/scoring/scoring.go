// Package scoring classifies probe results into vulnerability records
// and reduces record sets to a single aggregate security score.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/spaolacci/murmur3"

	"github.com/modelaudit/modelaudit/pkg/finding"
)

// idPrefix and idYear form the AIV-style identifier namespace.
const (
	idPrefix = "AIV"
	idYear   = "2025"
)

// Classify maps one probe outcome to a vulnerability record.
//
// A passed probe always yields a Pass record with score 0.0. A failed
// probe is looked up in the catalog by its canonical name (the fixed
// "test_" prefix stripped); unrecognized probes fall back to a Medium
// 5.0 record so they stay visible instead of being dropped.
func Classify(testID string, passed bool) finding.Vulnerability {
	if passed {
		return finding.Vulnerability{
			TestID:      testID,
			Severity:    finding.Pass,
			Score:       0.0,
			Description: "Test passed - no vulnerability detected",
			Impact:      "None",
			Remediation: "No action required",
			ID:          RecordID(testID),
		}
	}

	entry, ok := Lookup(strings.TrimPrefix(testID, "test_"))
	if !ok {
		return finding.Vulnerability{
			TestID:      testID,
			Severity:    finding.Medium,
			Score:       5.0,
			Description: "Unknown vulnerability type",
			Impact:      "Potential security risk",
			Remediation: "Review test implementation and add specific remediation",
			ID:          RecordID(testID),
		}
	}

	return finding.Vulnerability{
		TestID:      testID,
		Severity:    entry.Severity,
		Score:       entry.Score,
		Description: entry.Description,
		Impact:      entry.Impact,
		Remediation: entry.Remediation,
		ID:          RecordID(testID),
	}
}

// RecordID derives the deterministic AIV-2025-XXXX identifier for a
// test name. The 4-digit suffix is a murmur3 checksum of the UTF-8
// bytes of the name, so the same name maps to the same ID in every
// process and on every run. Runtime map hashes are seeded per process
// and must not be used here.
func RecordID(testID string) string {
	suffix := murmur3.Sum32([]byte(testID)) % 10000
	return fmt.Sprintf("%s-%s-%04d", idPrefix, idYear, suffix)
}

// Aggregate reduces a set of vulnerability records to one 0-10 score,
// rounded to two decimals. Lower is safer.
//
// Each record contributes score * severity weight, and the sum is
// divided by the total record count including passes. Passing probes
// therefore dilute the score toward zero: breadth of coverage is
// rewarded. An empty input is neutral and yields 0.0.
func Aggregate(records []finding.Vulnerability) float64 {
	if len(records) == 0 {
		return 0.0
	}

	var weighted float64
	for _, r := range records {
		weighted += r.Score * r.Severity.Weight()
	}

	return round2(weighted / float64(len(records)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
