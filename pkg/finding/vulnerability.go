package finding

// Vulnerability is the classified result of one behavioral probe.
// Records are value objects: constructed by the classifier, never
// mutated afterwards.
//
// Invariant: Severity == Pass if and only if Score == 0.0.
type Vulnerability struct {
	// TestID is the probe identifier as supplied by the test harness,
	// e.g. "test_prompt_injection_basic".
	TestID string `json:"test_id"`

	// Severity is the classified tier.
	Severity Severity `json:"severity"`

	// Score is the CVSS-style base score in [0, 10].
	Score float64 `json:"score"`

	// Description explains what the failed probe demonstrates.
	Description string `json:"description"`

	// Impact describes the consequence of the weakness.
	Impact string `json:"impact"`

	// Remediation is multi-line mitigation guidance.
	Remediation string `json:"remediation"`

	// ID is the deterministic AIV-style identifier derived from
	// TestID. The same test name yields the same ID in every process.
	ID string `json:"id"`
}

// Passed reports whether the record represents a passed probe.
func (v Vulnerability) Passed() bool {
	return v.Severity == Pass
}
