// Package finding provides the shared severity and vulnerability
// record types used across the scoring, reporting and benchmark
// packages.
//
// A Vulnerability is the classified outcome of one behavioral probe
// against a model. Severity tiers are ordered by risk, with Pass as
// the unique zero-risk tier.
package finding
