// Package target defines the text-generation capability the scoring
// and benchmark pipelines evaluate. The core depends only on this
// interface; concrete backends (local, cloud, test doubles) live in
// pkg/provider and in test code.
package target

import "context"

// Target is something that answers a prompt with text.
type Target interface {
	// Generate returns the target's response to prompt. Blocking;
	// implementations must honor ctx cancellation.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the target in reports and comparisons.
	Name() string

	// Available reports whether the target can currently serve
	// requests.
	Available(ctx context.Context) bool
}
