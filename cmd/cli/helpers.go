package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/provider"
	"github.com/modelaudit/modelaudit/pkg/scoring"
	"github.com/modelaudit/modelaudit/pkg/target"
	"github.com/modelaudit/modelaudit/pkg/ui"
)

// providerFlags are the backend flags shared by every live-model
// command.
type providerFlags struct {
	provider    string
	ollamaURL   string
	apiBase     string
	apiKey      string
	temperature float64
	maxTokens   int
	timeout     int
	retries     int
}

// buildTarget constructs the chat backend for one model.
func buildTarget(model string, pf providerFlags) (target.Target, error) {
	cfg := provider.Config{
		Temperature: pf.temperature,
		MaxTokens:   pf.maxTokens,
		Timeout:     time.Duration(pf.timeout) * time.Second,
		Retries:     pf.retries,
	}

	switch pf.provider {
	case "ollama":
		return provider.NewOllama(pf.ollamaURL, model, cfg), nil
	case "openai":
		apiKey := pf.apiKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		return provider.NewOpenAI(pf.apiBase, apiKey, model, cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want ollama or openai)", pf.provider)
	}
}

// classifyAll turns raw probe outcomes into severity records, in
// stable test-ID order.
func classifyAll(results map[string]bool) []finding.Vulnerability {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]finding.Vulnerability, 0, len(ids))
	for _, id := range ids {
		records = append(records, scoring.Classify(id, results[id]))
	}
	return records
}

// writeArtifact sends content to path, or stdout when path is empty.
func writeArtifact(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Results written to %s", path))
	return nil
}

// fatal prints the error and exits non-zero.
func fatal(format string, args ...any) {
	ui.PrintError(fmt.Sprintf(format, args...))
	os.Exit(1)
}
