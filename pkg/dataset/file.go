package dataset

import (
	"fmt"
	"os"

	"github.com/modelaudit/modelaudit/pkg/jsonutil"
)

// loadFile decodes a JSON array of pool items from path.
func loadFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pool file: %w", err)
	}
	defer f.Close()

	var items []T
	if err := jsonutil.UnmarshalRead(f, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}

// KnowledgeFileLoader returns a loader that reads a JSON array of
// multiple-choice items from path, e.g. an exported MMLU split.
func KnowledgeFileLoader(path string) func() ([]MultipleChoiceItem, error) {
	return func() ([]MultipleChoiceItem, error) {
		return loadFile[MultipleChoiceItem](path)
	}
}

// TruthfulnessFileLoader returns a loader that reads truthfulness
// items from path.
func TruthfulnessFileLoader(path string) func() ([]TruthfulnessItem, error) {
	return func() ([]TruthfulnessItem, error) {
		return loadFile[TruthfulnessItem](path)
	}
}

// CommonsenseFileLoader returns a loader that reads continuation
// items from path.
func CommonsenseFileLoader(path string) func() ([]ContinuationItem, error) {
	return func() ([]ContinuationItem, error) {
		return loadFile[ContinuationItem](path)
	}
}
