// Package dataset provides the external academic item pools graded by
// the benchmark runner: knowledge multiple-choice (MMLU-style),
// truthfulness free-response (TruthfulQA-style) and commonsense
// continuation (HellaSwag-style).
//
// Pools are loaded through registered loader functions and memoized
// for the process lifetime. There is no invalidation policy; tests use
// ResetCache for isolation.
package dataset

import (
	"errors"
	"fmt"
	"sync"
)

// ErrPoolUnavailable indicates no loader is registered for a requested
// pool. Surfaces at runner construction, never mid-run.
var ErrPoolUnavailable = errors.New("dataset: item pool loader unavailable")

// MultipleChoiceItem is one knowledge question. Answer indexes Choices.
type MultipleChoiceItem struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
}

// TruthfulnessItem is one free-response truthfulness question.
type TruthfulnessItem struct {
	Question   string `json:"question"`
	BestAnswer string `json:"best_answer"`
}

// ContinuationItem is one commonsense scenario. Label indexes Endings.
type ContinuationItem struct {
	Context string   `json:"ctx"`
	Endings []string `json:"endings"`
	Label   int      `json:"label"`
}

// pool memoizes one loader's result for the process lifetime.
type pool[T any] struct {
	mu     sync.Mutex
	loader func() ([]T, error)
	items  []T
	loaded bool
}

func (p *pool[T]) register(loader func() ([]T, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loader = loader
	p.items = nil
	p.loaded = false
}

func (p *pool[T]) available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loader != nil
}

func (p *pool[T]) get(name string) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return p.items, nil
	}
	if p.loader == nil {
		return nil, fmt.Errorf("%w: %s", ErrPoolUnavailable, name)
	}

	items, err := p.loader()
	if err != nil {
		return nil, fmt.Errorf("loading %s pool: %w", name, err)
	}
	p.items = items
	p.loaded = true
	return p.items, nil
}

func (p *pool[T]) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loader = nil
	p.items = nil
	p.loaded = false
}

var (
	knowledgePool    pool[MultipleChoiceItem]
	truthfulnessPool pool[TruthfulnessItem]
	commonsensePool  pool[ContinuationItem]
)

// RegisterKnowledge installs the knowledge pool loader, clearing any
// cached items.
func RegisterKnowledge(loader func() ([]MultipleChoiceItem, error)) {
	knowledgePool.register(loader)
}

// RegisterTruthfulness installs the truthfulness pool loader.
func RegisterTruthfulness(loader func() ([]TruthfulnessItem, error)) {
	truthfulnessPool.register(loader)
}

// RegisterCommonsense installs the commonsense pool loader.
func RegisterCommonsense(loader func() ([]ContinuationItem, error)) {
	commonsensePool.register(loader)
}

// KnowledgeAvailable reports whether a knowledge loader is registered.
func KnowledgeAvailable() bool { return knowledgePool.available() }

// TruthfulnessAvailable reports whether a truthfulness loader is registered.
func TruthfulnessAvailable() bool { return truthfulnessPool.available() }

// CommonsenseAvailable reports whether a commonsense loader is registered.
func CommonsenseAvailable() bool { return commonsensePool.available() }

// Knowledge returns the knowledge pool, loading and caching it on
// first access.
func Knowledge() ([]MultipleChoiceItem, error) {
	return knowledgePool.get("knowledge")
}

// Truthfulness returns the truthfulness pool, loading and caching it
// on first access.
func Truthfulness() ([]TruthfulnessItem, error) {
	return truthfulnessPool.get("truthfulness")
}

// Commonsense returns the commonsense pool, loading and caching it on
// first access.
func Commonsense() ([]ContinuationItem, error) {
	return commonsensePool.get("commonsense")
}

// ResetCache drops all registered loaders and cached pools. Exposed
// for test isolation.
func ResetCache() {
	knowledgePool.reset()
	truthfulnessPool.reset()
	commonsensePool.reset()
}
