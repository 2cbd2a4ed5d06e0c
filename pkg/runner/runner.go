// Package runner executes demo, sampled and full grading passes over
// the academic item pools against a target capability. All grading is
// sequential; progress is reported after every item so callers can
// checkpoint and cooperatively abort between items.
package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/modelaudit/modelaudit/pkg/dataset"
	"github.com/modelaudit/modelaudit/pkg/target"
)

// Mode selects which item-pool slice is graded.
type Mode string

const (
	// ModeDemo grades the three built-in curated items per pool.
	ModeDemo Mode = "demo"

	// ModeSample grades a uniform random subset of the external pool.
	ModeSample Mode = "sample"

	// ModeFull grades every item in the external pool.
	ModeFull Mode = "full"
)

// ErrConfiguration indicates the runner cannot be constructed as
// requested: an unknown mode, a missing sample size, or a mode that
// needs an external pool whose loader is not registered. Raised at
// construction so partial progress is never discarded mid-run.
var ErrConfiguration = errors.New("runner: invalid configuration")

// ProgressFunc receives a checkpoint after each graded item: items
// done so far, total items in this pass, and the running metric.
type ProgressFunc func(done, total int, metric float64)

// Config controls one benchmark pass.
type Config struct {
	// Mode is demo, sample or full.
	Mode Mode

	// SampleSize is the number of items drawn in sample mode.
	SampleSize int

	// Seed makes sample-mode draws reproducible. Zero means seed from
	// the clock (non-reproducible, matching historical behavior).
	Seed int64

	// RatePerSec throttles target calls. Zero means unlimited.
	RatePerSec float64

	// Progress is invoked after each graded item. Optional.
	Progress ProgressFunc
}

// Result is the outcome of one grading pass.
type Result struct {
	// Metric is accuracy (knowledge, commonsense) or the truthfulness
	// score, in [0, 1].
	Metric float64 `json:"metric"`

	// ItemsTested is how many items were graded.
	ItemsTested int `json:"items_tested"`

	// TotalAvailable is the full pool size; zero in demo mode.
	TotalAvailable int `json:"total_available,omitempty"`

	// ModeLabel is "demo", "full" or "sample_<k>".
	ModeLabel string `json:"mode"`
}

// AllResults bundles one pass over every pool kind.
type AllResults struct {
	Knowledge    Result `json:"knowledge"`
	Truthfulness Result `json:"truthfulness"`
	Commonsense  Result `json:"commonsense"`
}

// Runner grades item pools against one target.
type Runner struct {
	target  target.Target
	cfg     Config
	rng     *rand.Rand
	limiter *rate.Limiter
}

// New validates cfg and builds a runner. Sample and full modes need
// all three pool loaders registered up front: RunAll grades every
// kind, and a loader discovered missing mid-run would throw away the
// progress already made.
func New(t target.Target, cfg Config) (*Runner, error) {
	switch cfg.Mode {
	case ModeDemo:
	case ModeSample:
		if cfg.SampleSize <= 0 {
			return nil, fmt.Errorf("%w: sample mode needs a positive sample size", ErrConfiguration)
		}
		if err := poolsRegistered(); err != nil {
			return nil, err
		}
	case ModeFull:
		if err := poolsRegistered(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, cfg.Mode)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &Runner{
		target: t,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	if cfg.RatePerSec > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}
	return r, nil
}

func poolsRegistered() error {
	if !dataset.KnowledgeAvailable() {
		return fmt.Errorf("%w: knowledge pool: %s", ErrConfiguration, dataset.ErrPoolUnavailable)
	}
	if !dataset.TruthfulnessAvailable() {
		return fmt.Errorf("%w: truthfulness pool: %s", ErrConfiguration, dataset.ErrPoolUnavailable)
	}
	if !dataset.CommonsenseAvailable() {
		return fmt.Errorf("%w: commonsense pool: %s", ErrConfiguration, dataset.ErrPoolUnavailable)
	}
	return nil
}

// modeLabel renders the result label for this configuration.
func (r *Runner) modeLabel() string {
	switch r.cfg.Mode {
	case ModeSample:
		return fmt.Sprintf("sample_%d", r.cfg.SampleSize)
	case ModeFull:
		return "full"
	default:
		return "demo"
	}
}

// sampleIndices draws min(k, total) distinct indices uniformly without
// replacement, or every index in order for full mode.
func (r *Runner) sampleIndices(total int) []int {
	if r.cfg.Mode == ModeFull {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	k := r.cfg.SampleSize
	if k > total {
		k = total
	}
	return r.rng.Perm(total)[:k]
}

// generate issues one paced target call.
func (r *Runner) generate(ctx context.Context, prompt string) (string, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return r.target.Generate(ctx, prompt)
}

// checkpoint reports progress after one graded item.
func (r *Runner) checkpoint(done, total, correct int) {
	if r.cfg.Progress != nil {
		r.cfg.Progress(done, total, float64(correct)/float64(done))
	}
}

// RunAll grades every pool kind and bundles the results.
func (r *Runner) RunAll(ctx context.Context) (AllResults, error) {
	var all AllResults
	var err error

	if all.Knowledge, err = r.RunKnowledge(ctx); err != nil {
		return all, err
	}
	if all.Truthfulness, err = r.RunTruthfulness(ctx); err != nil {
		return all, err
	}
	if all.Commonsense, err = r.RunCommonsense(ctx); err != nil {
		return all, err
	}
	return all, nil
}
