package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelaudit/modelaudit/pkg/dataset"
)

// RunKnowledge grades the knowledge multiple-choice pool.
func (r *Runner) RunKnowledge(ctx context.Context) (Result, error) {
	if r.cfg.Mode == ModeDemo {
		return r.runKnowledgeDemo(ctx)
	}

	items, err := dataset.Knowledge()
	if err != nil {
		return Result{}, err
	}

	indices := r.sampleIndices(len(items))
	correct := 0
	for done, idx := range indices {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		item := items[idx]
		prompt := fmt.Sprintf("%s\n%s\n\nAnswer with the letter:",
			item.Question, letterPrompt(item.Choices))

		response, err := r.generate(ctx, prompt)
		if err != nil {
			return Result{}, err
		}
		if gradeMultipleChoice(response, item.Choices, item.Answer) {
			correct++
		}
		r.checkpoint(done+1, len(indices), correct)
	}

	return Result{
		Metric:         ratio(correct, len(indices)),
		ItemsTested:    len(indices),
		TotalAvailable: len(items),
		ModeLabel:      r.modeLabel(),
	}, nil
}

func (r *Runner) runKnowledgeDemo(ctx context.Context) (Result, error) {
	correct := 0
	for done, item := range demoKnowledge {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		prompt := fmt.Sprintf("%s\nChoices: %s\nAnswer:",
			item.Question, strings.Join(item.Choices, ", "))

		response, err := r.generate(ctx, prompt)
		if err != nil {
			return Result{}, err
		}
		if gradeContainment(response, item.Choices[item.Answer]) {
			correct++
		}
		r.checkpoint(done+1, len(demoKnowledge), correct)
	}

	return Result{
		Metric:      ratio(correct, len(demoKnowledge)),
		ItemsTested: len(demoKnowledge),
		ModeLabel:   r.modeLabel(),
	}, nil
}

// RunTruthfulness grades the truthfulness free-response pool.
func (r *Runner) RunTruthfulness(ctx context.Context) (Result, error) {
	if r.cfg.Mode == ModeDemo {
		return r.runTruthfulnessDemo(ctx)
	}

	items, err := dataset.Truthfulness()
	if err != nil {
		return Result{}, err
	}

	indices := r.sampleIndices(len(items))
	correct := 0
	for done, idx := range indices {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		item := items[idx]
		response, err := r.generate(ctx, item.Question)
		if err != nil {
			return Result{}, err
		}
		if gradeContainment(response, item.BestAnswer) {
			correct++
		}
		r.checkpoint(done+1, len(indices), correct)
	}

	return Result{
		Metric:         ratio(correct, len(indices)),
		ItemsTested:    len(indices),
		TotalAvailable: len(items),
		ModeLabel:      r.modeLabel(),
	}, nil
}

func (r *Runner) runTruthfulnessDemo(ctx context.Context) (Result, error) {
	correct := 0
	for done, item := range demoTruthfulness {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		response, err := r.generate(ctx, item.Question)
		if err != nil {
			return Result{}, err
		}
		if gradeUncertainty(response, item.ExpectUncertainty) {
			correct++
		}
		r.checkpoint(done+1, len(demoTruthfulness), correct)
	}

	return Result{
		Metric:      ratio(correct, len(demoTruthfulness)),
		ItemsTested: len(demoTruthfulness),
		ModeLabel:   r.modeLabel(),
	}, nil
}

// RunCommonsense grades the commonsense continuation pool.
func (r *Runner) RunCommonsense(ctx context.Context) (Result, error) {
	if r.cfg.Mode == ModeDemo {
		return r.runCommonsenseDemo(ctx)
	}

	items, err := dataset.Commonsense()
	if err != nil {
		return Result{}, err
	}

	indices := r.sampleIndices(len(items))
	correct := 0
	for done, idx := range indices {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		item := items[idx]
		prompt := fmt.Sprintf("%s\n\nWhich ending makes most sense?\n%s\n\nAnswer with the letter:",
			item.Context, letterPrompt(item.Endings))

		response, err := r.generate(ctx, prompt)
		if err != nil {
			return Result{}, err
		}
		if gradeMultipleChoice(response, item.Endings, item.Label) {
			correct++
		}
		r.checkpoint(done+1, len(indices), correct)
	}

	return Result{
		Metric:         ratio(correct, len(indices)),
		ItemsTested:    len(indices),
		TotalAvailable: len(items),
		ModeLabel:      r.modeLabel(),
	}, nil
}

func (r *Runner) runCommonsenseDemo(ctx context.Context) (Result, error) {
	correct := 0
	for done, item := range demoCommonsense {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		var endings strings.Builder
		for i, e := range item.Endings {
			fmt.Fprintf(&endings, "%d) %s\n", i+1, e)
		}
		prompt := fmt.Sprintf("%s\n\nWhich ending makes most sense?\n%s\nAnswer with the number:",
			item.Context, endings.String())

		response, err := r.generate(ctx, prompt)
		if err != nil {
			return Result{}, err
		}

		head := response
		if len(head) > headWindow {
			head = head[:headWindow]
		}
		if strings.Contains(head, fmt.Sprintf("%d", item.Label+1)) {
			correct++
		}
		r.checkpoint(done+1, len(demoCommonsense), correct)
	}

	return Result{
		Metric:      ratio(correct, len(demoCommonsense)),
		ItemsTested: len(demoCommonsense),
		ModeLabel:   r.modeLabel(),
	}, nil
}
