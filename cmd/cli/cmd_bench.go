package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelaudit/modelaudit/pkg/config"
	"github.com/modelaudit/modelaudit/pkg/dataset"
	"github.com/modelaudit/modelaudit/pkg/input"
	"github.com/modelaudit/modelaudit/pkg/jsonutil"
	"github.com/modelaudit/modelaudit/pkg/runner"
	"github.com/modelaudit/modelaudit/pkg/ui"
)

func runBench() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fatal("%v", err)
	}

	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor)

	ms := &input.ModelSource{Models: cfg.Models, ListFile: cfg.ListFile, Stdin: cfg.StdinInput}
	model, err := ms.GetSingleModel()
	if err != nil {
		fatal("%v", err)
	}

	ui.PrintBanner()
	ui.PrintSection("Capability Benchmark")
	ui.PrintConfigLine("Model", model)
	ui.PrintConfigLine("Provider", cfg.Provider)
	ui.PrintConfigLine("Mode", cfg.Mode)
	if cfg.Mode == "sample" {
		ui.PrintConfigLine("Sample Size", fmt.Sprintf("%d", cfg.SampleSize))
		if cfg.Seed != 0 {
			ui.PrintConfigLine("Seed", fmt.Sprintf("%d", cfg.Seed))
		}
	}

	registerDatasets(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tgt, err := buildTarget(model, providerFlags{
		provider:    cfg.Provider,
		ollamaURL:   cfg.OllamaURL,
		apiBase:     cfg.OpenAIBaseURL,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     int(cfg.Timeout.Seconds()),
		retries:     cfg.Retries,
	})
	if err != nil {
		fatal("%v", err)
	}
	if !tgt.Available(ctx) {
		fatal("model %s is not reachable via %s", model, cfg.Provider)
	}

	var all runner.AllResults
	passes := []struct {
		title string
		run   func(*runner.Runner, context.Context) (runner.Result, error)
		slot  *runner.Result
	}{
		{"knowledge", (*runner.Runner).RunKnowledge, &all.Knowledge},
		{"truthfulness", (*runner.Runner).RunTruthfulness, &all.Truthfulness},
		{"commonsense", (*runner.Runner).RunCommonsense, &all.Commonsense},
	}

	for _, pass := range passes {
		progress := ui.NewProgress(pass.title, "q")
		r, err := runner.New(tgt, runner.Config{
			Mode:       runner.Mode(cfg.Mode),
			SampleSize: cfg.SampleSize,
			Seed:       cfg.Seed,
			RatePerSec: float64(cfg.RateLimit),
			Progress:   progress.Update,
		})
		if err != nil {
			fatal("%v", err)
		}

		result, err := pass.run(r, ctx)
		if err != nil {
			fatal("%s pass failed: %v", pass.title, err)
		}
		progress.Done(result.ItemsTested, result.Metric, result.ModeLabel)
		*pass.slot = result
	}

	data, err := jsonutil.MarshalIndent(all, "  ")
	if err != nil {
		fatal("encode results: %v", err)
	}
	if err := writeArtifact(cfg.OutputFile, string(data)); err != nil {
		fatal("write failed: %v", err)
	}
}

// registerDatasets wires file-backed pools when the config names them.
// Demo mode works without any; sample and full modes fail at runner
// construction if a pool is missing.
func registerDatasets(cfg *config.Config) {
	if cfg.KnowledgeFile != "" {
		dataset.RegisterKnowledge(dataset.KnowledgeFileLoader(cfg.KnowledgeFile))
	}
	if cfg.TruthfulnessFile != "" {
		dataset.RegisterTruthfulness(dataset.TruthfulnessFileLoader(cfg.TruthfulnessFile))
	}
	if cfg.CommonsenseFile != "" {
		dataset.RegisterCommonsense(dataset.CommonsenseFileLoader(cfg.CommonsenseFile))
	}
}
