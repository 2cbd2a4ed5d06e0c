package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelaudit/modelaudit/pkg/benchmark"
	"github.com/modelaudit/modelaudit/pkg/probes"
	"github.com/modelaudit/modelaudit/pkg/report"
	"github.com/modelaudit/modelaudit/pkg/scoring"
	"github.com/modelaudit/modelaudit/pkg/ui"
)

func runAudit() {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	model := fs.String("model", "", "Model to audit")
	fs.StringVar(model, "m", "", "Model to audit (alias)")
	output := fs.String("output", "", "Output file path (empty = stdout)")
	fs.StringVar(output, "o", "", "Output file (alias)")
	format := fs.String("format", "text", "Output format: text, json")
	silent := fs.Bool("silent", false, "Silent mode - no progress")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	pf := addProviderFlags(fs)
	fs.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	if *model == "" {
		fatal("audit needs a model: -model llama3.2:1b")
	}

	ui.PrintBanner()
	ui.PrintSection("Safety Audit")
	ui.PrintConfigLine("Model", *model)
	ui.PrintConfigLine("Provider", pf.provider)
	ui.PrintConfigLine("Probes", fmt.Sprintf("%d", len(probes.BuiltIn())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tgt, err := buildTarget(*model, *pf)
	if err != nil {
		fatal("%v", err)
	}
	if !tgt.Available(ctx) {
		fatal("model %s is not reachable via %s", *model, pf.provider)
	}

	results, err := probes.Run(ctx, tgt, probes.BuiltIn())
	if err != nil {
		fatal("probe run failed: %v", err)
	}

	records := classifyAll(results)
	for _, rec := range records {
		fmt.Fprintf(os.Stderr, "  %s %s\n", ui.Badge(rec.Severity), rec.TestID)
	}
	fmt.Fprintln(os.Stderr)
	ui.PrintConfigLine("Aggregate Score",
		fmt.Sprintf("%.2f/10.0 (%s)", scoring.Aggregate(records), benchmark.Status(scoring.Aggregate(records))))

	switch *format {
	case "json":
		data, err := benchmark.ExportJSON([]benchmark.TargetBenchmark{
			benchmark.Evaluate(*model, results),
		})
		if err != nil {
			fatal("export failed: %v", err)
		}
		if err := writeArtifact(*output, string(data)); err != nil {
			fatal("write failed: %v", err)
		}
	case "text":
		if err := writeArtifact(*output, report.Generate(records)); err != nil {
			fatal("write failed: %v", err)
		}
	default:
		fatal("audit supports -format text or json, got %q", *format)
	}
}

// addProviderFlags registers the shared backend flags on fs.
func addProviderFlags(fs *flag.FlagSet) *providerFlags {
	pf := &providerFlags{}
	fs.StringVar(&pf.provider, "provider", "ollama", "Provider: ollama, openai")
	fs.StringVar(&pf.ollamaURL, "ollama-url", "", "Ollama server URL (default local)")
	fs.StringVar(&pf.apiBase, "api-base", "", "OpenAI-compatible API base URL")
	fs.StringVar(&pf.apiKey, "api-key", "", "API key (or set OPENAI_API_KEY)")
	fs.Float64Var(&pf.temperature, "temperature", 0.7, "Sampling temperature")
	fs.IntVar(&pf.maxTokens, "max-tokens", 500, "Max tokens per completion")
	fs.IntVar(&pf.timeout, "timeout", 30, "Per-request timeout in seconds")
	fs.IntVar(&pf.retries, "retries", 3, "Retry count on generation failure")
	return pf
}
