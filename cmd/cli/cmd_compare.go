package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelaudit/modelaudit/pkg/benchmark"
	"github.com/modelaudit/modelaudit/pkg/input"
	"github.com/modelaudit/modelaudit/pkg/probes"
	"github.com/modelaudit/modelaudit/pkg/ui"
)

func runCompare() {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	var models input.StringSliceFlag
	fs.Var(&models, "model", "Model name(s) - comma-separated or repeated")
	fs.Var(&models, "m", "Model name(s) (alias)")
	listFile := fs.String("l", "", "File containing model names")
	stdin := fs.Bool("stdin", false, "Read model names from stdin")
	output := fs.String("output", "", "Output file path (empty = stdout)")
	fs.StringVar(output, "o", "", "Output file (alias)")
	format := fs.String("format", "text", "Output format: text, json, markdown, html")
	silent := fs.Bool("silent", false, "Silent mode - no progress")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	pf := addProviderFlags(fs)
	fs.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	ms := &input.ModelSource{Models: models, ListFile: *listFile, Stdin: *stdin}
	names, err := ms.GetModels()
	if err != nil {
		fatal("%v", err)
	}
	if len(names) < 2 {
		fatal("compare needs at least two models: -model a,b")
	}

	ui.PrintBanner()
	ui.PrintSection("Model Comparison")
	ui.PrintConfigLine("Models", fmt.Sprintf("%d", len(names)))
	ui.PrintConfigLine("Provider", pf.provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var targets []benchmark.TargetBenchmark
	for _, name := range names {
		tgt, err := buildTarget(name, *pf)
		if err != nil {
			fatal("%v", err)
		}
		if !tgt.Available(ctx) {
			ui.PrintWarning(fmt.Sprintf("skipping %s: not reachable via %s", name, pf.provider))
			continue
		}

		ui.PrintInfo(fmt.Sprintf("auditing %s", name))
		results, err := probes.Run(ctx, tgt, probes.BuiltIn())
		if err != nil {
			fatal("probe run for %s failed: %v", name, err)
		}
		targets = append(targets, benchmark.Evaluate(name, results))
	}
	if len(targets) == 0 {
		fatal("no models were reachable")
	}

	ranked := benchmark.Rank(targets)

	var content string
	switch *format {
	case "text":
		content = benchmark.ComparisonTable(ranked) + "\n" + benchmark.DetailedBreakdown(ranked)
	case "markdown":
		content, err = benchmark.MarkdownReport(ranked)
	case "json":
		var data []byte
		data, err = benchmark.ExportJSON(ranked)
		content = string(data)
	case "html":
		content, err = benchmark.HTMLDashboard(ranked)
	default:
		fatal("compare supports -format text, json, markdown, or html, got %q", *format)
	}
	if err != nil {
		fatal("render failed: %v", err)
	}

	if err := writeArtifact(*output, content); err != nil {
		fatal("write failed: %v", err)
	}
}
