package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/modelaudit/modelaudit/pkg/benchmark"
	"github.com/modelaudit/modelaudit/pkg/jsonutil"
	"github.com/modelaudit/modelaudit/pkg/report"
	"github.com/modelaudit/modelaudit/pkg/scoring"
	"github.com/modelaudit/modelaudit/pkg/ui"
)

// runScore classifies a saved probe-result file without touching a
// live model. The input is the same shape probes.Run produces:
// {"test_id": passed, ...}.
func runScore() {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	inputFile := fs.String("i", "", "JSON file of test results ({\"test_id\": passed})")
	fs.StringVar(inputFile, "input", "", "Input file (alias)")
	name := fs.String("name", "results", "Label for the scored result set")
	output := fs.String("output", "", "Output file path (empty = stdout)")
	fs.StringVar(output, "o", "", "Output file (alias)")
	format := fs.String("format", "text", "Output format: text, json")
	silent := fs.Bool("silent", false, "Silent mode - no progress")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	fs.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	if *inputFile == "" {
		fatal("score needs a result file: -i results.json")
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		fatal("read input: %v", err)
	}
	var results map[string]bool
	if err := jsonutil.Unmarshal(data, &results); err != nil {
		fatal("parse input: %v", err)
	}

	ui.PrintBanner()
	ui.PrintSection("Severity Scoring")
	ui.PrintConfigLine("Input", *inputFile)
	ui.PrintConfigLine("Tests", fmt.Sprintf("%d", len(results)))

	records := classifyAll(results)
	score := scoring.Aggregate(records)
	ui.PrintConfigLine("Aggregate Score",
		fmt.Sprintf("%.2f/10.0 (%s)", score, benchmark.Status(score)))

	switch *format {
	case "json":
		out, err := benchmark.ExportJSON([]benchmark.TargetBenchmark{
			benchmark.Evaluate(*name, results),
		})
		if err != nil {
			fatal("export failed: %v", err)
		}
		if err := writeArtifact(*output, string(out)); err != nil {
			fatal("write failed: %v", err)
		}
	case "text":
		if err := writeArtifact(*output, report.Generate(records)); err != nil {
			fatal("write failed: %v", err)
		}
	default:
		fatal("score supports -format text or json, got %q", *format)
	}
}
