package main

import (
	"fmt"
	"os"

	"github.com/modelaudit/modelaudit/pkg/ui"
)

func printUsage() {
	ui.PrintBanner()

	fmt.Println(ui.SectionStyle.Render("THE AUDIT WORKFLOW"))
	fmt.Println()
	fmt.Printf("  %s\n", ui.SubtitleStyle.Render("Recommended flow:"))
	fmt.Println()
	fmt.Printf("    %s  Probe a model with the built-in safety suite\n", ui.ConfigValueStyle.Render("1. audit  "))
	fmt.Printf("    %s  Rank several models against each other\n", ui.ConfigValueStyle.Render("2. compare"))
	fmt.Printf("    %s  Grade capability on the academic benchmarks\n", ui.ConfigValueStyle.Render("3. bench  "))
	fmt.Println()
	fmt.Printf("  %s\n", ui.SubtitleStyle.Render("Quick Example:"))
	fmt.Printf("    %s\n", ui.ConfigValueStyle.Render("modelaudit audit -model llama3.2:1b"))
	fmt.Printf("    %s\n", ui.ConfigValueStyle.Render("modelaudit compare -model llama3.2:1b,mistral:7b -format markdown -o compare.md"))
	fmt.Printf("    %s\n", ui.ConfigValueStyle.Render("modelaudit bench -model llama3.2:1b -mode sample -n 50 -seed 7"))
	fmt.Println()

	fmt.Println(ui.SectionStyle.Render("COMMANDS"))
	fmt.Println()
	fmt.Printf("  %s  %s\n", ui.StatValueStyle.Render("audit  "), "Run the safety probe suite against one model and report vulnerabilities")
	fmt.Printf("  %s  %s\n", ui.StatValueStyle.Render("compare"), "Audit several models and rank them by aggregate security score")
	fmt.Printf("  %s  %s\n", ui.StatValueStyle.Render("bench  "), "Grade knowledge, truthfulness, and commonsense benchmarks (default)")
	fmt.Printf("  %s  %s\n", ui.StatValueStyle.Render("score  "), "Score a saved test-result JSON file without touching a live model")
	fmt.Println()

	fmt.Println(ui.SectionStyle.Render("OUTPUT FORMATS"))
	fmt.Println()
	fmt.Printf("  %s  plain-text vulnerability report\n", ui.StatValueStyle.Render("text    "))
	fmt.Printf("  %s  machine-readable export with summary block\n", ui.StatValueStyle.Render("json    "))
	fmt.Printf("  %s  comparison table plus per-model breakdown\n", ui.StatValueStyle.Render("markdown"))
	fmt.Printf("  %s  self-contained dashboard page\n", ui.StatValueStyle.Render("html    "))
	fmt.Println()

	fmt.Printf("Run %s for command-specific flags.\n",
		ui.ConfigValueStyle.Render("modelaudit <command> -h"))
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "audit", "probe":
		runAudit()
	case "compare", "comparison":
		runCompare()
	case "score", "classify":
		runScore()
	case "bench", "benchmark":
		// Remove "bench" from args and continue with normal execution
		os.Args = append(os.Args[:1], os.Args[2:]...)
		runBench()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(0)
	case "-v", "--version", "version":
		ui.PrintBanner()
		os.Exit(0)
	default:
		// Assume it's a flag for the default "bench" command
		runBench()
	}
}
