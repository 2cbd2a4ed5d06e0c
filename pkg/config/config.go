package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/modelaudit/modelaudit/pkg/input"
)

// Config holds all CLI configuration options
type Config struct {
	// Model settings
	Models   input.StringSliceFlag // Multi-model support
	ListFile string                // File containing model names
	PlanFile string                // YAML run plan file

	// Provider settings
	Provider      string // ollama or openai
	OllamaURL     string // Ollama server URL
	OpenAIBaseURL string // OpenAI-compatible API base URL
	APIKey        string // API key (falls back to OPENAI_API_KEY)

	// Benchmark settings
	Mode       string // demo, sample, full
	SampleSize int    // Items per dataset in sample mode
	Seed       int64  // Sampling seed (0 = from clock)
	RateLimit  int    // Max prompts per second (0 = unlimited)

	// Dataset settings (sample and full modes)
	KnowledgeFile    string // JSON file with multiple-choice items
	TruthfulnessFile string // JSON file with truthfulness items
	CommonsenseFile  string // JSON file with continuation items

	// Generation settings
	Temperature float64       // Sampling temperature
	MaxTokens   int           // Max tokens per completion
	Timeout     time.Duration // Per-request timeout
	Retries     int           // Retry count on generation failure

	// Output settings
	OutputFile   string // Output file path (empty = stdout)
	OutputFormat string // text, json, markdown, html
	Verbose      bool   // Verbose output
	Silent       bool   // Silent mode (no progress)
	NoColor      bool   // Disable colored output

	// Input settings
	StdinInput bool // Read model names from stdin
}

var validModes = map[string]bool{"demo": true, "sample": true, "full": true}

var validFormats = map[string]bool{"text": true, "json": true, "markdown": true, "html": true}

var validProviders = map[string]bool{"ollama": true, "openai": true}

// ParseFlags parses command line arguments and returns Config
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// === INPUT ===
	flag.Var(&cfg.Models, "model", "Model name(s) - comma-separated or repeated")
	flag.Var(&cfg.Models, "m", "Model name(s) (alias)")
	flag.StringVar(&cfg.ListFile, "l", "", "File containing model names")
	flag.StringVar(&cfg.PlanFile, "plan", "", "YAML run plan file")
	flag.BoolVar(&cfg.StdinInput, "stdin", false, "Read model names from stdin")

	// === PROVIDER ===
	flag.StringVar(&cfg.Provider, "provider", "ollama", "Provider: ollama, openai")
	flag.StringVar(&cfg.OllamaURL, "ollama-url", "", "Ollama server URL (default local)")
	flag.StringVar(&cfg.OpenAIBaseURL, "api-base", "", "OpenAI-compatible API base URL")
	flag.StringVar(&cfg.APIKey, "api-key", "", "API key (or set OPENAI_API_KEY)")

	// === BENCHMARK ===
	flag.StringVar(&cfg.Mode, "mode", "demo", "Benchmark mode: demo, sample, full")
	flag.IntVar(&cfg.SampleSize, "sample-size", 25, "Items per dataset in sample mode")
	flag.IntVar(&cfg.SampleSize, "n", 25, "Sample size (alias)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Sampling seed (0 = random)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Max prompts per second (0 = unlimited)")
	flag.IntVar(&cfg.RateLimit, "rl", 0, "Rate limit (alias)")

	// === DATASETS ===
	flag.StringVar(&cfg.KnowledgeFile, "knowledge", "", "Multiple-choice dataset JSON file")
	flag.StringVar(&cfg.TruthfulnessFile, "truthfulness", "", "Truthfulness dataset JSON file")
	flag.StringVar(&cfg.CommonsenseFile, "commonsense", "", "Commonsense dataset JSON file")

	// === GENERATION ===
	flag.Float64Var(&cfg.Temperature, "temperature", 0.7, "Sampling temperature")
	flag.IntVar(&cfg.MaxTokens, "max-tokens", 500, "Max tokens per completion")
	timeout := flag.Int("timeout", 30, "Per-request timeout in seconds")
	flag.IntVar(&cfg.Retries, "retries", 3, "Retry count on generation failure")

	// === OUTPUT ===
	flag.StringVar(&cfg.OutputFile, "output", "", "Output file path")
	flag.StringVar(&cfg.OutputFile, "o", "", "Output file (alias)")
	flag.StringVar(&cfg.OutputFormat, "format", "text", "Output format: text,json,markdown,html")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose (alias)")
	flag.BoolVar(&cfg.Silent, "silent", false, "Silent mode - no progress")
	flag.BoolVar(&cfg.Silent, "s", false, "Silent (alias)")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&cfg.NoColor, "nc", false, "No color (alias)")

	// Parse
	flag.Parse()

	// Convert timeout
	cfg.Timeout = time.Duration(*timeout) * time.Second

	// API key fallback
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	// Overlay run plan, if given
	if cfg.PlanFile != "" {
		plan, err := LoadPlan(cfg.PlanFile)
		if err != nil {
			return nil, err
		}
		cfg.ApplyPlan(plan)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints. Called by ParseFlags, and
// again by callers that assemble a Config by hand.
func (c *Config) Validate() error {
	if !validModes[c.Mode] {
		return fmt.Errorf("%w: mode %q (want demo, sample, or full)", ErrInvalidConfig, c.Mode)
	}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("%w: format %q (want text, json, markdown, or html)", ErrInvalidConfig, c.OutputFormat)
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("%w: provider %q (want ollama or openai)", ErrInvalidConfig, c.Provider)
	}
	if c.Mode == "sample" && c.SampleSize < 1 {
		return fmt.Errorf("%w: sample mode needs -sample-size >= 1", ErrInvalidConfig)
	}
	if len(c.Models) == 0 && c.ListFile == "" && !c.StdinInput {
		return fmt.Errorf("%w: model required: use -model, -l, -plan, or -stdin", ErrMissingRequired)
	}
	return nil
}
