package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// resetFlags resets the flag package for each test
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

// TestConfigDefaults verifies default values are set correctly
func TestConfigDefaults(t *testing.T) {
	resetFlags()

	// Save and restore os.Args
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-model", "llama3.2:1b"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	// Check defaults
	if cfg.Provider != "ollama" {
		t.Errorf("Provider default: got %q, want 'ollama'", cfg.Provider)
	}
	if cfg.Mode != "demo" {
		t.Errorf("Mode default: got %q, want 'demo'", cfg.Mode)
	}
	if cfg.SampleSize != 25 {
		t.Errorf("SampleSize default: got %d, want 25", cfg.SampleSize)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout default: got %v, want 30s", cfg.Timeout)
	}
	if cfg.Retries != 3 {
		t.Errorf("Retries default: got %d, want 3", cfg.Retries)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature default: got %v, want 0.7", cfg.Temperature)
	}
	if cfg.MaxTokens != 500 {
		t.Errorf("MaxTokens default: got %d, want 500", cfg.MaxTokens)
	}
	if cfg.OutputFormat != "text" {
		t.Errorf("OutputFormat default: got %q, want 'text'", cfg.OutputFormat)
	}
}

// TestConfigModelAlias verifies -m alias works
func TestConfigModelAlias(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-m", "mistral:7b"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if len(cfg.Models) != 1 || cfg.Models[0] != "mistral:7b" {
		t.Errorf("Models via -m: got %v, want [mistral:7b]", cfg.Models)
	}
}

// TestConfigMultipleModels verifies repeated and comma-separated -model
func TestConfigMultipleModels(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-model", "llama3.2:1b,mistral:7b", "-model", "gemma:2b"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if len(cfg.Models) != 3 {
		t.Errorf("expected 3 models, got %v", cfg.Models)
	}
}

// TestConfigMissingModel verifies a model source is required
func TestConfigMissingModel(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}

	_, err := ParseFlags()
	if err == nil {
		t.Fatal("expected error when no model given")
	}
	if !errors.Is(err, ErrMissingRequired) {
		t.Errorf("expected ErrMissingRequired, got %v", err)
	}
}

// TestConfigInvalidMode verifies mode validation
func TestConfigInvalidMode(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-model", "llama3.2:1b", "-mode", "turbo"}

	_, err := ParseFlags()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad mode, got %v", err)
	}
}

// TestConfigInvalidFormat verifies format validation
func TestConfigInvalidFormat(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-model", "llama3.2:1b", "-format", "pdf"}

	_, err := ParseFlags()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad format, got %v", err)
	}
}

// TestConfigSampleNeedsSize verifies sample mode rejects zero size
func TestConfigSampleNeedsSize(t *testing.T) {
	cfg := &Config{
		Models:       []string{"llama3.2:1b"},
		Provider:     "ollama",
		Mode:         "sample",
		SampleSize:   0,
		OutputFormat: "text",
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero sample size, got %v", err)
	}
}

// TestLoadPlan verifies YAML plan parsing
func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `models:
  - llama3.2:1b
  - mistral:7b
mode: sample
sample_size: 50
seed: 7
format: markdown
output: audit.md
temperature: 0.2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if len(plan.Models) != 2 {
		t.Errorf("models: got %v", plan.Models)
	}
	if plan.Mode != "sample" || plan.SampleSize != 50 || plan.Seed != 7 {
		t.Errorf("benchmark fields: %+v", plan)
	}
	if plan.Temperature == nil || *plan.Temperature != 0.2 {
		t.Errorf("temperature: got %v", plan.Temperature)
	}
}

// TestLoadPlanInvalid verifies bad plans are rejected
func TestLoadPlanInvalid(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("models: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlan(badYAML); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad YAML, got %v", err)
	}

	noModels := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(noModels, []byte("mode: demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlan(noModels); !errors.Is(err, ErrMissingRequired) {
		t.Errorf("expected ErrMissingRequired for plan without models, got %v", err)
	}

	if _, err := LoadPlan(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing plan file")
	}
}

// TestApplyPlan verifies plan values overlay flag defaults
func TestApplyPlan(t *testing.T) {
	cfg := &Config{
		Provider:     "ollama",
		Mode:         "demo",
		SampleSize:   25,
		Temperature:  0.7,
		MaxTokens:    500,
		OutputFormat: "text",
	}

	temp := 0.1
	cfg.ApplyPlan(&Plan{
		Models:      []string{"phi3:mini"},
		Mode:        "full",
		Temperature: &temp,
		Format:      "json",
	})

	if len(cfg.Models) != 1 || cfg.Models[0] != "phi3:mini" {
		t.Errorf("models: got %v", cfg.Models)
	}
	if cfg.Mode != "full" {
		t.Errorf("mode: got %q", cfg.Mode)
	}
	if cfg.Temperature != 0.1 {
		t.Errorf("temperature: got %v", cfg.Temperature)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("format: got %q", cfg.OutputFormat)
	}
	// Untouched fields keep their defaults
	if cfg.SampleSize != 25 || cfg.MaxTokens != 500 {
		t.Errorf("defaults clobbered: %+v", cfg)
	}
}
