package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a declarative run described in YAML. A plan file lets a CI
// job or a repeated audit pin its models, mode, and output without a
// long flag line.
type Plan struct {
	Models      []string `yaml:"models"`
	Provider    string   `yaml:"provider,omitempty"`
	Mode        string   `yaml:"mode,omitempty"`
	SampleSize  int      `yaml:"sample_size,omitempty"`
	Seed        int64    `yaml:"seed,omitempty"`
	RateLimit   int      `yaml:"rate_limit,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Format      string   `yaml:"format,omitempty"`

	Datasets struct {
		Knowledge    string `yaml:"knowledge,omitempty"`
		Truthfulness string `yaml:"truthfulness,omitempty"`
		Commonsense  string `yaml:"commonsense,omitempty"`
	} `yaml:"datasets,omitempty"`
}

// LoadPlan reads and parses a YAML run plan.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("%w: parse plan %s: %v", ErrInvalidConfig, path, err)
	}
	if len(plan.Models) == 0 {
		return nil, fmt.Errorf("%w: plan %s lists no models", ErrMissingRequired, path)
	}
	return &plan, nil
}

// ApplyPlan overlays plan values onto the config. Fields the plan
// leaves empty keep their flag or default values.
func (c *Config) ApplyPlan(p *Plan) {
	if len(p.Models) > 0 {
		c.Models = append(c.Models, p.Models...)
	}
	if p.Provider != "" {
		c.Provider = p.Provider
	}
	if p.Mode != "" {
		c.Mode = p.Mode
	}
	if p.SampleSize > 0 {
		c.SampleSize = p.SampleSize
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.RateLimit > 0 {
		c.RateLimit = p.RateLimit
	}
	if p.Temperature != nil {
		c.Temperature = *p.Temperature
	}
	if p.MaxTokens > 0 {
		c.MaxTokens = p.MaxTokens
	}
	if p.Output != "" {
		c.OutputFile = p.Output
	}
	if p.Format != "" {
		c.OutputFormat = p.Format
	}
	if p.Datasets.Knowledge != "" {
		c.KnowledgeFile = p.Datasets.Knowledge
	}
	if p.Datasets.Truthfulness != "" {
		c.TruthfulnessFile = p.Datasets.Truthfulness
	}
	if p.Datasets.Commonsense != "" {
		c.CommonsenseFile = p.Datasets.Commonsense
	}
}
