// Package provider implements concrete target.Target backends: a
// local Ollama server and any OpenAI-compatible chat endpoint. The
// scoring and benchmark core never imports this package; it consumes
// providers only through the target.Target interface.
package provider

import (
	"errors"
	"time"
)

// ErrGeneration wraps backend failures after retries are exhausted.
var ErrGeneration = errors.New("provider: generation failed")

// Config holds generation settings shared by all providers. Retry and
// timeout handling lives here, inside the backend layer; the scoring
// core performs no retries of its own.
type Config struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	Retries     int
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxTokens:   500,
		Timeout:     30 * time.Second,
		Retries:     3,
	}
}
