package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/jsonutil"
	"github.com/modelaudit/modelaudit/pkg/target"
)

// DefaultOllamaURL is the local Ollama server default.
const DefaultOllamaURL = "http://localhost:11434"

// Ollama talks to a local Ollama server's chat API.
type Ollama struct {
	baseURL string
	model   string
	cfg     Config
	client  *http.Client
}

// Compile-time interface check.
var _ target.Target = (*Ollama)(nil)

// NewOllama creates a provider for model on the server at baseURL.
// Empty baseURL means the local default.
func NewOllama(baseURL, model string, cfg Config) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	return &Ollama{
		baseURL: baseURL,
		model:   model,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
}

// Generate sends prompt as a single user message and returns the
// completion text. Transient failures are retried up to cfg.Retries
// times before the error surfaces.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := jsonutil.Marshal(ollamaChatRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options: map[string]any{
			"temperature": o.cfg.Temperature,
			"num_predict": o.cfg.MaxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	attempts := o.cfg.Retries
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := o.chat(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: ollama model %s: %w", ErrGeneration, o.model, lastErr)
}

func (o *Ollama) chat(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}

	var out ollamaChatResponse
	if err := jsonutil.UnmarshalRead(resp.Body, &out); err != nil {
		return "", err
	}
	if out.Message.Content == "" {
		return "", finding.ErrEmptyResponse
	}
	return out.Message.Content, nil
}

// Name returns the model identifier used in reports.
func (o *Ollama) Name() string {
	return o.model
}

// Available reports whether the Ollama server answers its tags
// endpoint.
func (o *Ollama) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
