package target

import (
	"context"
	"strings"
	"sync"
)

// Scripted is a deterministic Target for tests and demos. Responses
// are chosen by substring match against the prompt; unmatched prompts
// get Default.
type Scripted struct {
	// ModelName is returned by Name.
	ModelName string

	// Responses maps a prompt substring to the canned response.
	Responses map[string]string

	// Default is returned when no substring matches.
	Default string

	mu    sync.Mutex
	calls int
}

// Compile-time interface check.
var _ Target = (*Scripted)(nil)

// Generate returns the scripted response for prompt.
func (s *Scripted) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	for needle, response := range s.Responses {
		if strings.Contains(prompt, needle) {
			return response, nil
		}
	}
	return s.Default, nil
}

// Name returns the scripted model name.
func (s *Scripted) Name() string {
	if s.ModelName == "" {
		return "scripted"
	}
	return s.ModelName
}

// Available always reports true.
func (s *Scripted) Available(ctx context.Context) bool {
	return true
}

// Calls returns how many times Generate was invoked.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
