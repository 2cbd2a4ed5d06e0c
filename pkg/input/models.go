// pkg/input/models.go
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ModelSource consolidates all model input methods
type ModelSource struct {
	Models   []string // From -model flags (repeated or comma-separated via StringSliceFlag)
	ListFile string   // From -l flag
	Stdin    bool     // Pipe input detection
}

// GetModels returns the deduplicated model list, preserving first-seen order.
func (ms *ModelSource) GetModels() ([]string, error) {
	var models []string
	seen := make(map[string]bool)

	add := func(m string) {
		m = strings.TrimSpace(m)
		if m == "" || strings.HasPrefix(m, "#") {
			return
		}
		if !seen[m] {
			seen[m] = true
			models = append(models, m)
		}
	}

	// 1. From Models slice
	for _, m := range ms.Models {
		add(m)
	}

	// 2. From file
	if ms.ListFile != "" {
		lines, err := readLines(ms.ListFile)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			add(line)
		}
	}

	// 3. From stdin (if enabled and stdin is a pipe)
	if ms.Stdin {
		lines, err := readStdin()
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			add(line)
		}
	}

	return models, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func readStdin() ([]string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		// Not a pipe, return empty
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// GetSingleModel returns the first model or an error if none provided.
// Use this for commands that audit one model at a time.
func (ms *ModelSource) GetSingleModel() (string, error) {
	models, err := ms.GetModels()
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models specified")
	}
	if len(models) > 1 {
		fmt.Fprintf(os.Stderr, "[WARN] Multiple models provided, using first: %s\n", models[0])
	}
	return models[0], nil
}
