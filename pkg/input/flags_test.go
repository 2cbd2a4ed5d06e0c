// pkg/input/flags_test.go
package input

import (
	"flag"
	"testing"
)

func TestStringSliceFlag_SingleValue(t *testing.T) {
	var models StringSliceFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&models, "model", "model names")

	err := fs.Parse([]string{"-model", "llama3.2:1b"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(models) != 1 || models[0] != "llama3.2:1b" {
		t.Errorf("expected [llama3.2:1b], got %v", models)
	}
}

func TestStringSliceFlag_RepeatedFlag(t *testing.T) {
	var models StringSliceFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&models, "model", "model names")

	err := fs.Parse([]string{"-model", "llama3.2:1b", "-model", "mistral:7b"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(models) != 2 {
		t.Errorf("expected 2 models, got %d: %v", len(models), models)
	}
}

func TestStringSliceFlag_CommaSeparated(t *testing.T) {
	var models StringSliceFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&models, "model", "model names")

	err := fs.Parse([]string{"-model", "llama3.2:1b,mistral:7b,phi3:mini"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(models) != 3 {
		t.Errorf("expected 3 models, got %d: %v", len(models), models)
	}
}

func TestStringSliceFlag_Mixed(t *testing.T) {
	var models StringSliceFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&models, "model", "model names")

	err := fs.Parse([]string{"-model", "llama3.2:1b,mistral:7b", "-model", "gemma:2b"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(models) != 3 {
		t.Errorf("expected 3 models, got %d: %v", len(models), models)
	}
}
