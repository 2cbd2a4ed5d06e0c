package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressUpdateFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress("knowledge", "q")
	p.SetWriter(&buf)

	p.Update(3, 10, 0.667)
	p.Done(10, 0.7, "sample_10")

	out := buf.String()
	if !strings.Contains(out, "knowledge 3/10 q") {
		t.Errorf("missing checkpoint line, got %q", out)
	}
	if !strings.Contains(out, "66.7%") {
		t.Errorf("missing running score, got %q", out)
	}
	if !strings.Contains(out, "10 q graded, score 70.0% (sample_10)") {
		t.Errorf("missing summary line, got %q", out)
	}
}

func TestProgressSilent(t *testing.T) {
	SetSilent(true)
	t.Cleanup(func() { SetSilent(false) })

	var buf bytes.Buffer
	p := NewProgress("knowledge", "q")
	p.SetWriter(&buf)

	p.Update(1, 2, 0.5)
	p.Done(2, 0.5, "demo")

	if buf.Len() != 0 {
		t.Errorf("silent mode should suppress output, got %q", buf.String())
	}
}
