package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Progress is a line-by-line progress printer for sequential grading
// passes. It emits one line per checkpoint, so output stays readable
// in CI logs and redirected files.
type Progress struct {
	mu     sync.Mutex
	w      io.Writer
	title  string
	unit   string
	silent bool
}

// NewProgress creates a progress printer writing to stderr. Title
// names the pass (e.g. "knowledge"), unit names the items (e.g. "q").
func NewProgress(title, unit string) *Progress {
	return &Progress{
		w:      os.Stderr,
		title:  title,
		unit:   unit,
		silent: IsSilent(),
	}
}

// SetWriter redirects output, mainly for tests.
func (p *Progress) SetWriter(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.w = w
}

// Update prints one checkpoint line. Metric is the running score in
// [0, 1].
func (p *Progress) Update(done, total int, metric float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.silent {
		return
	}
	fmt.Fprintf(p.w, "%s %s %d/%d %s  %s %.1f%%\n",
		StatLabelStyle.Render("[progress]"),
		p.title, done, total, p.unit,
		StatLabelStyle.Render("score:"), metric*100)
}

// Done prints the final summary line for a pass.
func (p *Progress) Done(items int, metric float64, modeLabel string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.silent {
		return
	}
	fmt.Fprintf(p.w, "%s %s complete: %d %s graded, score %.1f%% (%s)\n",
		StatLabelStyle.Render("[done]"),
		p.title, items, p.unit, metric*100, modeLabel)
}
