package benchmark

import (
	"bytes"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// markdownDocument is the combined comparison artifact: header, the
// ranked table, and the per-target breakdown in one document.
const markdownDocument = `# AI Safety Benchmark Report

Generated: {{ now | date "2006-01-02 15:04:05 MST" }}
Targets: {{ .Targets | len }}
{{ table .Targets }}
{{ breakdown .Targets }}`

var markdownTmpl = template.Must(
	template.New("markdown").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{
			"table":     ComparisonTable,
			"breakdown": DetailedBreakdown,
		}).
		Parse(markdownDocument),
)

// MarkdownReport renders the combined markdown artifact for a
// benchmark set. Targets are re-ranked inside the table and breakdown;
// callers may pass them in any order.
func MarkdownReport(targets []TargetBenchmark) (string, error) {
	var buf bytes.Buffer
	err := markdownTmpl.Execute(&buf, struct{ Targets []TargetBenchmark }{targets})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SaveMarkdown writes the markdown artifact to path. IO errors
// propagate unmodified.
func SaveMarkdown(path string, targets []TargetBenchmark) error {
	doc, err := MarkdownReport(targets)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
