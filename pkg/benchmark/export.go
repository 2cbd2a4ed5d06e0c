package benchmark

import (
	"bytes"
	"html/template"
	"os"

	"github.com/modelaudit/modelaudit/pkg/finding"
	"github.com/modelaudit/modelaudit/pkg/jsonutil"
)

// exportVuln is the trimmed vulnerability shape used in JSON exports.
type exportVuln struct {
	TestID   string           `json:"test_id"`
	Severity finding.Severity `json:"severity"`
	Score    float64          `json:"score"`
	ID       string           `json:"id"`
}

// exportBenchmark mirrors TargetBenchmark with trimmed vulnerabilities.
type exportBenchmark struct {
	TargetName      string       `json:"target_name"`
	TestsRun        int          `json:"tests_run"`
	TestsPassed     int          `json:"tests_passed"`
	TestsFailed     int          `json:"tests_failed"`
	PassRate        float64      `json:"pass_rate"`
	AggregateScore  float64      `json:"aggregate_score"`
	Vulnerabilities []exportVuln `json:"vulnerabilities"`
}

// exportSummary carries the cross-target summary. Best and worst are
// null when no targets were benchmarked.
type exportSummary struct {
	ModelsTested int     `json:"models_tested"`
	BestModel    *string `json:"best_model"`
	WorstModel   *string `json:"worst_model"`
}

type exportDocument struct {
	Benchmarks []exportBenchmark `json:"benchmarks"`
	Summary    exportSummary     `json:"summary"`
}

// ExportJSON serializes the benchmark set with its summary. Targets
// keep their input order; best/worst are the min/max aggregate score.
func ExportJSON(targets []TargetBenchmark) ([]byte, error) {
	doc := exportDocument{
		Benchmarks: make([]exportBenchmark, 0, len(targets)),
		Summary:    exportSummary{ModelsTested: len(targets)},
	}

	for _, t := range targets {
		eb := exportBenchmark{
			TargetName:      t.TargetName,
			TestsRun:        t.TestsRun,
			TestsPassed:     t.TestsPassed,
			TestsFailed:     t.TestsFailed,
			PassRate:        t.PassRate,
			AggregateScore:  t.AggregateScore,
			Vulnerabilities: make([]exportVuln, 0, len(t.Vulnerabilities)),
		}
		for _, v := range t.Vulnerabilities {
			eb.Vulnerabilities = append(eb.Vulnerabilities, exportVuln{
				TestID:   v.TestID,
				Severity: v.Severity,
				Score:    v.Score,
				ID:       v.ID,
			})
		}
		doc.Benchmarks = append(doc.Benchmarks, eb)
	}

	if len(targets) > 0 {
		best, worst := targets[0], targets[0]
		for _, t := range targets[1:] {
			if t.AggregateScore < best.AggregateScore {
				best = t
			}
			if t.AggregateScore > worst.AggregateScore {
				worst = t
			}
		}
		doc.Summary.BestModel = &best.TargetName
		doc.Summary.WorstModel = &worst.TargetName
	}

	return jsonutil.MarshalIndent(doc, "  ")
}

// SaveJSON writes the JSON export to path. IO errors propagate
// unmodified.
func SaveJSON(path string, targets []TargetBenchmark) error {
	data, err := ExportJSON(targets)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// dashboardRow is one ranked table row in the HTML dashboard.
type dashboardRow struct {
	Rank     int
	Target   TargetBenchmark
	Critical int
	High     int
	Medium   int
	Status   string
	Band     string
}

// dashboardData feeds the HTML template.
type dashboardData struct {
	HasTargets  bool
	BestTarget  string
	BestScore   float64
	AvgPassRate float64
	TotalVulns  int
	Models      int
	Rows        []dashboardRow
}

// HTMLDashboard renders the static dashboard: summary cards plus the
// same ranked table as ComparisonTable, derived from the identical
// TargetBenchmark data with no independent logic.
func HTMLDashboard(targets []TargetBenchmark) (string, error) {
	data := dashboardData{Models: len(targets)}

	if len(targets) > 0 {
		data.HasTargets = true
		ranked := Rank(targets)

		best := ranked[0]
		data.BestTarget = best.TargetName
		data.BestScore = best.AggregateScore

		var passSum float64
		for _, t := range targets {
			passSum += t.PassRate
			data.TotalVulns += len(t.Vulnerabilities)
		}
		data.AvgPassRate = passSum / float64(len(targets))

		for i, t := range ranked {
			data.Rows = append(data.Rows, dashboardRow{
				Rank:     i + 1,
				Target:   t,
				Critical: t.severityCount(finding.Critical),
				High:     t.severityCount(finding.High),
				Medium:   t.severityCount(finding.Medium),
				Status:   Status(t.AggregateScore),
				Band:     bandClass(t.AggregateScore),
			})
		}
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SaveHTML writes the HTML dashboard to path. IO errors propagate
// unmodified.
func SaveHTML(path string, targets []TargetBenchmark) error {
	html, err := HTMLDashboard(targets)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}

// bandClass maps a score band to its CSS badge class.
func bandClass(score float64) string {
	switch {
	case score < 2.0:
		return "secure"
	case score < 5.0:
		return "moderate"
	case score < 7.0:
		return "high"
	default:
		return "critical"
	}
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>AI Safety Benchmark Dashboard</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 1200px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; border-bottom: 3px solid #4CAF50; padding-bottom: 10px; }
        .summary { display: flex; gap: 20px; margin: 30px 0; }
        .card { flex: 1; background: #f5f5f5; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .card h3 { margin-top: 0; color: #666; }
        .card .value { font-size: 36px; font-weight: bold; color: #4CAF50; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th { background: #4CAF50; color: white; padding: 12px; text-align: left; }
        td { padding: 10px; border-bottom: 1px solid #ddd; }
        tr:hover { background: #f5f5f5; }
        .badge { padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; }
        .critical { background: #f44336; color: white; }
        .high { background: #ff9800; color: white; }
        .moderate { background: #ffeb3b; color: black; }
        .secure { background: #4CAF50; color: white; }
    </style>
</head>
<body>
    <h1>AI Safety Benchmark Dashboard</h1>

    <div class="summary">
{{- if .HasTargets }}
        <div class="card">
            <h3>Best Target</h3>
            <div class="value">{{ .BestTarget }}</div>
            <p>Score: {{ .BestScore }}/10</p>
        </div>
        <div class="card">
            <h3>Average Pass Rate</h3>
            <div class="value">{{ printf "%.1f" .AvgPassRate }}%</div>
            <p>{{ .Models }} targets tested</p>
        </div>
        <div class="card">
            <h3>Total Vulnerabilities</h3>
            <div class="value">{{ .TotalVulns }}</div>
            <p>Across all targets</p>
        </div>
{{- end }}
    </div>

    <h2>Benchmark Results</h2>
    <table>
        <thead>
            <tr>
                <th>Rank</th>
                <th>Target</th>
                <th>Pass Rate</th>
                <th>Security Score</th>
                <th>Critical</th>
                <th>High</th>
                <th>Medium</th>
                <th>Status</th>
            </tr>
        </thead>
        <tbody>
{{- range .Rows }}
            <tr>
                <td>{{ .Rank }}</td>
                <td><strong>{{ .Target.TargetName }}</strong></td>
                <td>{{ printf "%.1f" .Target.PassRate }}%</td>
                <td>{{ printf "%.1f" .Target.AggregateScore }}/10</td>
                <td>{{ .Critical }}</td>
                <td>{{ .High }}</td>
                <td>{{ .Medium }}</td>
                <td><span class="badge {{ .Band }}">{{ .Status }}</span></td>
            </tr>
{{- end }}
        </tbody>
    </table>

    <p style="color: #666; margin-top: 40px;">
        Generated by modelaudit |
        Security Score: Lower is better (0 = perfect, 10 = critical vulnerabilities)
    </p>
</body>
</html>
`))
