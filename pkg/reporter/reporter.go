// Package reporter renders a DemandReport in JSON, Markdown or HTML.
package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/kineticbrand/demandlab/internal/models"
)

// Reporter handles report generation in the supported formats.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Generate renders the report in the requested format.
func (r *Reporter) Generate(report *models.DemandReport, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json", "":
		return r.generateJSON(report)
	case "markdown", "md":
		return r.generateMarkdown(report)
	case "html":
		return r.generateHTML(report)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (r *Reporter) generateJSON(report *models.DemandReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func (r *Reporter) generateMarkdown(report *models.DemandReport) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Demand Lab Report for %s\n\n", report.Domain)
	fmt.Fprintf(&buf, "*Generated %s | run %s*\n\n",
		report.GeneratedAt.Format("January 2, 2006"), report.RunID)

	fmt.Fprintf(&buf, "**Overall: %d/100 (%s)** — data confidence %s (%d/100)\n\n",
		report.Scoring.OverallScore, report.Scoring.MaturityStage,
		report.Confidence.Level, report.Confidence.Score)
	fmt.Fprintf(&buf, "%s\n\n", report.Narrative)

	fmt.Fprintf(&buf, "## Dimension Scores\n\n")
	fmt.Fprintf(&buf, "| Dimension | Score | Status |\n")
	fmt.Fprintf(&buf, "|-----------|-------|--------|\n")
	for _, d := range report.Scoring.Dimensions {
		fmt.Fprintf(&buf, "| %s | %d | %s |\n", d.Key.Label(), d.Score, d.Status)
	}
	fmt.Fprintf(&buf, "\n")

	if len(report.Scoring.Issues) > 0 {
		fmt.Fprintf(&buf, "## Issues\n\n")
		for _, iss := range report.Scoring.Issues {
			fmt.Fprintf(&buf, "- **[%s] %s** (%s): %s\n",
				iss.Severity, iss.Title, iss.Category, iss.Description)
		}
		fmt.Fprintf(&buf, "\n")
	}

	if len(report.QuickWins) > 0 {
		fmt.Fprintf(&buf, "## Quick Wins\n\n")
		for i, win := range report.QuickWins {
			fmt.Fprintf(&buf, "%d. **%s** (impact: %s, effort: %s)\n   %s\n",
				i+1, win.Title, win.Impact, win.Effort, win.Description)
		}
		fmt.Fprintf(&buf, "\n")
	}

	if len(report.Projects) > 0 {
		fmt.Fprintf(&buf, "## Strategic Projects\n\n")
		for i, proj := range report.Projects {
			fmt.Fprintf(&buf, "%d. **%s**\n   %s\n   *%s*\n",
				i+1, proj.Title, proj.Description, proj.Rationale)
		}
		fmt.Fprintf(&buf, "\n")
	}

	fmt.Fprintf(&buf, "## Pages Analyzed\n\n")
	fmt.Fprintf(&buf, "| URL | Type | Form | CTA |\n")
	fmt.Fprintf(&buf, "|-----|------|------|-----|\n")
	for _, page := range report.Findings.PagesAnalyzed {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
			page.URL, page.Type, yesNo(page.HasForm), yesNo(page.HasCTA))
	}
	fmt.Fprintf(&buf, "\n")

	if len(report.Findings.TrackingDetected) > 0 {
		fmt.Fprintf(&buf, "**Tracking detected:** %s\n",
			strings.Join(report.Findings.TrackingDetected, ", "))
	}
	if len(report.Findings.CTAsFound) > 0 {
		fmt.Fprintf(&buf, "**CTAs found:** %s\n",
			strings.Join(report.Findings.CTAsFound, "; "))
	}

	return buf.String(), nil
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Demand Lab Report - {{.Domain}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; color: #333; }
.header { background: #1f2a44; color: white; padding: 2rem; border-radius: 8px; margin-bottom: 1.5rem; }
.card { background: #f8f9fa; border-radius: 8px; padding: 1.25rem; margin-bottom: 1.25rem; }
.score { font-size: 2rem; font-weight: bold; }
.dim { display: inline-block; text-align: center; padding: 0.75rem 1.25rem; margin: 0.25rem; background: white; border-radius: 6px; }
.issue { border-left: 4px solid #ffc107; padding: 0.5rem 1rem; margin: 0.5rem 0; background: white; }
.issue.high { border-left-color: #dc3545; }
.issue.low { border-left-color: #28a745; }
</style>
</head>
<body>
<div class="header">
<h1>Demand Lab Report for {{.Domain}}</h1>
<p>{{.GeneratedAt.Format "January 2, 2006"}} — maturity: {{.Scoring.MaturityStage}} — confidence: {{.Confidence.Level}}</p>
<div class="score">{{.Scoring.OverallScore}}/100</div>
</div>
<div class="card">
<p>{{.Narrative}}</p>
{{range .Scoring.Dimensions}}<div class="dim"><div class="score">{{.Score}}</div><div>{{.Key.Label}}</div></div>{{end}}
</div>
{{if .Scoring.Issues}}<div class="card"><h2>Issues</h2>
{{range .Scoring.Issues}}<div class="issue {{.Severity}}"><strong>{{.Title}}</strong> ({{.Category}})<p>{{.Description}}</p></div>{{end}}
</div>{{end}}
{{if .QuickWins}}<div class="card"><h2>Quick Wins</h2><ol>
{{range .QuickWins}}<li><strong>{{.Title}}</strong> — impact {{.Impact}}, effort {{.Effort}}<br>{{.Description}}</li>{{end}}
</ol></div>{{end}}
{{if .Projects}}<div class="card"><h2>Strategic Projects</h2><ol>
{{range .Projects}}<li><strong>{{.Title}}</strong><br>{{.Description}}<br><em>{{.Rationale}}</em></li>{{end}}
</ol></div>{{end}}
</body>
</html>
`))

func (r *Reporter) generateHTML(report *models.DemandReport) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
