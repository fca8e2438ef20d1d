// internal/report/html.go
package report

import (
	"bytes"
	"html/template"
	"io"
)

// RenderHTML writes the standalone HTML report for v.
func RenderHTML(w io.Writer, v View) error {
	return reportTemplate.Execute(w, v)
}

// GenerateHTML renders the report into a string.
func GenerateHTML(v View) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("bst-report").Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  {{- if and .State.Loading (gt .RefreshSeconds 0) }}
  <meta http-equiv="refresh" content="{{ .RefreshSeconds }}">
  {{- end }}
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css">
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --success: #10B981;
      --warning: #F59E0B;
      --danger: #DC2626;
      --purple: #8B5CF6;
      --border: #E2E8F0;
    }
    body {
      background-color: var(--light);
      color: var(--text);
    }
    .card {
      border: 1px solid var(--border);
      background-color: var(--background);
      margin-bottom: 2rem;
    }
    .stat-card {
      border-radius: 0.5rem;
      padding: 1rem;
    }
    .stat-card .stat-value { font-size: 1.5rem; font-weight: 700; }
    .stat-card.tone-success { background: #ECFDF5; color: #047857; }
    .stat-card.tone-primary { background: #EFF6FF; color: #1D4ED8; }
    .stat-card.tone-warning { background: #FFF7ED; color: #C2410C; }
    .remark {
      border-left: 4px solid var(--accent);
      padding-left: 1rem;
      margin-bottom: 1rem;
    }
    .remark.accent-success { border-color: var(--success); }
    .remark.accent-purple { border-color: var(--purple); }
    .table thead th,
    .table thead td {
      background-color: var(--light);
      color: var(--text);
      border-color: var(--border);
    }
    .table tr.aggregate-row > td { background-color: #F9FAFB; font-weight: 600; }
    .scroll-table { max-height: 24rem; overflow-y: auto; }
    .text-improved { color: #16A34A; }
    .text-degraded { color: var(--danger); }
    .badge-improved { background-color: #DCFCE7; color: #166534; }
    .badge-degraded { background-color: #E2E8F0; color: #334155; }
    .loading-placeholder { text-align: center; padding: 1rem 0; color: var(--secondary); }
    .chart-img { width: 100%; border-radius: 0.5rem; border: 1px solid var(--border); }
  </style>
</head>
<body>
<div class="container py-4" style="max-width: 72rem;">

  <header class="text-center mb-4">
    <h1 class="display-5 fw-bold">{{ .Title }}</h1>
    <p class="fs-4 text-secondary">{{ .Subtitle }}</p>
    {{- if .Authors }}
    <p class="small text-secondary"><i class="bi bi-people"></i>
      Practical work by:{{ range $i, $a := .Authors }}{{ if $i }} and{{ end }} <strong>{{ $a }}</strong>{{ end }}
    </p>
    {{- end }}
  </header>

  <section class="card" id="executive-summary">
    <div class="card-header"><h2 class="h5 mb-0"><i class="bi bi-file-text"></i> Executive Summary</h2></div>
    <div class="card-body">
      <p>{{ .Summary }}</p>
      <div class="row g-3">
        {{- range .Cards }}
        <div class="col-md-4">
          <div class="stat-card tone-{{ .Tone }}">
            <div class="stat-value">{{ .Value }}</div>
            <div class="small">{{ .Label }}</div>
          </div>
        </div>
        {{- end }}
      </div>
    </div>
  </section>

  <section class="card" id="key-remarks">
    <div class="card-header">
      <h2 class="h5 mb-0">Key Technical Remarks</h2>
      <div class="small text-secondary">Important observations from the BST implementation analysis</div>
    </div>
    <div class="card-body">
      {{- range .Remarks }}
      <div class="remark accent-{{ .Accent }}">
        <h3 class="h6 fw-semibold">{{ .Title }}</h3>
        <p class="mb-0">{{ .Body }}</p>
      </div>
      {{- end }}
    </div>
  </section>

  <section class="card" id="charts">
    <div class="card-header">
      <h2 class="h5 mb-0"><i class="bi bi-bar-chart"></i> Performance Analysis Charts</h2>
      <div class="small text-secondary">Visual comparison of BST operations across different scenarios</div>
    </div>
    <div class="card-body">
      {{- range .Charts }}
      <div class="mb-4" id="chart-{{ .Name }}">
        <h3 class="h6 fw-semibold mb-3">{{ .Title }}</h3>
        {{- if .Src }}
        <img class="chart-img" src="{{ .Src }}" alt="{{ .Alt }}">
        {{- else }}
        <div class="loading-placeholder">Chart unavailable</div>
        {{- end }}
        <p class="small text-secondary mt-2">{{ .Caption }}</p>
      </div>
      {{- end }}
    </div>
  </section>

  <div class="row g-4">
    <div class="col-lg-6">
      <section class="card" id="average-summary">
        <div class="card-header">
          <h2 class="h5 mb-0">Average Performance Summary</h2>
          <div class="small text-secondary">Word search performance averages across all test categories</div>
        </div>
        <div class="card-body">
          {{- if .State.Loading }}
          <div class="loading-placeholder">Loading data...</div>
          {{- else }}
          <table class="table table-sm">
            <thead><tr><th>Category</th><th class="text-end">BST0</th><th class="text-end">Triplet</th><th class="text-end">Improvement</th></tr></thead>
            <tbody>
            {{- range .AverageRows }}
              <tr>
                <td class="fw-medium">{{ .Label }}</td>
                <td class="text-end">{{ .BST0 }}</td>
                <td class="text-end">{{ .Triplet }}</td>
                <td class="text-end"><span class="badge {{ if .Improved }}badge-improved{{ else }}badge-degraded{{ end }}">{{ .Improvement }} <i class="bi {{ if .Improved }}bi-graph-up-arrow{{ else }}bi-graph-down-arrow{{ end }}"></i></span></td>
              </tr>
            {{- else }}
              <tr><td colspan="4" class="text-center text-secondary">No data</td></tr>
            {{- end }}
            </tbody>
          </table>
          {{- end }}
        </div>
      </section>
    </div>

    <div class="col-lg-6">
      <section class="card" id="range-search">
        <div class="card-header">
          <h2 class="h5 mb-0">Range Search Results</h2>
          <div class="small text-secondary">Range search simulation performance data</div>
        </div>
        <div class="card-body">
          {{- if .State.Loading }}
          <div class="loading-placeholder">Loading data...</div>
          {{- else }}
          <div class="scroll-table">
            <table class="table table-sm">
              <thead><tr><th>Iteration</th><th class="text-end">BST0 Operations</th><th class="text-end">Triplet Operations</th><th class="text-end">Improvement</th></tr></thead>
              <tbody>
              {{- range .RangeRows }}
                <tr>
                  <td class="fw-medium">{{ .Label }}</td>
                  <td class="text-end">{{ .BST0 }}</td>
                  <td class="text-end">{{ .Triplet }}</td>
                  <td class="text-end"><span class="badge {{ if .Improved }}badge-improved{{ else }}badge-degraded{{ end }}">{{ .Improvement }}</span></td>
                </tr>
              {{- else }}
                <tr><td colspan="4" class="text-center text-secondary">No data</td></tr>
              {{- end }}
              </tbody>
            </table>
          </div>
          {{- end }}
        </div>
      </section>
    </div>
  </div>

  <section class="card" id="complete-dataset">
    <div class="card-header">
      <h2 class="h5 mb-0">Complete Word Search Dataset</h2>
      <div class="small text-secondary">Full word search comparison table with all test results</div>
    </div>
    <div class="card-body">
      {{- if .State.Loading }}
      <div class="loading-placeholder py-4">Loading complete dataset...</div>
      {{- else }}
      <div class="table-responsive">
        <table class="table table-sm">
          <thead><tr><th style="width: 200px;">Test Case</th><th class="text-end">BST0 Operations</th><th class="text-end">Triplet Operations</th><th class="text-end">Performance Improvement</th><th class="text-center">Status</th></tr></thead>
          <tbody>
          {{- range .DatasetRows }}
            <tr{{ if .Aggregate }} class="aggregate-row"{{ end }}>
              <td class="fw-medium">{{ .Label }}{{ if .Aggregate }} <span class="badge border text-secondary ms-2">Summary</span>{{ end }}</td>
              <td class="text-end">{{ .BST0 }}</td>
              <td class="text-end">{{ .Triplet }}</td>
              <td class="text-end"><span class="{{ if .Improved }}text-improved{{ else }}text-degraded{{ end }}">{{ .Improvement }}</span></td>
              <td class="text-center">
                {{- if .Improved }}
                <span class="badge badge-improved"><i class="bi bi-graph-up-arrow"></i> Improved</span>
                {{- else }}
                <span class="badge badge-degraded"><i class="bi bi-graph-down-arrow"></i> Degraded</span>
                {{- end }}
              </td>
            </tr>
          {{- else }}
            <tr><td colspan="5" class="text-center text-secondary">No data</td></tr>
          {{- end }}
          </tbody>
        </table>
      </div>
      {{- end }}
    </div>
  </section>

  <section class="card" id="conclusions">
    <div class="card-header"><h2 class="h5 mb-0">Conclusions</h2></div>
    <div class="card-body">
      <p>The analysis demonstrates that the Triplet-based BST implementation shows significant performance
        improvements over the standard BST0 implementation, with an average improvement of
        {{ .AverageImprovement }} across all test iterations.</p>
      <div class="stat-card tone-primary">
        <h3 class="h6 fw-semibold">Key Findings:</h3>
        <ul class="mb-0">
          {{- range .Findings }}
          <li>{{ . }}</li>
          {{- end }}
        </ul>
      </div>
    </div>
  </section>

  <hr>
  <footer class="text-center small text-secondary">
    <p class="mb-1">Report generated from performance analysis data &bull; {{ .FooterLabel }}</p>
    {{- if .Authors }}
    <p class="mb-1">Authors: {{ .AuthorLine }}</p>
    {{- end }}
    <p class="mb-0">Generated {{ .GeneratedAt.UTC.Format "2006-01-02 15:04 MST" }}</p>
  </footer>
</div>
</body>
</html>
`
