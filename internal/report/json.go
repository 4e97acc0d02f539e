package report

import (
	"github.com/alguides/fmlint/internal/audit"
)

// JSONFinding is one finding in the machine-readable report.
type JSONFinding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

// JSONDocument is one file entry in the machine-readable report.
type JSONDocument struct {
	Path     string        `json:"path"`
	Status   string        `json:"status"`
	Findings []JSONFinding `json:"findings"`
}

// JSONSummary mirrors audit.Summary for serialization.
type JSONSummary struct {
	Total        int     `json:"total"`
	Valid        int     `json:"valid"`
	WithWarnings int     `json:"with_warnings"`
	Invalid      int     `json:"invalid"`
	SuccessRate  float64 `json:"success_rate"`
}

// JSONRun is the top-level machine-readable report.
type JSONRun struct {
	Documents []JSONDocument `json:"documents"`
	Summary   JSONSummary    `json:"summary"`
}

// NewJSONRun converts a run result into its serializable form.
func NewJSONRun(result *audit.RunResult) JSONRun {
	run := JSONRun{
		Documents: []JSONDocument{},
		Summary: JSONSummary{
			Total:        result.Summary.Total,
			Valid:        result.Summary.Valid,
			WithWarnings: result.Summary.WithWarnings,
			Invalid:      result.Summary.Invalid,
			SuccessRate:  result.Summary.SuccessRate,
		},
	}

	for _, doc := range result.Documents {
		entry := JSONDocument{
			Path:     doc.Path,
			Status:   string(doc.Status),
			Findings: []JSONFinding{},
		}
		for _, f := range doc.Findings {
			entry.Findings = append(entry.Findings, JSONFinding{
				Type:     f.Type,
				Severity: string(f.Severity),
				Field:    f.Field,
				Message:  f.Message,
			})
		}
		run.Documents = append(run.Documents, entry)
	}
	return run
}
