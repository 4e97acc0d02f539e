package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/alguides/fmlint/internal/audit"
	"github.com/alguides/fmlint/internal/domain"
)

// Options controls which parts of a run are printed.
type Options struct {
	// Verbose prints a status line for fully valid documents too.
	Verbose bool
	// Suggest provides a candidate frontmatter block for a failing
	// document. When nil, no suggestions are printed.
	Suggest func(path string) string
}

// Run writes a complete run result in the renderer's mode.
func (r *Renderer) Run(result *audit.RunResult, opts Options) {
	if r.mode == ModeJSON {
		r.JSON(NewJSONRun(result))
		return
	}
	r.runText(result, opts)
}

func (r *Renderer) runText(result *audit.RunResult, opts Options) {
	for _, doc := range result.Documents {
		r.document(doc, opts)
	}
	r.summary(result.Summary)
}

// document prints one per-file entry. Valid documents only appear in
// verbose mode; findings are printed as indented bullets under the
// status line.
func (r *Renderer) document(doc domain.DocumentResult, opts Options) {
	switch doc.Status {
	case domain.StatusValid:
		if opts.Verbose {
			r.Printf("%s %s\n", r.styles.Success.Render("VALID  "), doc.Path)
		}
		return
	case domain.StatusWarnings:
		r.Printf("%s %s\n", r.styles.Warning.Render("WARNING"), doc.Path)
	case domain.StatusInvalid:
		r.Printf("%s %s\n", r.styles.Error.Render("ERROR  "), doc.Path)
	}

	for _, f := range doc.Findings {
		marker := r.styles.Warning.Render("warning")
		if f.Severity == domain.SeverityError {
			marker = r.styles.Error.Render("error")
		}
		r.Printf("  - %s: %s\n", marker, f.Message)
	}

	if doc.Status == domain.StatusInvalid && opts.Suggest != nil {
		r.Println("")
		r.Println(r.styles.Muted.Render("  Suggested frontmatter (review before use):"))
		r.Println(indent(opts.Suggest(doc.Path), "  "))
		r.Println("")
	}
}

// summary prints the aggregate counters as a small table.
func (r *Renderer) summary(s audit.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Total", "Valid", "Warnings", "Invalid", "Success Rate"})
	t.AppendRow(table.Row{
		s.Total,
		s.Valid,
		s.WithWarnings,
		s.Invalid,
		fmt.Sprintf("%.1f%%", s.SuccessRate),
	})

	r.Println("")
	t.Render()

	if s.Invalid == 0 {
		r.Println(r.styles.Success.Render("All documents passed validation"))
	} else {
		r.Println(r.styles.Error.Render(fmt.Sprintf("%d document(s) failed validation", s.Invalid)))
	}
}

// indent prefixes every line of s with the given prefix.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
