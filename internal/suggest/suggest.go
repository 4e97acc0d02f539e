// Package suggest synthesizes candidate frontmatter blocks for documents
// that are missing or failing metadata. Suggestions are advisory output
// for human review; nothing in this package writes to disk.
package suggest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alguides/fmlint/internal/domain"
	"github.com/alguides/fmlint/internal/frontmatter"
	"github.com/alguides/fmlint/internal/slug"
)

// fieldOrder fixes the key order of generated blocks.
var fieldOrder = []string{
	"title",
	"description",
	"area",
	"difficulty",
	"object_types",
	"variable_types",
	"tags",
}

// objectTypeHints maps filename substrings to AL object type guesses,
// checked in order. The first match wins.
var objectTypeHints = []struct {
	substrings []string
	objectType string
}{
	{[]string{"table", "record"}, "Table"},
	{[]string{"page", "list", "card"}, "Page"},
	{[]string{"codeunit", "procedure", "function"}, "Codeunit"},
	{[]string{"report"}, "Report"},
	{[]string{"query"}, "Query"},
	{[]string{"api", "webservice"}, "Page"},
}

// Template builds a candidate frontmatter record for the file at path.
// The title is humanized from the filename, the area taken from the
// parent directory, and object types and tags guessed from filename
// substrings. The guesses are best effort, not guaranteed correct.
func Template(path string) domain.Record {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := slug.Humanize(base)

	return domain.Record{
		"title":          domain.Scalar(title),
		"description":    domain.Scalar(fmt.Sprintf("Guidelines and best practices for %s in AL development.", strings.ToLower(title))),
		"area":           domain.Scalar(filepath.Base(filepath.Dir(path))),
		"difficulty":     domain.Scalar("intermediate"),
		"object_types":   domain.List([]string{guessObjectType(base)}),
		"variable_types": domain.List([]string{}),
		"tags":           domain.List(guessTags(base)),
	}
}

// Render formats the candidate record as a frontmatter block in the
// grammar the validator consumes.
func Render(path string) string {
	return frontmatter.FormatRecord(fieldOrder, Template(path))
}

// guessObjectType scans the filename for known object type substrings,
// defaulting to Codeunit when nothing matches.
func guessObjectType(base string) string {
	lower := strings.ToLower(base)
	for _, hint := range objectTypeHints {
		for _, sub := range hint.substrings {
			if strings.Contains(lower, sub) {
				return hint.objectType
			}
		}
	}
	return "Codeunit"
}

// guessTags derives tags from the filename tokens, always ending with
// best-practices.
func guessTags(base string) []string {
	tags := slug.Tokens(strings.ToLower(base), 2)
	return append(tags, "best-practices")
}
