// Package frontmatter extracts delimited metadata blocks from Markdown
// documents and parses them with a restricted line-oriented grammar.
//
// The grammar is deliberately narrower than YAML: one `key: value` pair
// per line, values optionally wrapped in double quotes, list values
// written as `[item1, item2]`. Lines that do not fit the grammar are
// skipped rather than rejected, matching the leniency the corpus relies
// on.
package frontmatter

import (
	"errors"
	"strings"

	"github.com/alguides/fmlint/internal/domain"
)

// ErrNoFrontmatter is returned when a document does not open with a
// frontmatter block or the block is never closed.
var ErrNoFrontmatter = errors.New("no frontmatter found")

// Split separates a document into frontmatter and body components.
// Frontmatter is delimited by --- on its own line. A document that does
// not begin with an opening delimiter, or whose block is unterminated,
// yields ErrNoFrontmatter.
func Split(input string) (string, string, error) {
	first, rest, found := strings.Cut(input, "\n")
	if !found {
		first = input
		rest = ""
	}
	if strings.TrimRight(first, "\r") != "---" {
		return "", "", ErrNoFrontmatter
	}

	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if strings.TrimRight(line, "\r") == "---" {
			if nlIdx < 0 {
				return rest[:pos], "", nil
			}
			return rest[:pos], rest[nextPos:], nil
		}

		pos = nextPos
	}

	return "", "", ErrNoFrontmatter
}

// Parse extracts the frontmatter block from a document and parses it
// into a Record. Duplicate keys overwrite earlier values.
func Parse(input string) (domain.Record, error) {
	block, _, err := Split(input)
	if err != nil {
		return nil, err
	}

	record := domain.Record{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, rawValue, found := strings.Cut(line, ":")
		if !found {
			// Not key: value shaped. Skipped, not an error.
			continue
		}

		record[strings.TrimSpace(key)] = parseValue(strings.TrimSpace(rawValue))
	}
	return record, nil
}

// parseValue interprets a trimmed raw value as either a bracketed list
// or a scalar, stripping surrounding double quotes in both cases.
func parseValue(raw string) domain.Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		if inner == "" {
			return domain.List([]string{})
		}
		parts := strings.Split(inner, ",")
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			items = append(items, unquote(strings.TrimSpace(p)))
		}
		return domain.List(items)
	}
	return domain.Scalar(unquote(raw))
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// FormatRecord renders a frontmatter block in the same line grammar
// consumed by Parse, surrounded by --- delimiters. Field order follows
// the given key order.
func FormatRecord(keys []string, record domain.Record) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			continue
		}
		b.WriteString(key)
		b.WriteString(": ")
		if value.IsList() {
			b.WriteString("[")
			b.WriteString(strings.Join(value.Items(), ", "))
			b.WriteString("]")
		} else {
			b.WriteString(value.String())
		}
		b.WriteString("\n")
	}
	b.WriteString("---")
	return b.String()
}
