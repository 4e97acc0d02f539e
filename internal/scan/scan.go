// Package scan selects the Markdown documents a validation run covers.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// markdownPattern matches Markdown files at any depth under the root.
const markdownPattern = "**/*.md"

// Markdown returns the relative paths of all Markdown files under the
// filesystem root, sorted, excluding files whose name contains "samples"
// and files named exactly README.md.
func Markdown(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, markdownPattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", markdownPattern, err)
	}

	var paths []string
	for _, m := range matches {
		if Excluded(m) {
			continue
		}
		paths = append(paths, m)
	}
	sort.Strings(paths)
	return paths, nil
}

// Excluded reports whether a path is outside the validation contract.
// The samples check is case-sensitive on purpose.
func Excluded(path string) bool {
	base := filepath.Base(path)
	if base == "README.md" {
		return true
	}
	return strings.Contains(base, "samples")
}
