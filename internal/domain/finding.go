package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that marks the document invalid.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates an advisory finding that should be reviewed.
	SeverityWarning FindingSeverity = "warning"
)

// Finding type constants identify the kind of issue found.
const (
	FindingNoFrontmatter  = "no_frontmatter"
	FindingUnreadable     = "unreadable"
	FindingMissingField   = "missing_field"
	FindingForbiddenField = "forbidden_field"
	FindingInvalidArea    = "invalid_area"
	FindingAreaFormat     = "area_format"
	FindingInvalidLevel   = "invalid_difficulty"
	FindingTitleLength    = "title_length"
	FindingDescLength     = "description_length"
	FindingNotArray       = "not_array"
	FindingEmptyArray     = "empty_array"
)

// Finding represents a single validation issue for one document.
type Finding struct {
	Type     string
	Severity FindingSeverity
	Message  string
	Field    string
}

// SplitBySeverity partitions findings into errors and warnings,
// preserving their original order within each group.
func SplitBySeverity(findings []Finding) (errs, warns []Finding) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f)
		} else {
			warns = append(warns, f)
		}
	}
	return errs, warns
}
