package domain

// DocumentStatus classifies a validated document.
type DocumentStatus string

const (
	// StatusValid means zero errors and zero warnings.
	StatusValid DocumentStatus = "valid"
	// StatusWarnings means zero errors but at least one warning.
	StatusWarnings DocumentStatus = "valid_with_warnings"
	// StatusInvalid means at least one error.
	StatusInvalid DocumentStatus = "invalid"
)

// DocumentResult holds the validation outcome for one Markdown file.
type DocumentResult struct {
	Path     string
	Status   DocumentStatus
	Findings []Finding
}

// Classify derives a document status from its findings.
func Classify(findings []Finding) DocumentStatus {
	errs, warns := SplitBySeverity(findings)
	switch {
	case len(errs) > 0:
		return StatusInvalid
	case len(warns) > 0:
		return StatusWarnings
	default:
		return StatusValid
	}
}

// Errors returns the error-severity findings for the document.
func (d DocumentResult) Errors() []Finding {
	errs, _ := SplitBySeverity(d.Findings)
	return errs
}

// Warnings returns the warning-severity findings for the document.
func (d DocumentResult) Warnings() []Finding {
	_, warns := SplitBySeverity(d.Findings)
	return warns
}
