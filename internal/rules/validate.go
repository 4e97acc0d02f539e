package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alguides/fmlint/internal/domain"
)

// Validate applies every rule in the set to the record and returns the
// findings in rule order. All rules are evaluated independently; no rule
// short-circuits another. Validate is a pure function: the same record
// and rule set always produce the same findings.
func (rs RuleSet) Validate(record domain.Record) []domain.Finding {
	var findings []domain.Finding

	for _, name := range rs.Required {
		if !record.Has(name) {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingMissingField,
				Severity: domain.SeverityError,
				Field:    name,
				Message:  fmt.Sprintf("Missing required field: %s", name),
			})
		}
	}

	for _, name := range rs.Forbidden {
		if record.Has(name) {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingForbiddenField,
				Severity: domain.SeverityError,
				Field:    name,
				Message:  fmt.Sprintf("Forbidden field found: %s", name),
			})
		}
	}

	findings = append(findings, rs.checkArea(record)...)
	findings = append(findings, rs.checkDifficulty(record)...)
	findings = append(findings, rs.checkLength(record, "title", domain.FindingTitleLength, rs.TitleMin, rs.TitleMax)...)
	findings = append(findings, rs.checkLength(record, "description", domain.FindingDescLength, rs.DescriptionMin, rs.DescriptionMax)...)
	findings = append(findings, rs.checkListFields(record)...)

	return findings
}

// checkArea validates the area value against the closed category set and
// the lowercase-with-hyphens format. The two checks overlap and can both
// fire for a single bad value; that double reporting matches the
// established behavior and is kept on purpose.
func (rs RuleSet) checkArea(record domain.Record) []domain.Finding {
	value, ok := record["area"]
	if !ok {
		return nil
	}

	var findings []domain.Finding
	area := value.String()

	if !contains(rs.Areas, area) {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingInvalidArea,
			Severity: domain.SeverityError,
			Field:    "area",
			Message:  fmt.Sprintf("Invalid area: %q", area),
		})
	}
	if area != strings.ToLower(area) || strings.Contains(area, " ") {
		findings = append(findings, domain.Finding{
			Type:     domain.FindingAreaFormat,
			Severity: domain.SeverityError,
			Field:    "area",
			Message:  fmt.Sprintf("Area %q must be lowercase with hyphens", area),
		})
	}
	return findings
}

func (rs RuleSet) checkDifficulty(record domain.Record) []domain.Finding {
	value, ok := record["difficulty"]
	if !ok {
		return nil
	}

	if contains(rs.Difficulties, value.String()) {
		return nil
	}
	return []domain.Finding{{
		Type:     domain.FindingInvalidLevel,
		Severity: domain.SeverityError,
		Field:    "difficulty",
		Message: fmt.Sprintf("Invalid difficulty: %q (expected one of: %s)",
			value.String(), strings.Join(rs.Difficulties, ", ")),
	}}
}

// checkLength enforces the min/max bounds for a scalar field. Short
// values are advisory; long values are blocking.
func (rs RuleSet) checkLength(record domain.Record, field, findingType string, min, max int) []domain.Finding {
	value, ok := record[field]
	if !ok {
		return nil
	}

	var findings []domain.Finding
	length := utf8.RuneCountInString(value.String())

	if length < min {
		findings = append(findings, domain.Finding{
			Type:     findingType,
			Severity: domain.SeverityWarning,
			Field:    field,
			Message:  fmt.Sprintf("%s is quite short (%d characters, recommended minimum %d)", titleCase(field), length, min),
		})
	}
	if length > max {
		findings = append(findings, domain.Finding{
			Type:     findingType,
			Severity: domain.SeverityError,
			Field:    field,
			Message:  fmt.Sprintf("%s is too long (%d characters, maximum %d)", titleCase(field), length, max),
		})
	}
	return findings
}

func (rs RuleSet) checkListFields(record domain.Record) []domain.Finding {
	var findings []domain.Finding
	for _, field := range rs.ListFields {
		value, ok := record[field]
		if !ok {
			continue
		}

		if !value.IsList() {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingNotArray,
				Severity: domain.SeverityError,
				Field:    field,
				Message:  fmt.Sprintf("Field %s must be an array", field),
			})
			continue
		}
		if len(value.Items()) == 0 {
			findings = append(findings, domain.Finding{
				Type:     domain.FindingEmptyArray,
				Severity: domain.SeverityWarning,
				Field:    field,
				Message:  fmt.Sprintf("Field %s is an empty array", field),
			})
		}
	}
	return findings
}

// titleCase uppercases the first letter of an ASCII field name for
// message formatting.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
