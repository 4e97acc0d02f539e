// Package audit provides the application service that runs a validation
// pass over a document corpus.
package audit

import (
	"context"
	"errors"
	"math"

	"github.com/alguides/fmlint/internal/domain"
	"github.com/alguides/fmlint/internal/frontmatter"
	"github.com/alguides/fmlint/internal/rules"
)

// DocumentLister abstracts enumerating the candidate document paths.
type DocumentLister interface {
	ListDocuments(ctx context.Context) ([]string, error)
}

// ContentReader abstracts reading the full text of one document.
type ContentReader interface {
	ReadDocument(ctx context.Context, path string) (string, error)
}

// Summary holds the aggregate counters for one run.
type Summary struct {
	Total        int
	Valid        int
	WithWarnings int
	Invalid      int
	SuccessRate  float64
}

// RunResult holds the per-document outcomes and aggregate summary of a
// validation run. Document order follows lister order.
type RunResult struct {
	Documents []domain.DocumentResult
	Summary   Summary
}

// Service validates every document in a corpus against a fixed rule set.
// A Service holds no per-run state: runs over an unchanged tree are
// idempotent.
type Service struct {
	lister  DocumentLister
	reader  ContentReader
	ruleSet rules.RuleSet
}

// NewService creates a Service with the given dependencies.
func NewService(lister DocumentLister, reader ContentReader, ruleSet rules.RuleSet) *Service {
	return &Service{
		lister:  lister,
		reader:  reader,
		ruleSet: ruleSet,
	}
}

// Run validates every listed document sequentially and returns the
// accumulated results. A document that cannot be read or parsed is
// reported invalid; it never aborts the run.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	paths, err := s.lister.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	result := &RunResult{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, s.validateOne(ctx, path))
	}

	result.Summary = summarize(result.Documents)
	return result, nil
}

// validateOne produces the outcome for a single document.
func (s *Service) validateOne(ctx context.Context, path string) domain.DocumentResult {
	content, err := s.reader.ReadDocument(ctx, path)
	if err != nil {
		return domain.DocumentResult{
			Path:   path,
			Status: domain.StatusInvalid,
			Findings: []domain.Finding{{
				Type:     domain.FindingUnreadable,
				Severity: domain.SeverityError,
				Message:  "Cannot read file: " + err.Error(),
			}},
		}
	}

	record, err := frontmatter.Parse(content)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNoFrontmatter) {
			// Structural failure: no field checks are attempted.
			return domain.DocumentResult{
				Path:   path,
				Status: domain.StatusInvalid,
				Findings: []domain.Finding{{
					Type:     domain.FindingNoFrontmatter,
					Severity: domain.SeverityError,
					Message:  "No frontmatter found",
				}},
			}
		}
		return domain.DocumentResult{
			Path:   path,
			Status: domain.StatusInvalid,
			Findings: []domain.Finding{{
				Type:     domain.FindingUnreadable,
				Severity: domain.SeverityError,
				Message:  "Cannot parse frontmatter: " + err.Error(),
			}},
		}
	}

	findings := s.ruleSet.Validate(record)
	return domain.DocumentResult{
		Path:     path,
		Status:   domain.Classify(findings),
		Findings: findings,
	}
}

// summarize derives the aggregate counters. Documents with warnings but
// no errors count as valid; the success rate is rounded to one decimal.
func summarize(docs []domain.DocumentResult) Summary {
	s := Summary{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case domain.StatusValid:
			s.Valid++
		case domain.StatusWarnings:
			s.Valid++
			s.WithWarnings++
		case domain.StatusInvalid:
			s.Invalid++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = math.Round(float64(s.Valid)/float64(s.Total)*1000) / 10
	}
	return s
}
