package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orbital-labs/acgen/internal/core/domain"
)

// Severity classifies a validation finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding represents one catalog problem discovered by validation
type Finding struct {
	Severity Severity
	Asset    string // Lookup name or set path the finding is about
	Message  string
}

// ValidateService checks catalog integrity before generation.
// These are diagnostics of the catalog contents, the kind of problem
// platform build tooling would otherwise surface at app build time.
type ValidateService struct{}

// NewValidateService creates a new validate service
func NewValidateService() *ValidateService {
	return &ValidateService{}
}

// ValidateRequest represents a validation request
type ValidateRequest struct {
	Catalog *domain.Catalog
}

// ValidateResponse represents the validation result
type ValidateResponse struct {
	Findings []Finding
	Errors   int
	Warnings int
}

// Execute runs every check against the catalog
func (s *ValidateService) Execute(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	if req.Catalog == nil {
		return nil, fmt.Errorf("no catalog to validate")
	}

	var findings []Finding
	findings = append(findings, s.checkNames(req.Catalog)...)
	findings = append(findings, s.checkDuplicates(req.Catalog)...)
	findings = append(findings, s.checkCollisions(req.Catalog)...)
	findings = append(findings, s.checkPayloads(req.Catalog)...)
	findings = append(findings, s.checkSkipped(req.Catalog)...)

	resp := &ValidateResponse{Findings: findings}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			resp.Errors++
		case SeverityWarning:
			resp.Warnings++
		}
	}

	return resp, nil
}

// checkNames flags assets whose names cannot produce an identifier
func (s *ValidateService) checkNames(cat *domain.Catalog) []Finding {
	var findings []Finding
	for _, a := range cat.Assets {
		if err := domain.ValidateName(a.Name); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Asset:    a.Path,
				Message:  err.Error(),
			})
		}
	}
	return findings
}

// checkDuplicates flags the same lookup name appearing twice in a kind
func (s *ValidateService) checkDuplicates(cat *domain.Catalog) []Finding {
	seen := make(map[string]string) // key -> first path
	var findings []Finding

	for _, a := range cat.Assets {
		key := a.Key()
		if first, dup := seen[key]; dup {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Asset:    a.Name,
				Message:  fmt.Sprintf("duplicate %s name: %s and %s", a.Kind, first, a.Path),
			})
			continue
		}
		seen[key] = a.Path
	}

	return findings
}

// checkCollisions flags distinct names that derive the same identifier
func (s *ValidateService) checkCollisions(cat *domain.Catalog) []Finding {
	seen := make(map[string]domain.Asset)
	var findings []Finding

	for _, a := range cat.Assets {
		id := a.Identifier()
		if id == "" {
			continue // reported by checkNames
		}

		key := string(a.Kind) + "\x00" + id
		if prev, dup := seen[key]; dup && prev.Name != a.Name {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Asset:    a.Name,
				Message: fmt.Sprintf("identifier collision: %q and %q both derive %q",
					prev.Name, a.Name, id),
			})
			continue
		}
		seen[key] = a
	}

	return findings
}

// checkPayloads flags manifest-listed files missing from the set directory
func (s *ValidateService) checkPayloads(cat *domain.Catalog) []Finding {
	var findings []Finding

	for _, a := range cat.Assets {
		for _, f := range a.Files {
			if a.AbsPath == "" {
				continue
			}
			path := filepath.Join(a.AbsPath, filepath.FromSlash(f))
			if _, err := os.Stat(path); os.IsNotExist(err) {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Asset:    a.Name,
					Message:  fmt.Sprintf("manifest references missing file %q", f),
				})
			}
		}

		if a.Kind == domain.KindImage && len(a.Files) == 0 && a.Hash != "" {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Asset:    a.Name,
				Message:  "image set has no payload files",
			})
		}

		if a.Hash == "" {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Asset:    a.Name,
				Message:  "set directory has no Contents.json",
			})
		}
	}

	return findings
}

// checkSkipped surfaces set kinds the generator ignores
func (s *ValidateService) checkSkipped(cat *domain.Catalog) []Finding {
	var findings []Finding
	for _, path := range cat.Skipped {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Asset:    path,
			Message:  "unsupported set kind, no symbol generated",
		})
	}
	return findings
}
