package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// GenerateService renders symbol sources for the configured targets
type GenerateService struct {
	renderers map[string]ports.Renderer
}

// NewGenerateService creates a generate service over a set of renderers
func NewGenerateService(renderers ...ports.Renderer) *GenerateService {
	m := make(map[string]ports.Renderer, len(renderers))
	for _, r := range renderers {
		m[r.Target()] = r
	}
	return &GenerateService{renderers: m}
}

// Target describes one output artifact
type Target struct {
	Format string // Renderer name: "objc", "swift", "go"
	Output string // Absolute path of the generated file
}

// GenerateRequest represents a request to generate symbol sources
type GenerateRequest struct {
	Catalog *domain.Catalog
	Targets []Target

	// Force writes output even when the on-disk content is identical
	Force bool
}

// GenerateResponse represents the generation result
type GenerateResponse struct {
	Written []string // Paths actually (re)written
	Skipped []string // Paths left alone because content was unchanged
	Symbols int
}

// Execute derives symbols from the catalog and writes every target.
//
// Generation fails on identifier collisions: two names mapping to the
// same identifier within a kind would break the one-identifier,
// one-value contract of the generated artifact.
func (s *GenerateService) Execute(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.Catalog == nil {
		return nil, fmt.Errorf("no catalog to generate from")
	}
	if len(req.Targets) == 0 {
		return nil, fmt.Errorf("no targets configured")
	}

	symbols, err := s.deriveSymbols(req.Catalog)
	if err != nil {
		return nil, err
	}

	resp := &GenerateResponse{Symbols: len(symbols)}

	for _, target := range req.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, ok := s.renderers[target.Format]
		if !ok {
			return nil, fmt.Errorf("unknown target format %q", target.Format)
		}

		content, err := r.Render(symbols)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s target: %w", target.Format, err)
		}

		wrote, err := writeArtifact(target.Output, content, req.Force)
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", target.Output, err)
		}

		if wrote {
			resp.Written = append(resp.Written, target.Output)
		} else {
			resp.Skipped = append(resp.Skipped, target.Output)
		}
	}

	return resp, nil
}

// deriveSymbols converts catalog assets into symbols, rejecting
// invalid names and per-kind identifier collisions
func (s *GenerateService) deriveSymbols(cat *domain.Catalog) ([]domain.Symbol, error) {
	seen := make(map[string]string) // kind+identifier -> name
	var symbols []domain.Symbol

	for _, a := range cat.Assets {
		if err := domain.ValidateName(a.Name); err != nil {
			return nil, fmt.Errorf("cannot generate symbol for %s: %w", a.Path, err)
		}

		sym := domain.NewSymbol(a)
		key := string(sym.Kind) + "\x00" + sym.Identifier
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("identifier collision: %q and %q both derive %s symbol %q",
				prev, a.Name, a.Kind, sym.Identifier)
		}
		seen[key] = a.Name

		symbols = append(symbols, sym)
	}

	return symbols, nil
}

// writeArtifact replaces the output file atomically, skipping the
// write when existing content already matches (regeneration of an
// unchanged catalog must be a no-op)
func writeArtifact(path string, content []byte, force bool) (bool, error) {
	if !force {
		existing, err := os.ReadFile(path)
		if err == nil && bytes.Equal(existing, content) {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".acgen-*")
	if err != nil {
		return false, err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return false, err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return false, err
	}

	return true, nil
}
