package ports

import (
	"context"

	"github.com/orbital-labs/acgen/internal/core/domain"
)

// CatalogSource defines the port for reading asset catalogs
type CatalogSource interface {
	// Read parses the catalog rooted at the given path
	Read(ctx context.Context, root string) (*domain.Catalog, error)
}

// Renderer defines the port for symbol code generation targets
type Renderer interface {
	// Target returns the format name ("objc", "swift", "go")
	Target() string

	// Render produces the generated source for the given symbols.
	// Symbols arrive pre-sorted; output must be deterministic.
	Render(symbols []domain.Symbol) ([]byte, error)
}

// IndexStore defines the port for persisting scan snapshots
type IndexStore interface {
	// Load reads the index; a missing file yields an empty index
	Load() (*domain.Index, error)

	// Save persists the index atomically
	Save(idx *domain.Index) error

	// Exists checks if a persisted index is present
	Exists() bool
}
