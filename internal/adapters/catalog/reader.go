package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

const manifestName = "Contents.json"

// Reader walks an asset catalog tree and builds the domain catalog.
// It is the filesystem adapter behind the CatalogSource port.
type Reader struct{}

// NewReader creates a new catalog reader
func NewReader() *Reader {
	return &Reader{}
}

// Ensure it implements the interface
var _ ports.CatalogSource = (*Reader)(nil)

// Read parses the catalog rooted at the given path.
//
// Resource sets are directories named <asset>.<kind extension> holding
// a Contents.json manifest. Plain folders group assets; a folder whose
// manifest sets "provides-namespace" prefixes contained asset names
// with "<folder>/", matching catalog lookup semantics.
func (r *Reader) Read(ctx context.Context, root string) (*domain.Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("catalog not found at %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path %s is not a directory", root)
	}

	cat := &domain.Catalog{Root: root}

	if err := r.walk(ctx, cat, root, root, ""); err != nil {
		return nil, err
	}

	cat.Sort()
	return cat, nil
}

// walk recurses one directory level, carrying the accumulated namespace
func (r *Reader) walk(ctx context.Context, cat *domain.Catalog, root, dir, namespace string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		ext := filepath.Ext(name)

		if kind, ok := domain.KindForExtension(ext); ok {
			asset, err := r.readSet(root, path, name, kind, namespace)
			if err != nil {
				return err
			}
			cat.Add(asset)
			continue
		}

		if ext != "" {
			// A set directory of a kind we don't generate symbols for
			// (app icons, launch images, stickers). Record and move on.
			rel, _ := filepath.Rel(root, path)
			cat.Skipped = append(cat.Skipped, filepath.ToSlash(rel))
			continue
		}

		// Plain folder: group, optionally a namespace
		childNS := namespace
		if r.providesNamespace(path) {
			if childNS == "" {
				childNS = name
			} else {
				childNS = childNS + "/" + name
			}
		}

		if err := r.walk(ctx, cat, root, path, childNS); err != nil {
			return err
		}
	}

	return nil
}

// readSet parses a single resource set directory into an asset
func (r *Reader) readSet(root, path, dirName string, kind domain.Kind, namespace string) (domain.Asset, error) {
	baseName := strings.TrimSuffix(dirName, filepath.Ext(dirName))

	name := baseName
	if namespace != "" {
		name = namespace + "/" + baseName
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = dirName
	}

	asset := domain.Asset{
		Name:      name,
		Kind:      kind,
		Path:      filepath.ToSlash(rel),
		Namespace: namespace,
		AbsPath:   path,
	}

	manifest, raw, err := r.readManifest(path)
	if err != nil {
		if os.IsNotExist(err) {
			// A set without a manifest still names an asset; validate
			// reports it, generation proceeds on the directory name
			return asset, nil
		}
		return domain.Asset{}, fmt.Errorf("failed to parse manifest in %s: %w", rel, err)
	}

	asset.Files = manifest.payloadFilenames()

	sum := sha256.Sum256(raw)
	asset.Hash = hex.EncodeToString(sum[:])

	return asset, nil
}

// readManifest loads and decodes a set's Contents.json
func (r *Reader) readManifest(dir string) (*contentsFile, []byte, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, nil, err
	}

	var manifest contentsFile
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, nil, err
	}

	return &manifest, raw, nil
}

// providesNamespace checks a group folder's manifest for the namespace flag
func (r *Reader) providesNamespace(dir string) bool {
	manifest, _, err := r.readManifest(dir)
	if err != nil {
		return false
	}
	return manifest.Properties.ProvidesNamespace
}

// IsCatalog reports whether a path looks like an asset catalog root
func IsCatalog(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return strings.HasSuffix(path, ".xcassets")
}

// Discover finds catalog roots beneath a directory, for workspaces
// that don't list catalogs explicitly in their config
func Discover(dir string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".xcassets") {
			found = append(found, path)
			return filepath.SkipDir
		}
		// Don't descend into hidden directories or build output
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover catalogs under %s: %w", dir, err)
	}

	return found, nil
}
