package domain

import (
	"sort"
	"strings"
)

// Catalog represents a parsed asset catalog (.xcassets tree)
type Catalog struct {
	Root   string  // Path to the catalog root, as configured
	Assets []Asset // Every resource set discovered in the tree

	// Skipped lists set directories of kinds that produce no symbols
	// (app icons, launch images), kept for diagnostics
	Skipped []string
}

// Add appends an asset to the catalog
func (c *Catalog) Add(a Asset) {
	c.Assets = append(c.Assets, a)
}

// Count returns the number of assets in the catalog
func (c *Catalog) Count() int {
	return len(c.Assets)
}

// ByKind returns the assets of a single kind, in catalog order
func (c *Catalog) ByKind(k Kind) []Asset {
	var out []Asset
	for _, a := range c.Assets {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// Find looks up an asset by its lookup name, preferring images when
// the same name exists under multiple kinds
func (c *Catalog) Find(name string) (Asset, bool) {
	var match Asset
	found := false
	for _, a := range c.Assets {
		if a.Name != name {
			continue
		}
		if !found || a.Kind == KindImage {
			match = a
			found = true
		}
	}
	return match, found
}

// Namespaces returns the distinct folder namespaces, sorted.
// The root namespace is represented as the empty string and excluded.
func (c *Catalog) Namespaces() []string {
	seen := make(map[string]bool)
	for _, a := range c.Assets {
		if a.Namespace != "" {
			seen[a.Namespace] = true
		}
	}

	var out []string
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Sort orders assets by kind, then case-insensitively by name.
// Generated output iterates in this order, so sorting here is what
// makes regeneration deterministic.
func (c *Catalog) Sort() {
	sort.SliceStable(c.Assets, func(i, j int) bool {
		if c.Assets[i].Kind != c.Assets[j].Kind {
			return kindRank(c.Assets[i].Kind) < kindRank(c.Assets[j].Kind)
		}
		return strings.ToLower(c.Assets[i].Name) < strings.ToLower(c.Assets[j].Name)
	})
}

func kindRank(k Kind) int {
	for i, kind := range AllKinds {
		if k == kind {
			return i
		}
	}
	return len(AllKinds)
}

// Merge combines several catalogs into one, re-sorting the result
func Merge(catalogs ...*Catalog) *Catalog {
	merged := &Catalog{}
	for _, c := range catalogs {
		merged.Assets = append(merged.Assets, c.Assets...)
		merged.Skipped = append(merged.Skipped, c.Skipped...)
	}
	merged.Sort()
	return merged
}
