package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Kind identifies the type of a catalog resource set
type Kind string

const (
	KindImage  Kind = "image"
	KindColor  Kind = "color"
	KindData   Kind = "data"
	KindSymbol Kind = "symbol"
)

// AllKinds lists every supported resource kind in display order
var AllKinds = []Kind{KindImage, KindColor, KindData, KindSymbol}

// Valid checks if the kind is one of the supported resource kinds
func (k Kind) Valid() bool {
	switch k {
	case KindImage, KindColor, KindData, KindSymbol:
		return true
	}
	return false
}

// SetExtension returns the catalog directory extension for this kind
// e.g. KindImage -> ".imageset"
func (k Kind) SetExtension() string {
	switch k {
	case KindImage:
		return ".imageset"
	case KindColor:
		return ".colorset"
	case KindData:
		return ".dataset"
	case KindSymbol:
		return ".symbolset"
	}
	return ""
}

// KindForExtension maps a set directory extension back to its kind
// Returns false for extensions that are not resource sets (e.g. ".appiconset")
func KindForExtension(ext string) (Kind, bool) {
	for _, k := range AllKinds {
		if k.SetExtension() == ext {
			return k, true
		}
	}
	return "", false
}

// Asset represents a single named resource discovered in an asset catalog
type Asset struct {
	Name      string   `json:"name"`                // Lookup name, e.g. "GoogleLogo" or "Icons/Back"
	Kind      Kind     `json:"kind"`                // image, color, data, symbol
	Path      string   `json:"path"`                // Catalog-relative set directory
	Namespace string   `json:"namespace,omitempty"` // Folder namespace, e.g. "Icons"
	Files     []string `json:"files,omitempty"`     // Payload filenames listed in the manifest
	Hash      string   `json:"hash,omitempty"`      // SHA-256 of the set manifest

	// AbsPath is the absolute set directory from the scan that found
	// the asset. Not persisted; the index stores the relative path.
	AbsPath string `json:"-"`
}

// Key returns a stable identity for the asset across scans
func (a Asset) Key() string {
	return string(a.Kind) + "/" + a.Name
}

// Identifier returns the derived symbol identifier for this asset
func (a Asset) Identifier() string {
	return DeriveIdentifier(a.Name)
}

// Symbol is a single (identifier -> string literal) pair in a generated
// artifact. The value is the catalog lookup name; the identifier is
// derived from it and must be unique per kind within one artifact.
type Symbol struct {
	Identifier string
	Value      string
	Kind       Kind
}

// NewSymbol derives the symbol for an asset
func NewSymbol(a Asset) Symbol {
	return Symbol{
		Identifier: a.Identifier(),
		Value:      a.Name,
		Kind:       a.Kind,
	}
}

// Doc returns the documentation line for the symbol
// Matches the phrasing used by asset catalog tooling:
//
//	The "GoogleLogo" asset catalog image resource.
func (s Symbol) Doc() string {
	return fmt.Sprintf("The %q asset catalog %s resource.", s.Value, s.Kind)
}

// segmentPattern matches runs of characters that cannot appear in an identifier
var segmentPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// DeriveIdentifier converts an asset name into a symbol identifier.
//
// The name is split on runs of non-alphanumeric characters, each segment
// has its first letter capitalized (the rest is preserved), and the
// segments are joined. A leading digit is escaped with an underscore so
// the result is a valid identifier in every target language.
//
// Examples:
//
//	"GoogleLogo"   -> "GoogleLogo"
//	"google-logo"  -> "GoogleLogo"
//	"Icons/Back"   -> "IconsBack"
//	"2x-banner"    -> "_2xBanner"
func DeriveIdentifier(name string) string {
	segments := segmentPattern.Split(name, -1)

	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	id := b.String()
	if id == "" {
		return ""
	}

	if unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}

	return id
}

// LowerFirst lowercases the leading rune of an identifier
// Used for lowerCamelCase targets ("GoogleLogo" -> "googleLogo")
func LowerFirst(id string) string {
	if id == "" {
		return id
	}
	runes := []rune(id)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ValidateName checks if an asset name can produce a usable symbol
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name cannot be empty")
	}

	if DeriveIdentifier(name) == "" {
		return fmt.Errorf("asset name %q contains no identifier characters", name)
	}

	return nil
}
