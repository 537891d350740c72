package renderer

import (
	"fmt"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// goPrefixes maps each kind to its exported constant prefix
var goPrefixes = map[domain.Kind]string{
	domain.KindImage:  "Image",
	domain.KindColor:  "Color",
	domain.KindData:   "Data",
	domain.KindSymbol: "Symbol",
}

// GoRenderer emits a Go source file of exported string constants, for
// server-side tooling that mirrors the app's asset catalog names.
type GoRenderer struct {
	// PackageName is the package clause of the generated file
	PackageName string
}

// NewGoRenderer creates a Go source renderer
func NewGoRenderer(packageName string) *GoRenderer {
	if packageName == "" {
		packageName = "assetnames"
	}
	return &GoRenderer{PackageName: packageName}
}

var _ ports.Renderer = (*GoRenderer)(nil)

func (r *GoRenderer) Target() string {
	return "go"
}

func (r *GoRenderer) Render(symbols []domain.Symbol) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by acgen. DO NOT EDIT.\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n", r.PackageName)

	if len(symbols) > 0 {
		b.WriteString("\n")
		b.WriteString("const (\n")
		for _, sym := range symbols {
			prefix, ok := goPrefixes[sym.Kind]
			if !ok {
				return nil, fmt.Errorf("no go prefix for kind %q", sym.Kind)
			}

			// Identifiers escaped for a leading digit keep the escape
			// after the prefix is applied, so "2x" stays addressable
			name := prefix + strings.TrimPrefix(sym.Identifier, "_")
			fmt.Fprintf(&b, "\t// %s is the %q asset catalog %s resource.\n",
				name, sym.Value, sym.Kind)
			fmt.Fprintf(&b, "\t%s = %q\n", name, sym.Value)
		}
		b.WriteString(")\n")
	}

	return []byte(b.String()), nil
}
