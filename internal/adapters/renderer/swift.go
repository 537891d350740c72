package renderer

import (
	"fmt"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// swiftScopes maps each kind to its nested enum name
var swiftScopes = map[domain.Kind]string{
	domain.KindImage:  "Image",
	domain.KindColor:  "Color",
	domain.KindData:   "Data",
	domain.KindSymbol: "Symbol",
}

// SwiftRenderer emits a Swift source file of static string constants,
// grouped per kind under caseless enums so call sites read
// AssetSymbols.Image.googleLogo.
type SwiftRenderer struct {
	// EnumName is the top-level container name ("AssetSymbols" by default)
	EnumName string
}

// NewSwiftRenderer creates a Swift source renderer
func NewSwiftRenderer() *SwiftRenderer {
	return &SwiftRenderer{EnumName: "AssetSymbols"}
}

var _ ports.Renderer = (*SwiftRenderer)(nil)

func (r *SwiftRenderer) Target() string {
	return "swift"
}

func (r *SwiftRenderer) Render(symbols []domain.Symbol) ([]byte, error) {
	enumName := r.EnumName
	if enumName == "" {
		enumName = "AssetSymbols"
	}

	var b strings.Builder

	b.WriteString("// Generated by acgen from the asset catalog. Do not edit.\n")
	b.WriteString("\n")
	b.WriteString("import Foundation\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "enum %s {\n", enumName)

	first := true
	for _, kind := range domain.AllKinds {
		var scoped []domain.Symbol
		for _, sym := range symbols {
			if sym.Kind == kind {
				scoped = append(scoped, sym)
			}
		}
		if len(scoped) == 0 {
			continue
		}

		scope, ok := swiftScopes[kind]
		if !ok {
			return nil, fmt.Errorf("no swift scope for kind %q", kind)
		}

		if !first {
			b.WriteString("\n")
		}
		first = false

		fmt.Fprintf(&b, "    enum %s {\n", scope)
		for i, sym := range scoped {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "        /// %s\n", sym.Doc())
			fmt.Fprintf(&b, "        static let %s = %q\n",
				domain.LowerFirst(sym.Identifier), sym.Value)
		}
		b.WriteString("    }\n")
	}

	b.WriteString("}\n")

	return []byte(b.String()), nil
}
