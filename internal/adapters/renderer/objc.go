package renderer

import (
	"fmt"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// objcPrefixes maps each kind to its constant name prefix
var objcPrefixes = map[domain.Kind]string{
	domain.KindImage:  "ACImageName",
	domain.KindColor:  "ACColorName",
	domain.KindData:   "ACDataName",
	domain.KindSymbol: "ACSymbolName",
}

// ObjCRenderer emits an Objective-C header of NSString constants, one
// per asset, in the shape asset catalog tooling generates:
//
//	/// The "GoogleLogo" asset catalog image resource.
//	static NSString * const ACImageNameGoogleLogo AC_SWIFT_PRIVATE = @"GoogleLogo";
type ObjCRenderer struct{}

// NewObjCRenderer creates an Objective-C header renderer
func NewObjCRenderer() *ObjCRenderer {
	return &ObjCRenderer{}
}

var _ ports.Renderer = (*ObjCRenderer)(nil)

func (r *ObjCRenderer) Target() string {
	return "objc"
}

// Render produces the header. The AC_SWIFT_PRIVATE guard hides the raw
// constants from Swift, where the swift target's symbols are used
// instead; it is defined up front and undefined at the end so the
// macro never leaks into including translation units.
func (r *ObjCRenderer) Render(symbols []domain.Symbol) ([]byte, error) {
	var b strings.Builder

	b.WriteString("#import <Foundation/Foundation.h>\n")
	b.WriteString("\n")
	b.WriteString("#if __has_attribute(swift_private)\n")
	b.WriteString("#define AC_SWIFT_PRIVATE __attribute__((swift_private))\n")
	b.WriteString("#else\n")
	b.WriteString("#define AC_SWIFT_PRIVATE\n")
	b.WriteString("#endif\n")

	for _, sym := range symbols {
		prefix, ok := objcPrefixes[sym.Kind]
		if !ok {
			return nil, fmt.Errorf("no objc prefix for kind %q", sym.Kind)
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "/// %s\n", sym.Doc())
		fmt.Fprintf(&b, "static NSString * const %s%s AC_SWIFT_PRIVATE = @%q;\n",
			prefix, sym.Identifier, sym.Value)
	}

	b.WriteString("\n")
	b.WriteString("#undef AC_SWIFT_PRIVATE\n")

	return []byte(b.String()), nil
}
