package encode

import "github.com/signadot/serpent-format/go-serpent/registry"

type EncodeOption func(*EncState)

// Indent writes each container element on its own line, two spaces
// per level, and sorts dict keys and set members where they are all
// strings, all numbers or all bools.
func Indent(v bool) EncodeOption {
	return func(es *EncState) { es.indent = v }
}

// SetLiterals writes sets as {a,b}. When off, sets are written as
// tuples and the header names python2.6.
func SetLiterals(v bool) EncodeOption {
	return func(es *EncState) { es.setLiterals = v }
}

func MaxLevel(n int) EncodeOption {
	return func(es *EncState) { es.maxLevel = n }
}

// QualifiedClassNames prefixes __class__ names with the package path.
func QualifiedClassNames(v bool) EncodeOption {
	return func(es *EncState) { es.qualified = v }
}

// BytesRepr writes byte slices as b'...' literals instead of base64
// dicts.
func BytesRepr(v bool) EncodeOption {
	return func(es *EncState) { es.bytesRepr = v }
}

func WithRegistry(r *registry.Registry) EncodeOption {
	return func(es *EncState) { es.registry = r }
}

func WithAttributes(f AttributeFunc) EncodeOption {
	return func(es *EncState) { es.attrs = f }
}

func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
