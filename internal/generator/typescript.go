package generator

import (
	"bytes"
	"fmt"

	"github.com/mcncl/jsonshape/internal/models"
)

// generateTypeScript renders the tree as interface declarations. Nested
// objects become their own declarations, named by capitalizing the field
// key and emitted depth-first after the declaration that uses them.
// Sibling name collisions are not deduplicated; each nested declaration
// stands on its own.
func (g *Generator) generateTypeScript(root models.FieldType, rootName string) string {
	var buf bytes.Buffer
	g.writeTSInterface(&buf, rootName, root.Children)
	return buf.String()
}

type tsNested struct {
	name     string
	children []models.FieldType
}

func (g *Generator) writeTSInterface(buf *bytes.Buffer, name string, children []models.FieldType) {
	if g.cfg.TypeScript.Export {
		buf.WriteString("export ")
	}
	if len(children) == 0 {
		fmt.Fprintf(buf, "interface %s {}\n", name)
		return
	}

	var nested []tsNested
	fmt.Fprintf(buf, "interface %s {\n", name)
	for _, child := range children {
		declName := g.cfg.TypeName(child.Name)
		typeStr, usesDecl := g.tsFieldType(child, declName)
		if usesDecl {
			nested = append(nested, tsNested{name: declName, children: child.Children})
		}

		optional := ""
		if child.Optional {
			optional = "?"
		}
		if child.Nullable && child.Kind != models.KindNull {
			typeStr += " | null"
		}
		fmt.Fprintf(buf, "%s%s%s: %s;\n", g.cfg.Indent, propertyKey(child.Name), optional, typeStr)
	}
	buf.WriteString("}\n")

	for _, n := range nested {
		buf.WriteString("\n")
		g.writeTSInterface(buf, n.name, n.children)
	}
}

// tsFieldType maps one field to its TypeScript type. The second return
// value reports whether the field references a nested declaration that
// still has to be emitted.
func (g *Generator) tsFieldType(f models.FieldType, declName string) (string, bool) {
	if f.Array {
		if f.ArrayItemKind == models.KindObject && len(f.Children) > 0 {
			return declName + "[]", true
		}
		return tsItemType(f.ArrayItemKind) + "[]", false
	}
	if f.Kind == models.KindObject {
		if len(f.Children) > 0 {
			return declName, true
		}
		return "object", false
	}
	return tsScalarType(f.Kind), false
}

func tsScalarType(kind models.ValueKind) string {
	switch kind {
	case models.KindString:
		return "string"
	case models.KindNumber:
		return "number"
	case models.KindBoolean:
		return "boolean"
	case models.KindNull:
		return "null"
	default:
		return "any"
	}
}

// tsItemType maps an array's unified item kind to the element type. The
// inferred item kind is propagated; a null item kind (empty arrays or
// all-null arrays) widens to any so the element type stays usable.
func tsItemType(kind models.ValueKind) string {
	switch kind {
	case models.KindNull:
		return "any"
	case models.KindObject:
		// Arrays of empty objects land here; typed object arrays carry
		// children and never reach this mapping.
		return "object"
	default:
		return tsScalarType(kind)
	}
}
