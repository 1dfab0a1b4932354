package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcncl/jsonshape/internal/models"
)

// generateZod renders the tree as a single zod schema constant. Nested
// objects stay inline as z.object({...}) literals, so the whole schema is
// one expression.
func (g *Generator) generateZod(root models.FieldType, rootName string) string {
	var buf bytes.Buffer
	if g.cfg.Zod.ImportLine {
		buf.WriteString("import { z } from \"zod\";\n\n")
	}
	fmt.Fprintf(&buf, "const %sSchema = ", rootName)
	g.writeZodObject(&buf, root.Children, 0)
	buf.WriteString(";\n")
	return buf.String()
}

func (g *Generator) writeZodObject(buf *bytes.Buffer, children []models.FieldType, depth int) {
	if len(children) == 0 {
		buf.WriteString("z.object({})")
		return
	}

	indent := strings.Repeat(g.cfg.Indent, depth+1)
	buf.WriteString("z.object({\n")
	for _, child := range children {
		fmt.Fprintf(buf, "%s%s: ", indent, propertyKey(child.Name))
		g.writeZodField(buf, child, depth+1)
		buf.WriteString(",\n")
	}
	buf.WriteString(strings.Repeat(g.cfg.Indent, depth))
	buf.WriteString("})")
}

// writeZodField emits the builder expression for one field, chaining
// .optional() before .nullable() to match idiomatic zod call order.
func (g *Generator) writeZodField(buf *bytes.Buffer, f models.FieldType, depth int) {
	switch {
	case f.Array:
		buf.WriteString("z.array(")
		g.writeZodItem(buf, f, depth)
		buf.WriteString(")")
	case f.Kind == models.KindObject:
		g.writeZodObject(buf, f.Children, depth)
	default:
		buf.WriteString(zodScalarBuilder(f.Kind))
	}

	if f.Optional {
		buf.WriteString(".optional()")
	}
	if f.Nullable && f.Kind != models.KindNull {
		buf.WriteString(".nullable()")
	}
}

// writeZodItem emits the element builder for an array field, propagating
// the unified item kind. A null item kind widens to z.any(), mirroring
// the typescript target's element policy.
func (g *Generator) writeZodItem(buf *bytes.Buffer, f models.FieldType, depth int) {
	switch f.ArrayItemKind {
	case models.KindObject:
		g.writeZodObject(buf, f.Children, depth)
	case models.KindNull:
		buf.WriteString("z.any()")
	default:
		buf.WriteString(zodScalarBuilder(f.ArrayItemKind))
	}
}

func zodScalarBuilder(kind models.ValueKind) string {
	switch kind {
	case models.KindString:
		return "z.string()"
	case models.KindNumber:
		return "z.number()"
	case models.KindBoolean:
		return "z.boolean()"
	case models.KindNull:
		return "z.null()"
	default:
		return "z.any()"
	}
}
