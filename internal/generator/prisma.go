package generator

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mcncl/jsonshape/internal/models"
)

// generatePrisma renders a single model block from the top-level fields
// only. Nested objects collapse to the opaque Json type and arrays always
// emit as String[]; this generator deliberately does not recurse.
func (g *Generator) generatePrisma(root models.FieldType, rootName string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "model %s {\n", rootName)
	for _, child := range root.Children {
		name, mapped := prismaFieldName(child.Name)
		fmt.Fprintf(&buf, "%s%s %s", g.cfg.Indent, name, prismaFieldType(child))
		if mapped {
			fmt.Fprintf(&buf, " @map(%s)", strconv.Quote(child.Name))
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

// Prisma field names cannot be quoted the way the other targets quote
// awkward property keys; they must be plain identifiers starting with a
// letter.
var (
	prismaNameRegex     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	prismaSanitizeRegex = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// prismaFieldName maps a JSON key to a valid prisma field identifier. The
// second return value reports whether the key was rewritten, in which case
// the caller keeps the original spelling through @map.
func prismaFieldName(name string) (string, bool) {
	if prismaNameRegex.MatchString(name) {
		return name, false
	}
	sanitized := prismaSanitizeRegex.ReplaceAllString(name, "_")
	if !prismaNameRegex.MatchString(sanitized) {
		sanitized = "field_" + sanitized
	}
	return sanitized, true
}

func prismaFieldType(f models.FieldType) string {
	// Lists carry no optional marker and keep the String element
	// placeholder regardless of the inferred item kind.
	if f.Array {
		return "String[]"
	}

	var base string
	switch f.Kind {
	case models.KindString:
		base = "String"
	case models.KindNumber:
		base = "Int"
	case models.KindBoolean:
		base = "Boolean"
	case models.KindNull:
		// Nullable string placeholder; already optional, no extra marker.
		return "String?"
	case models.KindObject:
		base = "Json"
	default:
		base = "String"
	}

	if f.Nullable || f.Optional {
		base += "?"
	}
	return base
}
