package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcncl/jsonshape/internal/models"
)

// generateMongoose renders the tree as a mongoose schema construction
// expression, recursing into object children as inline property maps.
func (g *Generator) generateMongoose(root models.FieldType, rootName string) string {
	var buf bytes.Buffer
	if g.cfg.Mongoose.ImportLine {
		buf.WriteString("const mongoose = require(\"mongoose\");\n\n")
	}
	fmt.Fprintf(&buf, "const %sSchema = new mongoose.Schema(", rootName)
	g.writeMongooseObject(&buf, root.Children, 0)
	buf.WriteString(");\n")
	return buf.String()
}

func (g *Generator) writeMongooseObject(buf *bytes.Buffer, children []models.FieldType, depth int) {
	if len(children) == 0 {
		buf.WriteString("{}")
		return
	}

	indent := strings.Repeat(g.cfg.Indent, depth+1)
	buf.WriteString("{\n")
	for _, child := range children {
		fmt.Fprintf(buf, "%s%s: ", indent, propertyKey(child.Name))
		g.writeMongooseField(buf, child, depth+1)
		buf.WriteString(",\n")
	}
	buf.WriteString(strings.Repeat(g.cfg.Indent, depth))
	buf.WriteString("}")
}

// writeMongooseField emits the value expression for one field. Optional
// fields wrap as { type: T, required: false } and nullable fields as
// { type: T, default: null }; when both flags are set the nullable
// wrapper takes precedence, it does not compose with the optional one.
func (g *Generator) writeMongooseField(buf *bytes.Buffer, f models.FieldType, depth int) {
	switch {
	case f.Nullable:
		buf.WriteString("{ type: ")
		g.writeMongooseType(buf, f, depth)
		buf.WriteString(", default: null }")
	case f.Optional:
		buf.WriteString("{ type: ")
		g.writeMongooseType(buf, f, depth)
		buf.WriteString(", required: false }")
	default:
		g.writeMongooseType(buf, f, depth)
	}
}

func (g *Generator) writeMongooseType(buf *bytes.Buffer, f models.FieldType, depth int) {
	if f.Array {
		buf.WriteString("[")
		if f.ArrayItemKind == models.KindObject {
			g.writeMongooseObject(buf, f.Children, depth)
		} else {
			buf.WriteString(mongooseScalarType(f.ArrayItemKind))
		}
		buf.WriteString("]")
		return
	}
	if f.Kind == models.KindObject {
		if len(f.Children) > 0 {
			g.writeMongooseObject(buf, f.Children, depth)
			return
		}
		buf.WriteString("mongoose.Schema.Types.Mixed")
		return
	}
	buf.WriteString(mongooseScalarType(f.Kind))
}

func mongooseScalarType(kind models.ValueKind) string {
	switch kind {
	case models.KindString:
		return "String"
	case models.KindNumber:
		return "Number"
	case models.KindBoolean:
		return "Boolean"
	case models.KindNull:
		return "String"
	default:
		return "mongoose.Schema.Types.Mixed"
	}
}
