package models

import "encoding/json"

// ValueKind is the closed set of JSON value kinds tracked by the
// inference engine and the generators.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
	KindNull    ValueKind = "null"
	KindArray   ValueKind = "array"
	KindObject  ValueKind = "object"
)

// Value is a parsed JSON value as a tagged union. The parser decides the
// variant exactly once; everything downstream switches on Kind instead of
// type-sniffing an interface{}.
//
// Only the field matching Kind is meaningful: Str for strings, Num for
// numbers, Bool for booleans, Items for arrays, Members for objects.
type Value struct {
	Kind    ValueKind
	Str     string
	Num     json.Number
	Bool    bool
	Items   []Value
	Members []Member
}

// Member is one key/value pair of a JSON object. Objects are kept as
// ordered member slices, not maps, so that inferred children come out in
// first-seen key order.
type Member struct {
	Key   string
	Value Value
}

// RootFieldName is the internal name given to the root of every inferred
// FieldType tree. Generators rename it via their rootName option.
const RootFieldName = "root"

// FieldType describes the inferred shape of one field. It is the single
// intermediate representation shared by all generators.
type FieldType struct {
	// Name is the field's JSON key, or RootFieldName for the tree root.
	Name string
	// Kind is the inferred value kind at this position.
	Kind ValueKind
	// Optional is true when the field is missing from some sibling array
	// elements sharing this shape. Single-document inference never sets
	// it; only the opt-in merge-objects policy does.
	Optional bool
	// Nullable is true when an explicit JSON null was observed here.
	Nullable bool
	// Array is true when the value at this position is a JSON array.
	Array bool
	// ArrayItemKind is the unified kind of the array's elements. Always
	// set when Array is true; KindNull for empty arrays.
	ArrayItemKind ValueKind
	// Children holds one FieldType per observed key, in first-seen order,
	// when this node represents an object or models the item type of an
	// array of objects.
	Children []FieldType
}

// IsObjectLike reports whether the node carries object children, either
// directly or as the item type of an array of objects.
func (f FieldType) IsObjectLike() bool {
	if f.Array {
		return f.ArrayItemKind == KindObject
	}
	return f.Kind == KindObject
}
