package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/models"
)

func TestParseString_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`
	value, err := ParseString(jsonStr)

	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindObject {
		t.Fatalf("ParseString() root kind = %v, want object", value.Kind)
	}

	expected := []models.Member{
		{Key: "name", Value: models.Value{Kind: models.KindString, Str: "John Doe"}},
		{Key: "age", Value: models.Value{Kind: models.KindNumber, Num: json.Number("30")}},
		{Key: "isStudent", Value: models.Value{Kind: models.KindBoolean, Bool: false}},
		{Key: "city", Value: models.Value{Kind: models.KindNull}},
	}
	if !reflect.DeepEqual(value.Members, expected) {
		t.Errorf("ParseString() members = %#v, want %#v", value.Members, expected)
	}
}

func TestParseString_PreservesKeyOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order
	jsonStr := `{"zulu": 1, "alpha": 2, "mike": 3}`
	value, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	var keys []string
	for _, m := range value.Members {
		keys = append(keys, m.Key)
	}
	want := []string{"zulu", "alpha", "mike"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("ParseString() key order = %v, want %v", keys, want)
	}
}

func TestParseString_PreservesKeyOrderNested(t *testing.T) {
	// Order must survive at every level: nested objects and objects
	// inside array elements, not just the root.
	jsonStr := `{"outer": {"zulu": 1, "alpha": 2}, "list": [{"mike": 1, "bravo": 2}]}`
	value, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	keysOf := func(v models.Value) []string {
		var keys []string
		for _, m := range v.Members {
			keys = append(keys, m.Key)
		}
		return keys
	}

	if got, want := keysOf(value), []string{"outer", "list"}; !reflect.DeepEqual(got, want) {
		t.Errorf("root key order = %v, want %v", got, want)
	}
	if got, want := keysOf(value.Members[0].Value), []string{"zulu", "alpha"}; !reflect.DeepEqual(got, want) {
		t.Errorf("nested key order = %v, want %v", got, want)
	}
	element := value.Members[1].Value.Items[0]
	if got, want := keysOf(element), []string{"mike", "bravo"}; !reflect.DeepEqual(got, want) {
		t.Errorf("array element key order = %v, want %v", got, want)
	}
}

func TestParseString_SimpleArray(t *testing.T) {
	jsonStr := `[1, "test", true, null, 3.14]`
	value, err := ParseString(jsonStr)

	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindArray {
		t.Fatalf("ParseString() root kind = %v, want array", value.Kind)
	}
	if len(value.Items) != 5 {
		t.Fatalf("ParseString() item count = %d, want 5", len(value.Items))
	}

	wantKinds := []models.ValueKind{
		models.KindNumber, models.KindString, models.KindBoolean,
		models.KindNull, models.KindNumber,
	}
	for i, item := range value.Items {
		if item.Kind != wantKinds[i] {
			t.Errorf("item %d kind = %v, want %v", i, item.Kind, wantKinds[i])
		}
	}
}

func TestParseString_LenientGrammar(t *testing.T) {
	tests := []struct {
		name    string
		jsonStr string
	}{
		{"trailing comma", `{"a": 1, "b": 2,}`},
		{"line comment", "{\n  // the identifier\n  \"a\": 1\n}"},
		{"block comment", `{"a": /* inline */ 1}`},
		{"unquoted keys", "{\n  a: 1\n  b: \"two\"\n}"},
		{"trailing comma in array", `[1, 2, 3,]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseString(tt.jsonStr)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v, want accepted", tt.jsonStr, err)
			}
			if value.Kind != models.KindObject && value.Kind != models.KindArray {
				t.Errorf("ParseString(%q) kind = %v, want object or array", tt.jsonStr, value.Kind)
			}
		})
	}
}

func TestParseString_ScalarRoots(t *testing.T) {
	value, err := ParseString(`"hello"`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindString || value.Str != "hello" {
		t.Errorf("ParseString() = %#v, want string %q", value, "hello")
	}

	value, err = ParseString(`42`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindNumber || value.Num != json.Number("42") {
		t.Errorf("ParseString() = %#v, want number 42", value)
	}
}

func TestParseString_InvalidInput(t *testing.T) {
	_, err := ParseString(`{not json`)
	if err == nil {
		t.Fatal("ParseString() error = nil, want parse error")
	}
	if !errors.IsParseError(err) {
		t.Errorf("ParseString() error = %v, want a parsing AppError", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := ParseString(input)
		if err == nil {
			t.Fatalf("ParseString(%q) error = nil, want error", input)
		}
		if !stderrors.Is(err, errors.ErrEmptyInput) {
			t.Errorf("ParseString(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestParseString_TrailingData(t *testing.T) {
	_, err := ParseString(`{"a": 1} {"b": 2}`)
	if err == nil {
		t.Fatal("ParseString() error = nil, want error for trailing data")
	}
}

func TestParseString_NestedStructures(t *testing.T) {
	jsonStr := `{"outer": {"inner": [{"deep": true}]}}`
	value, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	outer := value.Members[0].Value
	if outer.Kind != models.KindObject {
		t.Fatalf("outer kind = %v, want object", outer.Kind)
	}
	inner := outer.Members[0].Value
	if inner.Kind != models.KindArray || len(inner.Items) != 1 {
		t.Fatalf("inner = %#v, want one-element array", inner)
	}
	deep := inner.Items[0]
	if deep.Kind != models.KindObject || deep.Members[0].Key != "deep" {
		t.Errorf("deep = %#v, want object with key 'deep'", deep)
	}
}

func TestParseFile(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "sample.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	value, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindObject {
		t.Errorf("ParseFile() kind = %v, want object", value.Kind)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("ParseFile() error = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	_, err := ParseFile(path)
	if !stderrors.Is(err, errors.ErrFileEmpty) {
		t.Errorf("ParseFile() error = %v, want ErrFileEmpty", err)
	}
}

func TestParse_Reader(t *testing.T) {
	value, err := Parse(strings.NewReader(`[true, false]`))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}
	if value.Kind != models.KindArray || len(value.Items) != 2 {
		t.Errorf("Parse() = %#v, want two-element array", value)
	}
}
