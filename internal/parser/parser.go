// Package parser turns JSON text into a models.Value tree. Parsing is
// lenient: comments, trailing commas and unquoted keys are accepted, since
// the input is usually pasted by hand from logs or API responses.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/models"
)

// Parse converts JSON data from an io.Reader into a models.Value tree.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses JSON from a byte slice.
func ParseBytes(data []byte) (models.Value, error) {
	if strings.TrimSpace(string(data)) == "" {
		return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	// Numbers are kept as json.Number so the engine never loses their
	// textual form. Decoding into an hjson.Node keeps objects as ordered
	// maps whatever the root shape is; a plain interface{} destination
	// would hand back unordered map[string]interface{} values and lose
	// the key order the inferred children depend on.
	opts := hjson.DefaultDecoderOptions()
	opts.UseJSONNumber = true

	var node hjson.Node
	if err := hjson.UnmarshalWithOptions(data, &node, opts); err != nil {
		return models.Value{}, errors.NewParsingError("cannot resolve input to a JSON value", err)
	}

	value, err := fromDecoded(&node)
	if err != nil {
		return models.Value{}, errors.NewParsingError("cannot resolve input to a JSON value", err)
	}
	return value, nil
}

// ParseString parses JSON from a string.
func ParseString(jsonText string) (models.Value, error) {
	return ParseBytes([]byte(jsonText))
}

// ParseFile parses JSON from a file path.
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return ParseBytes(data)
}

// fromDecoded converts the decoder's node tree into the tagged Value
// union. Object members and array elements arrive wrapped in *hjson.Node;
// the recursion unwraps them so each case sees the underlying value. This
// is the single place where runtime type dispatch happens; everything
// downstream switches on Value.Kind.
func fromDecoded(v interface{}) (models.Value, error) {
	switch x := v.(type) {
	case nil:
		return models.Value{Kind: models.KindNull}, nil
	case *hjson.Node:
		if x == nil {
			return models.Value{Kind: models.KindNull}, nil
		}
		return fromDecoded(x.Value)
	case bool:
		return models.Value{Kind: models.KindBoolean, Bool: x}, nil
	case string:
		return models.Value{Kind: models.KindString, Str: x}, nil
	case json.Number:
		return models.Value{Kind: models.KindNumber, Num: x}, nil
	case []interface{}:
		items := make([]models.Value, len(x))
		for i, element := range x {
			item, err := fromDecoded(element)
			if err != nil {
				return models.Value{}, err
			}
			items[i] = item
		}
		return models.Value{Kind: models.KindArray, Items: items}, nil
	case *hjson.OrderedMap:
		members := make([]models.Member, 0, len(x.Keys))
		for _, key := range x.Keys {
			child, err := fromDecoded(x.Map[key])
			if err != nil {
				return models.Value{}, err
			}
			members = append(members, models.Member{Key: key, Value: child})
		}
		return models.Value{Kind: models.KindObject, Members: members}, nil
	default:
		return models.Value{}, fmt.Errorf("unexpected decoded value type: %T", v)
	}
}
