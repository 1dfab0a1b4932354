// Package inference turns parsed JSON values into FieldType trees. The
// engine is a pure tree transformation: every call builds a fresh tree
// from its input and nothing is shared between calls.
package inference

import (
	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/models"
	"github.com/mcncl/jsonshape/internal/parser"
)

// Engine infers structural type descriptions from JSON values.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates an Engine with default configuration.
func NewEngine() *Engine {
	return &Engine{cfg: config.NewConfig()}
}

// NewEngineWithConfig creates an Engine with custom configuration.
func NewEngineWithConfig(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Infer parses jsonText leniently and infers the shape of the document.
// The only failure mode is a parse error; inference itself always
// succeeds on a parsed value.
func (e *Engine) Infer(jsonText string) (models.FieldType, error) {
	value, err := parser.ParseString(jsonText)
	if err != nil {
		return models.FieldType{}, err
	}
	return e.InferValue(value), nil
}

// InferValue infers the shape of an already-parsed value. The returned
// tree is rooted at models.RootFieldName; generators rename it.
func (e *Engine) InferValue(v models.Value) models.FieldType {
	return e.inferNode(models.RootFieldName, v)
}

// inferNode is the core recursion, one case per value kind.
func (e *Engine) inferNode(name string, v models.Value) models.FieldType {
	switch v.Kind {
	case models.KindNull:
		return models.FieldType{Name: name, Kind: models.KindNull, Nullable: true}
	case models.KindObject:
		return models.FieldType{
			Name:     name,
			Kind:     models.KindObject,
			Children: e.inferChildren(v.Members),
		}
	case models.KindArray:
		return e.inferArray(name, v.Items)
	default:
		// string, number, boolean
		return models.FieldType{Name: name, Kind: v.Kind}
	}
}

// inferChildren infers one child per object member, preserving the
// member order the parser observed.
func (e *Engine) inferChildren(members []models.Member) []models.FieldType {
	children := make([]models.FieldType, 0, len(members))
	for _, m := range members {
		children = append(children, e.inferNode(m.Key, m.Value))
	}
	return children
}

func (e *Engine) inferArray(name string, items []models.Value) models.FieldType {
	field := models.FieldType{
		Name:          name,
		Kind:          models.KindArray,
		Array:         true,
		ArrayItemKind: models.KindNull,
	}
	if len(items) == 0 {
		return field
	}

	kinds := make([]models.ValueKind, len(items))
	for i, item := range items {
		kinds[i] = item.Kind
	}
	field.ArrayItemKind = unifyKinds(kinds)

	if field.ArrayItemKind == models.KindObject {
		if e.cfg.Arrays.MergeObjects && allObjects(items) {
			field.Children = e.mergeObjectItems(items)
		} else {
			// Sampling policy: the first object element wins. Extra or
			// missing keys on later elements are not reconciled.
			for _, item := range items {
				if item.Kind == models.KindObject {
					field.Children = e.inferChildren(item.Members)
					break
				}
			}
			if field.Children == nil {
				field.Children = []models.FieldType{}
			}
		}
	}
	return field
}

// unifyKinds collapses the observed element kinds of an array into one
// representative kind:
//
//  1. all elements share one kind: that kind
//  2. null plus exactly one other kind: the other kind
//  3. number mixed with string: string (the lossless textual form)
//  4. any mix involving object: object
//  5. anything else: the first observed kind
func unifyKinds(kinds []models.ValueKind) models.ValueKind {
	distinct := make([]models.ValueKind, 0, len(kinds))
	seen := make(map[models.ValueKind]bool)
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			distinct = append(distinct, k)
		}
	}

	nonNull := make([]models.ValueKind, 0, len(distinct))
	for _, k := range distinct {
		if k != models.KindNull {
			nonNull = append(nonNull, k)
		}
	}

	switch {
	case len(nonNull) == 0:
		return models.KindNull
	case len(nonNull) == 1:
		return nonNull[0]
	case len(nonNull) == 2 && seen[models.KindNumber] && seen[models.KindString]:
		return models.KindString
	case seen[models.KindObject]:
		return models.KindObject
	default:
		return kinds[0]
	}
}

func allObjects(items []models.Value) bool {
	for _, item := range items {
		if item.Kind != models.KindObject {
			return false
		}
	}
	return true
}

// mergeObjectItems unions the keys of every object element, in first-seen
// order across the whole array. A key missing from at least one element
// is marked optional; its shape comes from the first element that has it.
// This is the opt-in alternative to first-element sampling.
func (e *Engine) mergeObjectItems(items []models.Value) []models.FieldType {
	order := make([]string, 0)
	firstValue := make(map[string]models.Value)
	counts := make(map[string]int)

	for _, item := range items {
		for _, m := range item.Members {
			if _, ok := firstValue[m.Key]; !ok {
				order = append(order, m.Key)
				firstValue[m.Key] = m.Value
			}
			counts[m.Key]++
		}
	}

	children := make([]models.FieldType, 0, len(order))
	for _, key := range order {
		child := e.inferNode(key, firstValue[key])
		if counts[key] < len(items) {
			child.Optional = true
		}
		children = append(children, child)
	}
	return children
}
