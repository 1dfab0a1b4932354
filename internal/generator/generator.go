// Package generator renders FieldType trees into target schema notations.
// Every emitter is a total function: degenerate trees (scalar roots, empty
// objects) produce minimal well-formed declarations, never errors.
package generator

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mcncl/jsonshape/internal/config"
	"github.com/mcncl/jsonshape/internal/errors"
	"github.com/mcncl/jsonshape/internal/models"
)

// Target selects the output notation.
type Target string

const (
	TargetTypeScript Target = "typescript"
	TargetZod        Target = "zod"
	TargetPrisma     Target = "prisma"
	TargetMongoose   Target = "mongoose"
)

// Targets lists every supported target, in display order.
func Targets() []Target {
	return []Target{TargetTypeScript, TargetZod, TargetPrisma, TargetMongoose}
}

// ParseTarget converts a user-supplied target name to a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetTypeScript, TargetZod, TargetPrisma, TargetMongoose:
		return Target(s), nil
	default:
		return "", errors.NewGenerateError(fmt.Sprintf("unsupported target %q", s), errors.ErrUnknownTarget)
	}
}

// DefaultRootName is the declaration name used when the caller supplies
// none: "Root" for the type-level targets, "Model" for the model-level
// ones.
func DefaultRootName(target Target) string {
	switch target {
	case TargetPrisma, TargetMongoose:
		return "Model"
	default:
		return "Root"
	}
}

// Generator renders FieldType trees.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a Generator with default configuration.
func NewGenerator() *Generator {
	return &Generator{cfg: config.NewConfig()}
}

// NewGeneratorWithConfig creates a Generator with custom configuration.
func NewGeneratorWithConfig(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders root in the requested target notation. An empty
// rootName falls back to the target's default. The only error is an
// unknown target; the emitters themselves cannot fail.
func (g *Generator) Generate(root models.FieldType, target Target, rootName string) (string, error) {
	if rootName == "" {
		rootName = DefaultRootName(target)
	}

	switch target {
	case TargetTypeScript:
		return g.generateTypeScript(root, rootName), nil
	case TargetZod:
		return g.generateZod(root, rootName), nil
	case TargetPrisma:
		return g.generatePrisma(root, rootName), nil
	case TargetMongoose:
		return g.generateMongoose(root, rootName), nil
	default:
		return "", errors.NewGenerateError(fmt.Sprintf("unsupported target %q", target), errors.ErrUnknownTarget)
	}
}

var identifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// propertyKey returns the JSON key as it should appear on the left-hand
// side of a property: bare when it is a valid identifier, quoted
// otherwise.
func propertyKey(name string) string {
	if identifierRegex.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
