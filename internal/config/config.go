package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonshape
type Config struct {
	Target     string           `yaml:"target"`
	RootName   string           `yaml:"root_name"`
	Indent     string           `yaml:"indent"`
	Arrays     ArraysConfig     `yaml:"arrays"`
	TypeScript TypeScriptConfig `yaml:"typescript"`
	Zod        ZodConfig        `yaml:"zod"`
	Mongoose   MongooseConfig   `yaml:"mongoose"`
	Naming     NamingConfig     `yaml:"naming"`
	Dev        DevConfig        `yaml:"dev"`
}

// ArraysConfig controls how arrays of objects are sampled
type ArraysConfig struct {
	// MergeObjects unions keys across all object elements of an array
	// and marks keys missing from some elements as optional. Off by
	// default: the stock policy samples the first element only.
	MergeObjects bool `yaml:"merge_objects"`
}

// TypeScriptConfig controls the typescript target
type TypeScriptConfig struct {
	// Export prefixes every emitted declaration with `export`.
	Export bool `yaml:"export"`
}

// ZodConfig controls the zod target
type ZodConfig struct {
	// ImportLine emits `import { z } from "zod";` above the schema.
	ImportLine bool `yaml:"import_line"`
}

// MongooseConfig controls the mongoose target
type MongooseConfig struct {
	// ImportLine emits `const mongoose = require("mongoose");` above the schema.
	ImportLine bool `yaml:"import_line"`
}

// NamingConfig controls declaration naming
type NamingConfig struct {
	// TypeMappings overrides the generated declaration name for
	// specific JSON keys.
	TypeMappings map[string]string `yaml:"type_mappings"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultIndent is two spaces, matching the usual style of all four
// target notations.
const DefaultIndent = "  "

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Target:   "typescript",
		RootName: "",
		Indent:   DefaultIndent,
		Arrays: ArraysConfig{
			MergeObjects: false,
		},
		TypeScript: TypeScriptConfig{
			Export: false,
		},
		Zod: ZodConfig{
			ImportLine: false,
		},
		Mongoose: MongooseConfig{
			ImportLine: false,
		},
		Naming: NamingConfig{
			TypeMappings: make(map[string]string),
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonshape.yml", ".jsonshape.yaml", "jsonshape.yml", "jsonshape.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// TypeName returns the declaration name for a JSON key, applying naming
// overrides before falling back to PascalCase conversion.
func (c *Config) TypeName(jsonKey string) string {
	if mapped, exists := c.Naming.TypeMappings[jsonKey]; exists {
		return mapped
	}

	name := strcase.ToCamel(jsonKey)
	if name == "" {
		// Purely symbolic keys like "_" convert to nothing; keep the
		// output syntactically valid.
		return "Field"
	}
	return name
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// override file values only when they differ from the flag defaults, so a
// config file still applies when the flag was left alone.
func LoadConfigWithCLI(configPath, cliTarget, cliRootName string) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliTarget != "" && cliTarget != "typescript" {
		cfg.Target = cliTarget
	}
	if cfg.Target == "" {
		cfg.Target = cliTarget
	}
	if cliRootName != "" {
		cfg.RootName = cliRootName
	}

	return cfg, nil
}
