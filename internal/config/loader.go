package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"multikey-generator/internal/gen"
	"multikey-generator/primitive"
)

// File is the on-disk configuration.
type File struct {
	Version    string          `yaml:"version"`
	Containers ContainerConfig `yaml:"containers"`
	Primitives PrimitiveConfig `yaml:"primitives"`
}

// ContainerConfig configures multi-key container generation.
type ContainerConfig struct {
	Package  string `yaml:"package,omitempty"`
	Output   string `yaml:"output,omitempty"`
	From     int    `yaml:"from,omitempty"`
	To       int    `yaml:"to,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`
	Comments *bool  `yaml:"comments,omitempty"`
}

// PrimitiveConfig configures primitive template expansion.
type PrimitiveConfig struct {
	Templates  string `yaml:"templates,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Categories string `yaml:"categories,omitempty"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and fills in defaults.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Default returns the configuration used when no file is given.
func Default() *File {
	var f File

	applyDefaults(&f)

	return &f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	g := gen.DefaultGeneratorConfig()
	c := &f.Containers

	if c.Package == "" {
		c.Package = g.PackageName
	}

	if c.Output == "" {
		c.Output = g.OutputDir
	}

	if c.From == 0 {
		c.From = g.From
	}

	if c.To == 0 {
		c.To = g.To
	}

	if c.Workers == 0 {
		c.Workers = g.Workers
	}

	if c.Comments == nil {
		c.Comments = &g.GenerateComments
	}

	p := primitive.DefaultConfig()

	if f.Primitives.Templates == "" {
		f.Primitives.Templates = p.TemplatesDir
	}

	if f.Primitives.Output == "" {
		f.Primitives.Output = p.OutputDir
	}
}

// Generator converts the container section to a generator configuration.
func (f *File) Generator() gen.GeneratorConfig {
	c := f.Containers

	return gen.GeneratorConfig{
		PackageName:      c.Package,
		OutputDir:        c.Output,
		From:             c.From,
		To:               c.To,
		Workers:          c.Workers,
		GenerateComments: c.Comments == nil || *c.Comments,
	}
}

// Primitive converts the primitives section to an expansion configuration.
func (f *File) Primitive() (primitive.Config, error) {
	categories, err := primitive.ParseCategories(f.Primitives.Categories)
	if err != nil {
		return primitive.Config{}, err
	}

	return primitive.Config{
		TemplatesDir: f.Primitives.Templates,
		OutputDir:    f.Primitives.Output,
		Categories:   categories,
	}, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
