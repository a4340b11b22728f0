package gen

import (
	"bytes"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/tools/imports"

	"multikey-generator/internal/dimension"
	"multikey-generator/internal/synth"
)

// SupportFilename is the name of the shared helper file emitted once per package.
const SupportFilename = "multikey_support.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// From is the smallest dimension generated.
	From int
	// To is the largest dimension generated, inclusive.
	To int
	// Workers bounds how many dimensions are generated at once.
	Workers int
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "nmaps",
		OutputDir:        "./generated/nmaps",
		From:             7,
		To:               253,
		Workers:          runtime.GOMAXPROCS(0),
		GenerateComments: true,
	}
}

// Generator generates Go code for a range of dimensions.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{config: config, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "map7d.go").
	Filename string
	// Dimension is the dimension count, zero for the support file.
	Dimension int
	// Content is the formatted Go source code.
	Content []byte
}

// containerData holds all data needed for the container template.
type containerData struct {
	PackageName      string
	GenerateComments bool
	N                int
	TypeName         string
	TypeParamDecls   string
	TypeParams       string
	Params           string
	Args             string
	Underlying       string
	Child            string

	GetBody              string
	PutBody              string
	ContainsKeyBody      string
	ContainsAnyValueBody string
	ContainsChildBody    string
	CloneBody            string
}

// Self returns the instantiated container type, e.g. "Map3D[K1, K2, K3, V]".
func (d containerData) Self() string {
	return d.TypeName + "[" + d.TypeParams + "]"
}

// GenerateDimension generates the container file for a single dimension.
func (g *Generator) GenerateDimension(s dimension.Spec) (*GeneratedFile, error) {
	data := g.buildContainerData(s)

	var buf bytes.Buffer
	if err := containerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return g.format(s.Filename(), s.N(), buf.Bytes())
}

// GenerateSupport generates the helper file shared by every dimension.
func (g *Generator) GenerateSupport() (*GeneratedFile, error) {
	var buf bytes.Buffer

	err := supportTemplate.Execute(&buf, supportData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
	})
	if err != nil {
		return nil, fmt.Errorf("executing support template: %w", err)
	}

	return g.format(SupportFilename, 0, buf.Bytes())
}

func (g *Generator) buildContainerData(s dimension.Spec) containerData {
	data := containerData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
		N:                s.N(),
		TypeName:         s.TypeName(),
		TypeParamDecls:   s.TypeParamDecls(),
		TypeParams:       s.TypeParams(),
		Params:           s.Params(),
		Args:             s.Args(),
		Underlying:       s.MapType(1),
		Child:            s.MapType(2),
	}

	data.GetBody = synth.Accessor(s, synth.OpGet)
	data.PutBody = synth.Accessor(s, synth.OpPut)
	data.ContainsKeyBody = synth.Accessor(s, synth.OpContainsKey)
	data.ContainsAnyValueBody = synth.ContainsAnyValue(s)
	data.ContainsChildBody = synth.ContainsChild(s)
	data.CloneBody = synth.Clone(s, data.Self())

	return data
}

// format runs the generated source through goimports formatting. On failure
// the raw source is returned along with the error and, when an output
// directory is configured, dumped to a sidecar file.
func (g *Generator) format(filename string, n int, src []byte) (*GeneratedFile, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			if debugErr := writeDebugUnformatted(g.config.OutputDir, filename, src); debugErr != nil {
				g.logger.Warn("writing unformatted sidecar", "file", filename, "error", debugErr)
			}
		}

		return &GeneratedFile{
			Filename:  filename,
			Dimension: n,
			Content:   src,
		}, fmt.Errorf("formatting %s: %w (unformatted code returned)", filename, err)
	}

	return &GeneratedFile{
		Filename:  filename,
		Dimension: n,
		Content:   formatted,
	}, nil
}
