package primitive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"multikey-generator/internal/gen"
)

// Tokens replaced in template contents and file names.
const (
	TokenName        = "$primitive$"
	TokenWrapper     = "$primitiveWrp$"
	TokenCapitalized = "$primitiveFmt$"
	TokenGoType      = "$primitiveGo$"
	TokenBits        = "$primitiveBits$"
)

// ErrOutputCollision is returned when two templates expand to the same file
// name for one kind.
var ErrOutputCollision = errors.New("templates expand to the same output file")

// Config holds configuration for primitive expansion.
type Config struct {
	// TemplatesDir holds the template files; subdirectories are ignored.
	TemplatesDir string
	// OutputDir is the directory where expanded files are written.
	OutputDir string
	// Categories selects the kinds to expand.
	Categories CategoryEnum
}

// DefaultConfig returns the default primitive expansion configuration.
func DefaultConfig() Config {
	return Config{
		TemplatesDir: "./generators",
		OutputDir:    "./generated/prims",
		Categories:   CategoryAll,
	}
}

// Replacer returns the token replacer for kind.
func Replacer(kind KindEnum) *strings.Replacer {
	return strings.NewReplacer(
		TokenName, kind.Name(),
		TokenWrapper, kind.Wrapper(),
		TokenCapitalized, kind.Capitalized(),
		TokenGoType, kind.GoType(),
		TokenBits, strconv.Itoa(kind.Bits()),
	)
}

// Generate expands every template file at the root of templates once per
// selected kind. Output is ordered by template name, then kind.
func Generate(templates fs.FS, allowed CategoryEnum) ([]gen.GeneratedFile, error) {
	entries, err := fs.ReadDir(templates, ".")
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	kinds := Select(allowed)
	seen := make(map[string]string)

	var files []gen.GeneratedFile

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		src, err := fs.ReadFile(templates, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		for _, kind := range kinds {
			r := Replacer(kind)
			name := r.Replace(entry.Name())

			if prev, ok := seen[name]; ok {
				return nil, fmt.Errorf("%w: %s and %s both produce %s", ErrOutputCollision, prev, entry.Name(), name)
			}

			seen[name] = entry.Name()

			files = append(files, gen.GeneratedFile{
				Filename: name,
				Content:  []byte(r.Replace(string(src))),
			})
		}
	}

	return files, nil
}

// Expand reads the configured templates directory and writes the expanded
// files to the output directory.
func Expand(ctx context.Context, cfg Config) (gen.WriteStats, error) {
	files, err := Generate(os.DirFS(cfg.TemplatesDir), cfg.Categories)
	if err != nil {
		return gen.WriteStats{}, err
	}

	return gen.WriteFiles(ctx, files, cfg.OutputDir)
}

// Names returns the generated file names, sorted, for reporting.
func Names(files []gen.GeneratedFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}

	slices.Sort(names)

	return names
}
