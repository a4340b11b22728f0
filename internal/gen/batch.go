package gen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"multikey-generator/internal/dimension"
)

// Report summarizes a completed Run.
type Report struct {
	Dimensions int
	Written    int
	Unchanged  int
	Duration   time.Duration
}

// Generate generates the support file followed by one file per dimension in
// the configured range, ordered by dimension. Dimensions are generated
// concurrently; the first failure cancels the rest and is returned.
func (g *Generator) Generate(ctx context.Context) ([]GeneratedFile, error) {
	specs, err := dimension.Range(g.config.From, g.config.To)
	if err != nil {
		return nil, fmt.Errorf("dimension range: %w", err)
	}

	support, err := g.GenerateSupport()
	if err != nil {
		return nil, fmt.Errorf("generating support file: %w", err)
	}

	files := make([]GeneratedFile, len(specs)+1)
	files[0] = *support

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.config.Workers, 1))

	for i, s := range specs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			file, err := g.GenerateDimension(s)
			if err != nil {
				return fmt.Errorf("generating %s: %w", s.TypeName(), err)
			}

			g.logger.Debug("generated dimension", "n", s.N(), "file", file.Filename, "bytes", len(file.Content))
			files[i+1] = *file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// Run generates the configured range and writes it to the output directory.
func (g *Generator) Run(ctx context.Context) (Report, error) {
	start := time.Now()

	files, err := g.Generate(ctx)
	if err != nil {
		return Report{}, err
	}

	stats, err := WriteFiles(ctx, files, g.config.OutputDir)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Dimensions: len(files) - 1,
		Written:    stats.Written,
		Unchanged:  stats.Unchanged,
		Duration:   time.Since(start),
	}

	g.logger.Info("generation complete",
		"dir", g.config.OutputDir,
		"from", g.config.From,
		"to", g.config.To,
		"written", report.Written,
		"unchanged", report.Unchanged,
		"duration", report.Duration,
	)

	return report, nil
}
