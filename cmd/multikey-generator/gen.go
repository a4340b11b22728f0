package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"multikey-generator/internal/config"
	"multikey-generator/internal/gen"
)

type genOptions struct {
	from     int
	to       int
	out      string
	pkg      string
	workers  int
	comments bool
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate multi-key container types",
		Long: "Generate one MapND container type per dimension in [--from, --to], " +
			"plus a shared support file, into the output package directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, root, opts)
		},
	}

	def := gen.DefaultGeneratorConfig()

	cmd.Flags().IntVar(&opts.from, "from", def.From, "lowest dimension to generate")
	cmd.Flags().IntVar(&opts.to, "to", def.To, "highest dimension to generate")
	cmd.Flags().StringVarP(&opts.out, "out", "o", def.OutputDir, "output package directory")
	cmd.Flags().StringVarP(&opts.pkg, "pkg", "p", def.PackageName, "output package name")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", def.Workers, "number of dimensions generated in parallel")
	cmd.Flags().BoolVar(&opts.comments, "comments", def.GenerateComments, "emit doc comments on generated declarations")

	return cmd
}

func runGen(cmd *cobra.Command, root *rootOptions, opts *genOptions) error {
	file, err := root.loadConfig()
	if err != nil {
		return err
	}

	cfg := file.Generator()

	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.From = opts.from
	}

	if flags.Changed("to") {
		cfg.To = opts.to
	}

	if flags.Changed("out") {
		cfg.OutputDir = opts.out
	}

	if flags.Changed("pkg") {
		cfg.PackageName = opts.pkg
	}

	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}

	if flags.Changed("comments") {
		cfg.GenerateComments = opts.comments
	}

	if err := report(root.logger, config.ValidateGenerator(cfg)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	summary, err := gen.NewGenerator(cfg, gen.WithLogger(root.logger)).Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d dimensions: %d written, %d unchanged (%s)\n",
		summary.Dimensions, summary.Written, summary.Unchanged, summary.Duration.Round(time.Millisecond))

	return nil
}
