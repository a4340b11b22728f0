package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multikey-generator/internal/config"
	"multikey-generator/internal/gen"
	"multikey-generator/primitive"
)

type primOptions struct {
	templates  string
	out        string
	categories string
	watch      bool
	dryRun     bool
	check      bool
}

func newPrimCmd(root *rootOptions) *cobra.Command {
	opts := &primOptions{}

	cmd := &cobra.Command{
		Use:   "prim",
		Short: "Expand primitive-token templates",
		Long: "Expand every template in --templates once per primitive kind, " +
			"substituting the $primitive$ tokens in file names and contents.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrim(cmd, root, opts)
		},
	}

	def := primitive.DefaultConfig()

	cmd.Flags().StringVarP(&opts.templates, "templates", "t", def.TemplatesDir, "template directory")
	cmd.Flags().StringVarP(&opts.out, "out", "o", def.OutputDir, "output directory")
	cmd.Flags().StringVar(&opts.categories, "categories", "", "comma separated kind categories (integer,float,character)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-expand whenever a template changes")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "list the files that would be written")
	cmd.Flags().BoolVar(&opts.check, "check", false, "lint the templates and print every diagnostic")

	return cmd
}

func runPrim(cmd *cobra.Command, root *rootOptions, opts *primOptions) error {
	file, err := root.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("templates") {
		file.Primitives.Templates = opts.templates
	}

	if flags.Changed("out") {
		file.Primitives.Output = opts.out
	}

	if flags.Changed("categories") {
		file.Primitives.Categories = opts.categories
	}

	cfg, err := file.Primitive()
	if err != nil {
		return err
	}

	if err := report(root.logger, config.ValidatePrimitive(cfg)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()

	lint, err := primitive.Lint(os.DirFS(cfg.TemplatesDir))
	if err != nil {
		return fmt.Errorf("prim: %w", err)
	}

	if opts.check {
		for _, d := range lint.All() {
			fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
		}

		return lint.Error()
	}

	if err := report(root.logger, lint); err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	if opts.dryRun {
		files, err := primitive.Generate(os.DirFS(cfg.TemplatesDir), cfg.Categories)
		if err != nil {
			return fmt.Errorf("prim: %w", err)
		}

		for _, name := range primitive.Names(files) {
			fmt.Fprintln(out, name)
		}

		return nil
	}

	if opts.watch {
		root.logger.Info("watching templates", "dir", cfg.TemplatesDir, "out", cfg.OutputDir)

		err := primitive.Watch(cmd.Context(), cfg, primitive.DefaultDebounce, func(stats gen.WriteStats, err error) {
			if err != nil {
				root.logger.Error("expansion failed", "error", err)
				return
			}

			root.logger.Info("expanded templates", "written", stats.Written, "unchanged", stats.Unchanged)
		})
		if err != nil {
			return fmt.Errorf("prim: %w", err)
		}

		return nil
	}

	stats, err := primitive.Expand(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("prim: %w", err)
	}

	fmt.Fprintf(out, "%d written, %d unchanged\n", stats.Written, stats.Unchanged)

	return nil
}
