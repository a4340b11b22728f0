package config

import (
	"fmt"
	"go/token"
	"path/filepath"

	"multikey-generator/internal/common"
	"multikey-generator/internal/diagnostic"
	"multikey-generator/internal/dimension"
	"multikey-generator/internal/gen"
	"multikey-generator/primitive"
)

// SupportedVersion is the only configuration schema version understood.
const SupportedVersion = "1"

// Validate checks the whole file. Values are checked after defaults are
// applied, so a parsed File never reports missing optional keys.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "")
		return res
	}

	if f.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, want %q", f.Version, SupportedVersion), "version")
	}

	res.Merge(*ValidateGenerator(f.Generator()))

	p, err := f.Primitive()
	if err != nil {
		res.AddError("invalid_categories", err.Error(), "primitives.categories")
	} else {
		res.Merge(*ValidatePrimitive(p))
	}

	return res
}

// ValidateGenerator checks a container generation configuration, typically
// after command line overrides were applied.
func ValidateGenerator(cfg gen.GeneratorConfig) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if !token.IsIdentifier(cfg.PackageName) {
		res.AddError("invalid_package_name",
			fmt.Sprintf("package name %q is not a Go identifier", cfg.PackageName), "containers.package")
	}

	if cfg.OutputDir == "" {
		res.AddError("output_dir_empty", "output directory is empty", "containers.output")
	} else if alias := common.PkgAlias(filepath.ToSlash(cfg.OutputDir)); alias != cfg.PackageName {
		res.AddWarning("package_dir_mismatch",
			fmt.Sprintf("package %q is written to directory %q", cfg.PackageName, alias), "containers.package")
	}

	if cfg.From < dimension.MinDimension {
		res.AddError("dimension_below_minimum",
			fmt.Sprintf("from %d is below the minimum dimension %d", cfg.From, dimension.MinDimension), "containers.from")
	}

	if cfg.From > cfg.To {
		res.AddError("empty_range", fmt.Sprintf("from %d is above to %d", cfg.From, cfg.To), "containers.to")
	}

	if def := gen.DefaultGeneratorConfig(); cfg.To > def.To {
		res.AddInfo("above_default_range",
			fmt.Sprintf("to %d exceeds the default upper bound %d", cfg.To, def.To), "containers.to")
	}

	if cfg.Workers < 0 {
		res.AddError("negative_workers", fmt.Sprintf("workers %d is negative", cfg.Workers), "containers.workers")
	}

	return res
}

// ValidatePrimitive checks a primitive expansion configuration.
func ValidatePrimitive(cfg primitive.Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if cfg.TemplatesDir == "" {
		res.AddError("templates_dir_empty", "templates directory is empty", "primitives.templates")
	}

	if cfg.OutputDir == "" {
		res.AddError("output_dir_empty", "output directory is empty", "primitives.output")
	}

	if cfg.TemplatesDir != "" && filepath.Clean(cfg.TemplatesDir) == filepath.Clean(cfg.OutputDir) {
		res.AddWarning("output_is_templates",
			"output directory is the templates directory, expanded files become templates", "primitives.output")
	}

	if cfg.Categories == primitive.CategoryNone {
		res.AddError("no_categories", "no primitive category selected", "primitives.categories")
	}

	return res
}
