package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multikey-generator/internal/diagnostic"
	"multikey-generator/internal/gen"
	"multikey-generator/primitive"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Defaults(t *testing.T) {
	res := Validate(Default())
	require.NoError(t, res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"config_is_nil"}, codes(res.Errors))
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	f, err := Parse([]byte(`
version: "2"
containers:
  package: my-maps
  output: ./out/grid
  from: 2
  to: 300
  workers: -1
primitives:
  templates: ./tpl
  output: ./tpl/
  categories: boolean
`))
	require.NoError(t, err)

	res := Validate(f)

	assert.ElementsMatch(t, []string{
		"unsupported_version",
		"invalid_package_name",
		"dimension_below_minimum",
		"negative_workers",
		"invalid_categories",
	}, codes(res.Errors))
	assert.Equal(t, []string{"package_dir_mismatch"}, codes(res.Warnings))
	assert.Equal(t, []string{"above_default_range"}, codes(res.Infos))
}

func TestValidateGenerator_EmptyRange(t *testing.T) {
	cfg := gen.DefaultGeneratorConfig()
	cfg.From, cfg.To = 9, 8
	cfg.OutputDir = ""

	res := ValidateGenerator(cfg)
	assert.ElementsMatch(t, []string{"empty_range", "output_dir_empty"}, codes(res.Errors))
}

func TestValidatePrimitive(t *testing.T) {
	res := ValidatePrimitive(primitive.Config{TemplatesDir: "tpl", OutputDir: "tpl/.", Categories: primitive.CategoryNone})

	assert.Equal(t, []string{"no_categories"}, codes(res.Errors))
	assert.Equal(t, []string{"output_is_templates"}, codes(res.Warnings))
}
