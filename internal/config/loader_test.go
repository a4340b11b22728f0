package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multikey-generator/internal/gen"
	"multikey-generator/primitive"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
containers:
  package: grid
  output: ./out/grid
  from: 3
  to: 9
  workers: 2
  comments: false
primitives:
  templates: ./tpl
  output: ./out/prims
  categories: integer,float
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)

	g := f.Generator()
	assert.Equal(t, gen.GeneratorConfig{
		PackageName:      "grid",
		OutputDir:        "./out/grid",
		From:             3,
		To:               9,
		Workers:          2,
		GenerateComments: false,
	}, g)

	p, err := f.Primitive()
	require.NoError(t, err)
	assert.Equal(t, "./tpl", p.TemplatesDir)
	assert.Equal(t, "./out/prims", p.OutputDir)
	assert.Equal(t, primitive.CategoryInteger|primitive.CategoryFloat, p.Categories)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(`containers: {from: 5}`))
	require.NoError(t, err)

	def := gen.DefaultGeneratorConfig()
	g := f.Generator()

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, 5, g.From)
	assert.Equal(t, def.To, g.To)
	assert.Equal(t, def.PackageName, g.PackageName)
	assert.Equal(t, def.OutputDir, g.OutputDir)
	assert.Equal(t, def.Workers, g.Workers)
	assert.True(t, g.GenerateComments)

	p, err := f.Primitive()
	require.NoError(t, err)
	assert.Equal(t, primitive.DefaultConfig(), p)
}

func TestDefault_MatchesEmptyFile(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), f)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("containers: [unterminated"))
	require.Error(t, err)

	f, err := Parse([]byte(`primitives: {categories: boolean}`))
	require.NoError(t, err)

	_, err = f.Primitive()
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multikey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("containers:\n  to: 12\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, f.Containers.To)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := Default()

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
