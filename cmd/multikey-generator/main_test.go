package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestGen_WritesRange(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid")

	stdout, _, err := execute(t, "gen", "--from", "3", "--to", "5", "--out", out, "--pkg", "grid")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 dimensions: 4 written, 0 unchanged")

	for _, name := range []string{"multikey_support.go", "map3d.go", "map4d.go", "map5d.go"} {
		content, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(content), "// Code generated"), name)
		assert.Contains(t, string(content), "package grid", name)
	}

	stdout, _, err = execute(t, "gen", "--from", "3", "--to", "5", "--out", out, "--pkg", "grid")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0 written, 4 unchanged")
}

func TestGen_InvalidRange(t *testing.T) {
	_, _, err := execute(t, "gen", "--from", "2", "--to", "4", "--out", t.TempDir())
	require.Error(t, err)

	_, _, err = execute(t, "gen", "--from", "9", "--to", "4", "--out", t.TempDir())
	require.Error(t, err)
}

func TestGen_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cfgout")
	cfgPath := filepath.Join(dir, "multikey.yaml")

	yaml := "containers:\n  package: fromfile\n  output: " + out + "\n  from: 3\n  to: 6\n  comments: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	stdout, _, err := execute(t, "--config", cfgPath, "gen", "--to", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 dimensions: 2 written")

	content, err := os.ReadFile(filepath.Join(out, "map3d.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package fromfile")

	_, err = os.Stat(filepath.Join(out, "map4d.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRoot_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "gen")
	require.Error(t, err)
}

func TestRoot_LogFormat(t *testing.T) {
	out := t.TempDir()

	_, stderr, err := execute(t, "--log-format", "json", "--verbose", "gen", "--from", "3", "--to", "3", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"level":"DEBUG"`)

	_, _, err = execute(t, "--log-format", "xml", "gen", "--out", out)
	require.ErrorContains(t, err, "unknown log format")
}

func TestPrim_ExpandAndDryRun(t *testing.T) {
	templates := t.TempDir()
	out := filepath.Join(t.TempDir(), "prims")

	require.NoError(t, os.WriteFile(filepath.Join(templates, "$primitiveFmt$Stack.java"),
		[]byte("class $primitiveFmt$Stack { $primitive$[] items; }"), 0o644))

	stdout, _, err := execute(t, "prim", "--templates", templates, "--out", out, "--categories", "float", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "DoubleStack.java\nFloatStack.java\n", stdout)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	stdout, _, err = execute(t, "prim", "--templates", templates, "--out", out, "--categories", "float")
	require.NoError(t, err)
	assert.Equal(t, "2 written, 0 unchanged\n", stdout)

	content, err := os.ReadFile(filepath.Join(out, "FloatStack.java"))
	require.NoError(t, err)
	assert.Equal(t, "class FloatStack { float[] items; }", string(content))
}

func TestPrim_BadCategories(t *testing.T) {
	_, _, err := execute(t, "prim", "--templates", t.TempDir(), "--out", t.TempDir(), "--categories", "boolean")
	require.Error(t, err)
}

func TestPrim_Check(t *testing.T) {
	templates := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(templates, "$primitive$.txt"), []byte("$primitiveKind$"), 0o644))

	stdout, _, err := execute(t, "prim", "--templates", templates, "--out", t.TempDir(), "--check")
	require.Error(t, err)
	assert.Contains(t, stdout, "error: $primitive$.txt: [unknown_token] unknown token $primitiveKind$ in contents")

	_, _, err = execute(t, "prim", "--templates", templates, "--out", t.TempDir())
	require.ErrorContains(t, err, "unknown_token")
}

func TestGen_InvalidPackageName(t *testing.T) {
	_, _, err := execute(t, "gen", "--from", "3", "--to", "3", "--out", t.TempDir(), "--pkg", "not-valid")
	require.ErrorContains(t, err, "invalid_package_name")
}

func TestRoot_ConfigFileIsValidated(t *testing.T) {
	dir := t.TempDir()

	unsupported := filepath.Join(dir, "v2.yaml")
	require.NoError(t, os.WriteFile(unsupported, []byte("version: \"2\"\n"), 0o644))

	_, _, err := execute(t, "--config", unsupported, "gen", "--from", "3", "--to", "3", "--out", t.TempDir())
	require.ErrorContains(t, err, "unsupported_version")

	badCategories := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(badCategories, []byte("primitives:\n  categories: boolean\n"), 0o644))

	_, _, err = execute(t, "--config", badCategories, "config")
	require.ErrorContains(t, err, "invalid_categories")
}

func TestConfig_PrintsEffectiveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "multikey.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("containers:\n  to: 12\n"), 0o644))

	stdout, _, err := execute(t, "--config", cfgPath, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version: \"1\"")
	assert.Contains(t, stdout, "to: 12")
	assert.Contains(t, stdout, "package: nmaps")

	// the printed file loads back to the same values
	dumped := filepath.Join(dir, "dumped.yaml")
	require.NoError(t, os.WriteFile(dumped, []byte(stdout), 0o644))

	again, _, err := execute(t, "--config", dumped, "config")
	require.NoError(t, err)
	assert.Equal(t, stdout, again)
}
