/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensync/config"
	"bennypowers.dev/tokensync/generate"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/internal/mapfs"
	"bennypowers.dev/tokensync/serialize"
	"bennypowers.dev/tokensync/testutil"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
)

func loadProject(t *testing.T) (*mapfs.MapFileSystem, *generate.Project) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "project", "/project")
	cfg, err := config.Load(mfs, "/project")
	require.NoError(t, err)
	p, err := generate.New(mfs, "/project", cfg)
	require.NoError(t, err)
	return mfs, p
}

func quiet(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(io.Discard) })
	return &buf
}

func TestSync(t *testing.T) {
	logs := quiet(t)
	mfs, p := loadProject(t)

	report, err := p.Sync(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"theme/generated/tokens.ts",
		"theme/generated/semantic-tokens.json",
		"theme/generated/semantic-tokens.ts",
	}, report.Written)
	assert.Equal(t, []transform.Diagnostic{
		{Name: "border/emphasized", Missing: transform.ModeDark},
	}, report.Diagnostics)

	for _, name := range []string{"tokens.ts", "semantic-tokens.json", "semantic-tokens.ts"} {
		data, err := mfs.ReadFile("/project/theme/generated/" + name)
		require.NoError(t, err, name)
		testutil.Golden(t, "golden/sync/"+name, data)
	}

	assert.Contains(t, logs.String(), "Wrote theme/generated/tokens.ts")
}

func TestSync_CountsFailures(t *testing.T) {
	logs := quiet(t)
	mfs := testutil.NewFixtureFS(t, "project", "/project")
	// A file where the output directory should be.
	mfs.AddFile("/project/blocked", "", 0o644)

	cfg := &config.Config{
		Base:  []string{"figma/base.json"},
		Light: []string{"figma/missing.json"},
		Dark:  []string{"figma/modes/dark.json"},
		Outputs: []config.OutputSpec{
			{Kind: config.KindBase, Format: "ts", Path: "out/tokens.ts"},
			{Kind: config.KindSemantic, Format: "json", Path: "out/semantic.json"},
			{Kind: config.KindBase, Format: "json", Path: "blocked/tokens.json"},
		},
	}
	p, err := generate.New(mfs, "/project", cfg)
	require.NoError(t, err)

	report, err := p.Sync(t.Context())
	require.EqualError(t, err, "failed to generate 2 output(s)")
	assert.Equal(t, []string{"out/tokens.ts"}, report.Written)
	assert.True(t, mfs.Exists("/project/out/tokens.ts"))
	assert.Contains(t, logs.String(), "warning: error generating out/semantic.json")
}

func TestSync_NoOutputs(t *testing.T) {
	p, err := generate.New(mapfs.New(), "/project", nil)
	require.NoError(t, err)
	_, err = p.Sync(t.Context())
	assert.Error(t, err)
}

func TestBase(t *testing.T) {
	_, p := loadProject(t)

	root, err := p.Base(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"gray", "radii"}, root.Keys())

	again, err := p.Base(t.Context())
	require.NoError(t, err)
	assert.Same(t, root, again, "configured tree is built once")

	modes, err := p.Base(t.Context(), "figma/modes/light.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"bg", "fg", "border"}, modes.Keys())
}

func TestBase_NoInputs(t *testing.T) {
	p, err := generate.New(mapfs.New(), "/project", nil)
	require.NoError(t, err)

	_, err = p.Base(t.Context())
	assert.ErrorIs(t, err, generate.ErrNoInputs)

	_, err = p.Semantic(t.Context(), nil, nil)
	assert.ErrorIs(t, err, generate.ErrNoInputs)
}

func TestSemantic_ExplicitFiles(t *testing.T) {
	_, p := loadProject(t)

	result, err := p.Semantic(t.Context(), []string{"figma/modes/dark.json"}, []string{"figma/modes/light.json"})
	require.NoError(t, err)

	v, ok := result.Tree.Lookup("bg")
	require.True(t, ok)
	assert.Equal(t, "{colors.gray.900}", v.Modes.Light)
	assert.Equal(t, "{colors.white}", v.Modes.Dark)
	assert.Equal(t, []transform.Diagnostic{
		{Name: "border/emphasized", Missing: transform.ModeLight},
	}, result.Diagnostics)
}

func TestNew_Policy(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/base.json", `{"bg/default": "#fff", "bg/subtle": "#fafafa"}`, 0o644)

	p, err := generate.New(mfs, "/project", &config.Config{Base: []string{"base.json"}})
	require.NoError(t, err)
	_, err = p.Base(t.Context())
	assert.ErrorIs(t, err, tree.ErrPathConflict)

	p, err = generate.New(mfs, "/project", &config.Config{OnConflict: "overwrite", Base: []string{"base.json"}})
	require.NoError(t, err)
	root, err := p.Base(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, root.Leaves())

	_, err = generate.New(mfs, "/project", &config.Config{OnConflict: "merge"})
	assert.ErrorIs(t, err, tree.ErrUnknownPolicy)
}

func TestRender_AppendsNewline(t *testing.T) {
	root := tree.New()
	require.NoError(t, root.Set([]string{"a"}, tree.Literal("1"), "a", tree.PolicyFail))

	out, err := generate.Render(root, serialize.FormatTS, serialize.Options{})
	require.NoError(t, err)
	assert.Equal(t, "  a: { value: \"1\" },\n", string(out))

	out, err = generate.Render(tree.New(), serialize.FormatTS, serialize.Options{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPath(t *testing.T) {
	p, err := generate.New(mapfs.New(), "/project", nil)
	require.NoError(t, err)
	assert.Equal(t, "/project/out/tokens.ts", p.Path("out/tokens.ts"))
	assert.Equal(t, "/elsewhere/tokens.ts", p.Path("/elsewhere/tokens.ts"))
}
