/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensync/naming"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
	"bennypowers.dev/tokensync/variables"
)

func TestBuildBase(t *testing.T) {
	root, err := transform.BuildBase(variables.List{
		{Name: "gray/500", Value: "#71717a"},
	}, transform.Options{})
	require.NoError(t, err)

	v, ok := root.Lookup("gray.500")
	require.True(t, ok)
	assert.Equal(t, "#71717a", v.Literal)
	assert.False(t, v.IsConditional())
}

func TestBuildBase_KeepsValuesVerbatim(t *testing.T) {
	root, err := transform.BuildBase(variables.List{
		{Name: "colors/white", Value: "#FFFFFF"},
		{Name: "radii/l2", Value: "0.25rem"},
		{Name: "easings/default", Value: "cubic-bezier(0.2, 0, 0, 1)"},
	}, transform.Options{})
	require.NoError(t, err)

	v, _ := root.Lookup("colors.white")
	assert.Equal(t, "#FFFFFF", v.Literal, "base tokens never become references")
	v, _ = root.Lookup("radii.l2")
	assert.Equal(t, "0.25rem", v.Literal)
	v, ok := root.Lookup("easings")
	require.True(t, ok)
	assert.Equal(t, "cubic-bezier(0.2, 0, 0, 1)", v.Literal)
	assert.Equal(t, []string{"colors", "radii", "easings"}, root.Keys())
}

func TestBuildBase_Conflict(t *testing.T) {
	vars := variables.List{
		{Name: "bg/default", Value: "#ffffff"},
		{Name: "bg/subtle", Value: "#fafafa"},
	}

	_, err := transform.BuildBase(vars, transform.Options{})
	assert.ErrorIs(t, err, tree.ErrPathConflict)

	root, err := transform.BuildBase(vars, transform.Options{OnConflict: tree.PolicyOverwrite})
	require.NoError(t, err)
	v, ok := root.Lookup("bg.subtle")
	require.True(t, ok)
	assert.Equal(t, "#fafafa", v.Literal)
}

func TestBuildBase_EmptySegment(t *testing.T) {
	_, err := transform.BuildBase(variables.List{{Name: "gray//500", Value: "#71717a"}}, transform.Options{})
	assert.ErrorIs(t, err, tree.ErrEmptySegment)
}

func TestBuildBase_CustomConverter(t *testing.T) {
	conv := naming.MustNew([]naming.Alias{{External: "surface", Internal: "bg"}}, nil)
	root, err := transform.BuildBase(variables.List{
		{Name: "surface/raised", Value: "#ffffff"},
		{Name: "text/fg", Value: "#000000"},
	}, transform.Options{Converter: conv})
	require.NoError(t, err)

	_, ok := root.Lookup("bg.raised")
	assert.True(t, ok)
	_, ok = root.Lookup("text.fg")
	assert.True(t, ok, "text is not aliased by the custom converter")
}

func TestBuildSemantic(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{{Name: "bg/default", Value: "#ffffff"}},
		variables.List{{Name: "bg/default", Value: "#18181b"}},
		transform.Options{},
	)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)

	v, ok := result.Tree.Lookup("bg")
	require.True(t, ok)
	require.True(t, v.IsConditional())
	assert.Equal(t, "{colors.white}", v.Modes.Light)
	assert.Equal(t, "{colors.gray.900}", v.Modes.Dark)
}

func TestBuildSemantic_UnknownAndNonColorValuesPassThrough(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{
			{Name: "text/fg_muted", Value: "#123456"},
			{Name: "shadows/sm", Value: "0 1px 2px rgba(0, 0, 0, 0.1)"},
		},
		variables.List{
			{Name: "text/fg_muted", Value: "#A1A1AA"},
			{Name: "shadows/sm", Value: "0 1px 2px rgba(0, 0, 0, 0.5)"},
		},
		transform.Options{},
	)
	require.NoError(t, err)

	v, _ := result.Tree.Lookup("fg.muted")
	assert.Equal(t, "#123456", v.Modes.Light)
	assert.Equal(t, "{colors.gray.400}", v.Modes.Dark)

	v, _ = result.Tree.Lookup("shadows.sm")
	assert.Equal(t, "0 1px 2px rgba(0, 0, 0, 0.1)", v.Modes.Light)
}

func TestBuildSemantic_KeepLiterals(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{{Name: "bg/default", Value: "#ffffff"}},
		variables.List{{Name: "bg/default", Value: "#18181b"}},
		transform.Options{KeepLiterals: true},
	)
	require.NoError(t, err)
	v, _ := result.Tree.Lookup("bg")
	assert.Equal(t, "#ffffff", v.Modes.Light)
	assert.Equal(t, "#18181b", v.Modes.Dark)
}

func TestBuildSemantic_MissingModes(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{
			{Name: "bg/default", Value: "#ffffff"},
			{Name: "bg/emphasized", Value: "#e4e4e7"},
			{Name: "border/muted", Value: ""},
		},
		variables.List{
			{Name: "bg/default", Value: "#18181b"},
			{Name: "text/fg_inverted", Value: "#000000"},
			{Name: "border/muted", Value: "#27272a"},
		},
		transform.Options{},
	)
	require.NoError(t, err)

	assert.Equal(t, []transform.Diagnostic{
		{Name: "bg/emphasized", Missing: transform.ModeDark},
		{Name: "border/muted", Missing: transform.ModeLight},
		{Name: "text/fg_inverted", Missing: transform.ModeLight},
	}, result.Diagnostics)

	assert.Equal(t, 1, result.Tree.Leaves())
	_, ok := result.Tree.Lookup("bg.emphasized")
	assert.False(t, ok)
	_, ok = result.Tree.Lookup("fg.inverted")
	assert.False(t, ok)
}

func TestBuildSemantic_LightOnlyKeyYieldsOneDiagnostic(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{{Name: "bg/subtle", Value: "#fafafa"}},
		nil,
		transform.Options{},
	)
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "token bg/subtle missing in dark mode", result.Diagnostics[0].String())
	assert.Equal(t, 0, result.Tree.Len())
}

func TestBuildSemantic_Order(t *testing.T) {
	result, err := transform.BuildSemantic(
		variables.List{
			{Name: "text/fg", Value: "#000000"},
			{Name: "bg/default", Value: "#ffffff"},
		},
		variables.List{
			{Name: "bg/default", Value: "#18181b"},
			{Name: "text/fg", Value: "#ffffff"},
		},
		transform.Options{},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"fg", "bg"}, result.Tree.Keys())
}

func TestBuildSemantic_Conflict(t *testing.T) {
	light := variables.List{
		{Name: "bg/default", Value: "#ffffff"},
		{Name: "bg", Value: "#fafafa"},
	}
	_, err := transform.BuildSemantic(light, light, transform.Options{})
	assert.ErrorIs(t, err, tree.ErrPathConflict)
}
