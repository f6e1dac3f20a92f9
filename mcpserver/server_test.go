/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensync/mcpserver"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
)

func connect(t *testing.T, opts transform.Options) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := mcpserver.New("test", opts).Connect(ctx, serverTransport)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call[T any](t *testing.T, session *mcp.ClientSession, name string, args map[string]any) T {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error: %+v", name, res.Content)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestListTools(t *testing.T) {
	session := connect(t, transform.Options{})

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"to_internal", "to_external", "resolve_color", "build_base", "build_semantic"}, names)
}

func TestNames(t *testing.T) {
	session := connect(t, transform.Options{})

	out := call[mcpserver.NamesOutput](t, session, "to_internal", map[string]any{
		"names": []string{"text/fg_muted", "bg/default", "gray/500"},
	})
	assert.Equal(t, []string{"fg.muted", "bg", "gray.500"}, out.Results)

	out = call[mcpserver.NamesOutput](t, session, "to_external", map[string]any{
		"names": []string{"fg", "gray.500"},
	})
	assert.Equal(t, []string{"text/default", "gray/500"}, out.Results)
}

func TestResolveColor(t *testing.T) {
	session := connect(t, transform.Options{})

	out := call[mcpserver.ColorsOutput](t, session, "resolve_color", map[string]any{
		"values": []string{"#FFFFFF", "16px"},
	})
	assert.Equal(t, []mcpserver.Resolution{
		{Value: "#FFFFFF", Resolved: "{colors.white}", Found: true, IsColor: true},
		{Value: "16px", Resolved: "16px"},
	}, out.Results)
}

func TestBuildBase(t *testing.T) {
	session := connect(t, transform.Options{})

	out := call[mcpserver.BuildOutput](t, session, "build_base", map[string]any{
		"variables": `{"gray/500": "#71717a", "black": "#000000"}`,
		"format":    "ts",
	})
	assert.Equal(t, "  gray: {\n    500: { value: \"#71717a\" },\n  },\n  black: { value: \"#000000\" },\n", out.Output)
	assert.Empty(t, out.Diagnostics)
}

func TestBuildBase_Errors(t *testing.T) {
	session := connect(t, transform.Options{})

	for name, args := range map[string]map[string]any{
		"nested":   {"variables": `{"a": {"b": "c"}}`},
		"format":   {"variables": `{}`, "format": "scss"},
		"conflict": {"variables": `{"bg/default": "#fff", "bg/subtle": "#fafafa"}`},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "build_base", Arguments: args})
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestBuildSemantic(t *testing.T) {
	session := connect(t, transform.Options{OnConflict: tree.PolicyFail})

	out := call[mcpserver.BuildOutput](t, session, "build_semantic", map[string]any{
		"light": "bg/default: '#ffffff'\nbg/subtle: '#fafafa'\n",
		"dark":  `{"bg/default": "#18181b"}`,
	})
	assert.JSONEq(t, `{"bg": {"value": {"_light": "{colors.white}", "_dark": "{colors.gray.900}"}}}`, out.Output)
	assert.Equal(t, []string{"token bg/subtle missing in dark mode"}, out.Diagnostics)
}
