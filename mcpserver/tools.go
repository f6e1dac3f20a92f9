/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/serialize"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/variables"
)

// NamesInput is the input of to_internal and to_external.
type NamesInput struct {
	Names []string `json:"names" jsonschema:"names or token paths to convert"`
}

// NamesOutput pairs each input with its conversion, in input order.
type NamesOutput struct {
	Results []string `json:"results"`
}

func (s *Server) toInternal(_ context.Context, _ *mcp.CallToolRequest, in NamesInput) (*mcp.CallToolResult, NamesOutput, error) {
	conv := s.converter()
	out := NamesOutput{Results: make([]string, len(in.Names))}
	for i, n := range in.Names {
		out.Results[i] = conv.ToInternal(n)
	}
	return nil, out, nil
}

func (s *Server) toExternal(_ context.Context, _ *mcp.CallToolRequest, in NamesInput) (*mcp.CallToolResult, NamesOutput, error) {
	conv := s.converter()
	out := NamesOutput{Results: make([]string, len(in.Names))}
	for i, n := range in.Names {
		out.Results[i] = conv.ToExternal(n)
	}
	return nil, out, nil
}

// ColorsInput is the input of resolve_color.
type ColorsInput struct {
	Values []string `json:"values" jsonschema:"color literals such as #ffffff"`
}

// Resolution is the palette lookup result for one value.
type Resolution struct {
	Value    string `json:"value"`
	Resolved string `json:"resolved"`
	Found    bool   `json:"found"`
	IsColor  bool   `json:"isColor"`
}

// ColorsOutput is the output of resolve_color.
type ColorsOutput struct {
	Results []Resolution `json:"results"`
}

func (s *Server) resolveColor(_ context.Context, _ *mcp.CallToolRequest, in ColorsInput) (*mcp.CallToolResult, ColorsOutput, error) {
	out := ColorsOutput{Results: make([]Resolution, len(in.Values))}
	for i, v := range in.Values {
		ref, found := palette.Lookup(v)
		if !found {
			ref = v
		}
		out.Results[i] = Resolution{Value: v, Resolved: ref, Found: found, IsColor: palette.IsColor(v)}
	}
	return nil, out, nil
}

// BaseInput is the input of build_base.
type BaseInput struct {
	Variables string `json:"variables" jsonschema:"flat Figma variables export as JSON, JSONC or YAML"`
	Format    string `json:"format,omitempty" jsonschema:"output format: ts, json or yaml (default json)"`
}

// BuildOutput is the output of the build tools.
type BuildOutput struct {
	Output      string   `json:"output"`
	Diagnostics []string `json:"diagnostics"`
}

func (s *Server) buildBase(_ context.Context, _ *mcp.CallToolRequest, in BaseInput) (*mcp.CallToolResult, BuildOutput, error) {
	format, err := serialize.ParseFormat(in.Format)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	vars, err := variables.Parse([]byte(in.Variables))
	if err != nil {
		return nil, BuildOutput{}, fmt.Errorf("variables: %w", err)
	}
	root, err := transform.BuildBase(vars, s.opts)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	data, err := serialize.Marshal(root, format, serialize.Options{})
	if err != nil {
		return nil, BuildOutput{}, err
	}
	return nil, BuildOutput{Output: string(data), Diagnostics: []string{}}, nil
}

// SemanticInput is the input of build_semantic.
type SemanticInput struct {
	Light  string `json:"light" jsonschema:"light mode variables export as JSON, JSONC or YAML"`
	Dark   string `json:"dark" jsonschema:"dark mode variables export as JSON, JSONC or YAML"`
	Format string `json:"format,omitempty" jsonschema:"output format: ts, json or yaml (default json)"`
}

func (s *Server) buildSemantic(_ context.Context, _ *mcp.CallToolRequest, in SemanticInput) (*mcp.CallToolResult, BuildOutput, error) {
	format, err := serialize.ParseFormat(in.Format)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	light, err := variables.Parse([]byte(in.Light))
	if err != nil {
		return nil, BuildOutput{}, fmt.Errorf("light: %w", err)
	}
	dark, err := variables.Parse([]byte(in.Dark))
	if err != nil {
		return nil, BuildOutput{}, fmt.Errorf("dark: %w", err)
	}
	result, err := transform.BuildSemantic(light, dark, s.opts)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	data, err := serialize.Marshal(result.Tree, format, serialize.Options{})
	if err != nil {
		return nil, BuildOutput{}, err
	}

	out := BuildOutput{Output: string(data), Diagnostics: make([]string, len(result.Diagnostics))}
	for i, d := range result.Diagnostics {
		out.Diagnostics[i] = d.String()
	}
	return nil, out, nil
}
