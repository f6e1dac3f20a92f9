/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver exposes name conversion, color resolution and token
// building as Model Context Protocol tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tokensync/naming"
	"bennypowers.dev/tokensync/transform"
)

// Server is a tokensync MCP server.
type Server struct {
	server *mcp.Server
	opts   transform.Options
}

// New returns a server whose build tools use opts.
func New(version string, opts transform.Options) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: "tokensync", Version: version}, nil),
		opts:   opts,
	}
	s.registerTools()
	return s
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over t.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) converter() *naming.Converter {
	if s.opts.Converter != nil {
		return s.opts.Converter
	}
	return naming.Default()
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "to_internal",
		Description: "Convert Figma variable names (text/fg_muted) to Chakra token paths (fg.muted)",
	}, s.toInternal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "to_external",
		Description: "Convert Chakra token paths (fg.muted) to Figma variable names (text/muted)",
	}, s.toExternal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_color",
		Description: "Look up color literals in the palette and return their token references",
	}, s.resolveColor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_base",
		Description: "Build base tokens from a flat Figma variables export",
	}, s.buildBase)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_semantic",
		Description: "Build light/dark semantic tokens from two flat Figma variables exports",
	}, s.buildSemantic)
}
