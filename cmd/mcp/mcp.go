/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for tokensync.
package mcp

import (
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/project"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/internal/version"
	"bennypowers.dev/tokensync/mcpserver"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run a Model Context Protocol server on stdio",
	Long: `Run a Model Context Protocol server over stdin/stdout.

Tools:
  to_internal     Figma variable names to token paths
  to_external     token paths to Figma variable names
  resolve_color   color literals to palette references
  build_base      base tokens from a variables export
  build_semantic  semantic tokens from light and dark exports

Aliases and the conflict policy come from the project config.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	// stdout carries the protocol
	logger.SetOutput(io.Discard)

	return mcpserver.New(version.Get(), p.Options()).Run(cmd.Context())
}
