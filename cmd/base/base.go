/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package base provides the base command for tokensync.
package base

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/project"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/generate"
)

// Cmd is the base cobra command.
var Cmd = &cobra.Command{
	Use:   "base [files...]",
	Short: "Build base tokens from Figma variable exports",
	Long: `Build a nested base token tree from flat Figma variable exports.
Values are kept verbatim. Files may be globs; later files override earlier ones.
Without arguments, the base files from .config/tokensync.yaml are used.

Examples:
  tokensync base figma/base.json
  tokensync base -f ts --declaration tokens -o theme/tokens.ts 'figma/**/*.base.json'`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	project.AddOutputFlags(Cmd, "ts")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	p, err := project.Load(filesystem)
	if err != nil {
		return err
	}
	return build(cmd.Context(), cmd.OutOrStdout(), filesystem, p, args, project.ReadOutputFlags(cmd))
}

func build(ctx context.Context, w io.Writer, filesystem fs.FileSystem, p *generate.Project, patterns []string, o project.OutputFlags) error {
	root, err := p.Base(ctx, patterns...)
	if err != nil {
		return err
	}
	return project.Emit(w, filesystem, root, o)
}
