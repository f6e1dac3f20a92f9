/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package semantic provides the semantic command for tokensync.
package semantic

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/project"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/generate"
)

// Cmd is the semantic cobra command.
var Cmd = &cobra.Command{
	Use:   "semantic",
	Short: "Build semantic tokens from light and dark Figma exports",
	Long: `Build conditional semantic tokens from light and dark mode Figma variable
exports. Color literals found in the palette become token references.

Tokens missing a value in either mode are skipped with a warning; --strict
makes them an error. Without --light/--dark, the files from
.config/tokensync.yaml are used.

Examples:
  tokensync semantic --light figma/light.json --dark figma/dark.json
  tokensync semantic -f ts --declaration semanticTokens -o theme/semantic-tokens.ts`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("light", nil, "Light mode variable files (repeatable, globs allowed)")
	Cmd.Flags().StringArray("dark", nil, "Dark mode variable files (repeatable, globs allowed)")
	Cmd.Flags().Bool("strict", false, "Fail when a token is missing in either mode")
	project.AddOutputFlags(Cmd, "json")
}

func run(cmd *cobra.Command, args []string) error {
	light, _ := cmd.Flags().GetStringArray("light")
	dark, _ := cmd.Flags().GetStringArray("dark")
	strict, _ := cmd.Flags().GetBool("strict")

	filesystem := fs.NewOSFileSystem()
	p, err := project.Load(filesystem)
	if err != nil {
		return err
	}
	return build(cmd.Context(), cmd.OutOrStdout(), filesystem, p, light, dark, strict, project.ReadOutputFlags(cmd))
}

func build(
	ctx context.Context,
	w io.Writer,
	filesystem fs.FileSystem,
	p *generate.Project,
	light, dark []string,
	strict bool,
	o project.OutputFlags,
) error {
	result, err := p.Semantic(ctx, light, dark)
	if err != nil {
		return err
	}
	if err := project.CheckDiagnostics(result.Diagnostics, strict); err != nil {
		return err
	}

	return project.Emit(w, filesystem, result.Tree, o)
}
