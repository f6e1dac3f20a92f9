/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package name provides the name command for tokensync.
package name

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/project"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/naming"
)

// Cmd is the name cobra command.
var Cmd = &cobra.Command{
	Use:   "name <names...>",
	Short: "Convert between Figma variable names and token paths",
	Long: `Convert Figma variable names to Chakra token paths, or back with --reverse.

Namespace aliases and defaultable roots come from the project config.

Examples:
  tokensync name text/fg_muted bg/default
  # fg.muted
  # bg

  tokensync name --reverse fg.muted bg
  # text/muted
  # bg/default`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("reverse", "r", false, "Convert token paths to Figma variable names")
}

func run(cmd *cobra.Command, args []string) error {
	reverse, _ := cmd.Flags().GetBool("reverse")

	p, err := project.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	for _, line := range convertNames(p.Options().Converter, args, reverse) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func convertNames(conv *naming.Converter, names []string, reverse bool) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if reverse {
			out[i] = conv.ToExternal(n)
		} else {
			out[i] = conv.ToInternal(n)
		}
	}
	return out
}
