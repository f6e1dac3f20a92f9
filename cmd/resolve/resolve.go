/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tokensync.
package resolve

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/render"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <values...>",
	Short: "Resolve color literals to palette references",
	Long: `Look up color literals in the palette and print the token reference
that replaces them in semantic tokens. Values without a palette entry are
printed unchanged with "-" in place of a reference.

Examples:
  tokensync resolve "#FFFFFF" "#52525b" 16px`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, markdown")
	Cmd.Flags().Bool("no-color", false, "Disable color swatches")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	w := cmd.OutOrStdout()
	return write(w, render.ResolveRows(args), format, noColor || !render.IsTerminal(w))
}

func write(w io.Writer, rows []render.Row, format string, noColor bool) error {
	switch format {
	case "table":
		return render.Table(w, rows, render.Options{NoColor: noColor})
	case "json":
		return render.JSON(w, rows)
	case "markdown", "md":
		return render.Markdown(w, rows)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json, markdown)", format)
	}
}
