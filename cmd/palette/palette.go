/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette provides the palette command for tokensync.
package palette

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/render"
	palettelib "bennypowers.dev/tokensync/palette"
)

// Cmd is the palette cobra command.
var Cmd = &cobra.Command{
	Use:   "palette",
	Short: "List the palette colors that semantic tokens resolve to",
	Long: `List the color literal table: every hex value that semantic token
generation replaces with a palette reference.

Examples:
  tokensync palette
  tokensync palette --family gray --no-color
  tokensync palette --format json`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, markdown")
	Cmd.Flags().String("family", "", "Only list one palette family (e.g. gray)")
	Cmd.Flags().Bool("no-color", false, "Disable color swatches")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	family, _ := cmd.Flags().GetString("family")
	noColor, _ := cmd.Flags().GetBool("no-color")
	w := cmd.OutOrStdout()
	return list(w, family, format, noColor || !render.IsTerminal(w))
}

func list(w io.Writer, family, format string, noColor bool) error {
	entries := palettelib.Entries
	if family != "" {
		entries = palettelib.Family(strings.ToLower(family))
		if len(entries) == 0 {
			return fmt.Errorf("unknown palette family: %s (valid: %s)",
				family, strings.Join(palettelib.Families(), ", "))
		}
	}

	rows := render.PaletteRows(entries)
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
