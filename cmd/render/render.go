/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokensync/palette"
)

// Row holds computed display values for a single color value.
type Row struct {
	Name    string `json:"name,omitempty"` // Display name, e.g. "Gray 500"
	Value   string `json:"value"`          // The literal as written
	Ref     string `json:"ref,omitempty"`  // Palette reference, if any
	IsColor bool   `json:"isColor"`        // Whether Value parses as a CSS color
}

// Options configures table output.
type Options struct {
	// NoColor disables swatches.
	NoColor bool
}

// IsTerminal reports whether w is a terminal. Swatches are only useful there.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PaletteRows returns one row per palette entry.
func PaletteRows(entries []palette.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Name:    EntryTitle(e),
			Value:   e.Hex,
			Ref:     e.Ref,
			IsColor: true,
		})
	}
	return rows
}

// ResolveRows returns one row per value, resolved against the palette.
func ResolveRows(values []string) []Row {
	rows := make([]Row, 0, len(values))
	for _, v := range values {
		row := Row{Value: v, IsColor: palette.IsColor(v)}
		if ref, ok := palette.Lookup(v); ok {
			row.Ref = ref
		}
		rows = append(rows, row)
	}
	return rows
}

// EntryTitle returns a human-readable name for a palette entry,
// e.g. "Gray 500" or "White".
func EntryTitle(e palette.Entry) string {
	title := toTitleCase(e.Family())
	if shade := e.Shade(); shade != "" {
		title += " " + shade
	}
	return title
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, val int) {
	name, val = 4, 5 // minimums for headers
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// Swatch returns a block filled with the given color, labelled with text
// in a contrasting color. It returns label unstyled if value is not a color.
func Swatch(value, label string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return label
	}
	bg := c.HexString()
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ContrastColor(bg))).
		Padding(0, 1)
	return style.Render(label)
}

// ContrastColor returns black or white, whichever reads better on hex.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Table renders rows as an aligned table.
func Table(w io.Writer, rows []Row, opts Options) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, valW := ColumnWidths(rows)
	hasNames := false
	for _, r := range rows {
		if r.Name != "" {
			hasNames = true
			break
		}
	}
	for _, r := range rows {
		value := fmt.Sprintf("%-*s", valW, r.Value)
		if r.IsColor && !opts.NoColor {
			value = Swatch(r.Value, value)
		}
		ref := r.Ref
		if ref == "" {
			ref = "-"
		}
		var line string
		if hasNames {
			line = fmt.Sprintf("%-*s  %s  %s", nameW, r.Name, value, ref)
		} else {
			line = fmt.Sprintf("%s  %s", value, ref)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as a markdown table.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, valW := ColumnWidths(rows)
	refW := 9 // "Reference"
	for _, r := range rows {
		if len(r.Ref) > refW {
			refW = len(r.Ref)
		}
	}
	fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", refW, "Reference")
	fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", refW))
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, valW, r.Value, refW, r.Ref); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if rows == nil {
		rows = []Row{}
	}
	return enc.Encode(rows)
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
