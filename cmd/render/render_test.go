/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/tokensync/palette"
)

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gray", "Gray"},
		{"white", "White"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEntryTitle(t *testing.T) {
	tests := []struct {
		entry    palette.Entry
		expected string
	}{
		{palette.Entry{Hex: "#71717a", Ref: "{colors.gray.500}"}, "Gray 500"},
		{palette.Entry{Hex: "#ffffff", Ref: "{colors.white}"}, "White"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := EntryTitle(tt.entry); got != tt.expected {
				t.Errorf("EntryTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex      string
		expected string
	}{
		{"#ffffff", "#000000"},
		{"#fafafa", "#000000"},
		{"#000000", "#ffffff"},
		{"#18181b", "#ffffff"},
		{"not-a-color", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := ContrastColor(tt.hex); got != tt.expected {
				t.Errorf("ContrastColor(%q) = %q, want %q", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestPaletteRows(t *testing.T) {
	rows := PaletteRows(palette.Entries)
	if len(rows) != len(palette.Entries) {
		t.Fatalf("expected %d rows, got %d", len(palette.Entries), len(rows))
	}
	if rows[0].Name != "White" || rows[0].Ref != "{colors.white}" || !rows[0].IsColor {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestResolveRows(t *testing.T) {
	rows := ResolveRows([]string{"#FFFFFF", "#123456", "16px"})

	expected := []Row{
		{Value: "#FFFFFF", Ref: "{colors.white}", IsColor: true},
		{Value: "#123456", IsColor: true},
		{Value: "16px"},
	}
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(rows))
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], expected[i])
		}
	}
}

func TestTable(t *testing.T) {
	rows := ResolveRows([]string{"#ffffff", "16px"})

	var buf bytes.Buffer
	if err := Table(&buf, rows, Options{NoColor: true}); err != nil {
		t.Fatal(err)
	}

	expected := "#ffffff  {colors.white}\n16px     -\n"
	if buf.String() != expected {
		t.Errorf("Table() =\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestTable_WithNames(t *testing.T) {
	rows := []Row{
		{Name: "White", Value: "#ffffff", Ref: "{colors.white}", IsColor: true},
		{Name: "Gray 500", Value: "#71717a", Ref: "{colors.gray.500}", IsColor: true},
	}

	var buf bytes.Buffer
	if err := Table(&buf, rows, Options{NoColor: true}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "Gray 500  #71717a  {colors.gray.500}" {
		t.Errorf("unexpected line: %q", lines[1])
	}
}

func TestTable_Swatch(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{Value: "#ffffff", Ref: "{colors.white}", IsColor: true}}
	if err := Table(&buf, rows, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "#ffffff") || !strings.Contains(buf.String(), "{colors.white}") {
		t.Errorf("swatch output lost its content: %q", buf.String())
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, nil, Options{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestMarkdown(t *testing.T) {
	rows := []Row{{Name: "White", Value: "#ffffff", Ref: "{colors.white}"}}

	var buf bytes.Buffer
	if err := Markdown(&buf, rows); err != nil {
		t.Fatal(err)
	}

	expected := "| Name  | Value   | Reference      |\n" +
		"|-------|---------|----------------|\n" +
		"| White | #ffffff | {colors.white} |\n"
	if buf.String() != expected {
		t.Errorf("Markdown() =\n%s\nwant\n%s", buf.String(), expected)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, ResolveRows([]string{"#000000"})); err != nil {
		t.Fatal(err)
	}

	var decoded []Row
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Ref != "{colors.black}" {
		t.Errorf("unexpected decoded rows: %+v", decoded)
	}

	buf.Reset()
	if err := JSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
