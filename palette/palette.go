/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette maps base palette color literals to token references.
package palette

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Entry pairs a lowercase hex color with its token reference.
type Entry struct {
	Hex string `json:"hex"`
	Ref string `json:"ref"`
}

// Path returns the dot path inside the reference braces, e.g. "colors.gray.500".
func (e Entry) Path() string {
	return strings.TrimSuffix(strings.TrimPrefix(e.Ref, "{"), "}")
}

// Family returns the palette family name ("gray", "white").
func (e Entry) Family() string {
	parts := strings.Split(e.Path(), ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Shade returns the shade step ("500"), or "" for single-value colors like white.
func (e Entry) Shade() string {
	parts := strings.Split(e.Path(), ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

var byHex = func() map[string]string {
	m := make(map[string]string, len(Entries))
	for _, e := range Entries {
		m[e.Hex] = e.Ref
	}
	return m
}()

// Lookup returns the token reference for a color literal. Matching is
// case-insensitive and exact; "#fff" does not match "#ffffff".
func Lookup(value string) (string, bool) {
	ref, ok := byHex[strings.ToLower(value)]
	return ref, ok
}

// Resolve returns the token reference for value, or value unchanged when it
// is not a known palette color.
func Resolve(value string) string {
	if ref, ok := Lookup(value); ok {
		return ref
	}
	return value
}

// IsColor reports whether value parses as a CSS color.
func IsColor(value string) bool {
	if value == "" || strings.HasPrefix(value, "{") {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// Families returns palette family names in table order.
func Families() []string {
	var families []string
	seen := make(map[string]bool)
	for _, e := range Entries {
		f := e.Family()
		if !seen[f] {
			seen[f] = true
			families = append(families, f)
		}
	}
	return families
}

// Family returns the entries of one palette family in table order.
func Family(name string) []Entry {
	var entries []Entry
	for _, e := range Entries {
		if e.Family() == name {
			entries = append(entries, e)
		}
	}
	return entries
}
