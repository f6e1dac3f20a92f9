/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming converts between Figma variable names and Chakra token paths.
//
// Figma variables use slash-separated names ("text/fg_muted", "bg/default").
// Chakra tokens use dot-separated paths ("fg.muted", "bg"). The first segment
// may be renamed through a namespace alias table, and a trailing "default"
// segment denotes the base value of a token family.
package naming

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// ExternalSeparator separates segments of a Figma variable name.
	ExternalSeparator = "/"

	// InternalSeparator separates segments of a Chakra token path.
	InternalSeparator = "."

	// DefaultSegment is the Figma segment naming the base value of a token family.
	DefaultSegment = "default"
)

var (
	// ErrDuplicateAlias indicates two aliases share an external or internal name.
	ErrDuplicateAlias = errors.New("duplicate namespace alias")

	// ErrInvalidAlias indicates an alias with an empty or separator-containing name.
	ErrInvalidAlias = errors.New("invalid namespace alias")
)

// Alias renames the first segment of a name between the two conventions.
type Alias struct {
	External string `yaml:"external" json:"external"`
	Internal string `yaml:"internal" json:"internal"`
}

// DefaultAliases is the namespace alias table used by the package-level functions.
var DefaultAliases = []Alias{
	{External: "text", Internal: "fg"},
}

// DefaultRoots are the internal root names that regain a "default" segment
// when converted back to Figma names.
var DefaultRoots = []string{"bg", "fg", "border"}

// Converter converts names using a fixed alias table. It is immutable and
// safe for concurrent use.
type Converter struct {
	forward     map[string]string
	reverse     map[string]string
	defaultable map[string]bool
}

var defaultConverter = MustNew(DefaultAliases, DefaultRoots)

// Default returns the converter for the built-in alias table.
func Default() *Converter {
	return defaultConverter
}

// New builds a converter. The forward and reverse alias maps are derived from
// the same list, so an alias table that is not one-to-one is rejected.
func New(aliases []Alias, roots []string) (*Converter, error) {
	c := &Converter{
		forward:     make(map[string]string, len(aliases)),
		reverse:     make(map[string]string, len(aliases)),
		defaultable: make(map[string]bool, len(roots)),
	}
	for _, a := range aliases {
		if !validSegment(a.External) || !validSegment(a.Internal) {
			return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidAlias, a.External, a.Internal)
		}
		if _, dup := c.forward[a.External]; dup {
			return nil, fmt.Errorf("%w: external %q", ErrDuplicateAlias, a.External)
		}
		if _, dup := c.reverse[a.Internal]; dup {
			return nil, fmt.Errorf("%w: internal %q", ErrDuplicateAlias, a.Internal)
		}
		c.forward[a.External] = a.Internal
		c.reverse[a.Internal] = a.External
	}
	for _, r := range roots {
		c.defaultable[r] = true
	}
	return c, nil
}

// MustNew is like New but panics on an invalid alias table.
func MustNew(aliases []Alias, roots []string) *Converter {
	c, err := New(aliases, roots)
	if err != nil {
		panic(err)
	}
	return c
}

// AliasesFromMap returns aliases for an external -> internal map, sorted by
// external name.
func AliasesFromMap(m map[string]string) []Alias {
	aliases := make([]Alias, 0, len(m))
	for ext, in := range m {
		aliases = append(aliases, Alias{External: ext, Internal: in})
	}
	slices.SortFunc(aliases, func(a, b Alias) int {
		return strings.Compare(a.External, b.External)
	})
	return aliases
}

// ToInternal converts a Figma variable name to a Chakra token path.
//
//	text/fg        -> fg
//	text/fg_muted  -> fg.muted
//	bg/default     -> bg
//	gray/500       -> gray.500
func (c *Converter) ToInternal(name string) string {
	parts := strings.Split(name, ExternalSeparator)

	if internal, ok := c.forward[parts[0]]; ok {
		parts[0] = internal
		// Figma repeats the namespace in the variable name (text/fg_muted).
		if len(parts) > 1 {
			switch {
			case parts[1] == internal:
				parts = append(parts[:1], parts[2:]...)
			case strings.HasPrefix(parts[1], internal+"_") && len(parts[1]) > len(internal)+1:
				parts[1] = strings.TrimPrefix(parts[1], internal+"_")
			}
		}
	}

	result := strings.Join(parts, InternalSeparator)
	return strings.TrimSuffix(result, InternalSeparator+DefaultSegment)
}

// ToExternal converts a Chakra token path to a Figma variable name.
// Only single-segment paths naming a defaultable root regain the "default"
// segment; other paths do not recover anything ToInternal removed.
func (c *Converter) ToExternal(path string) string {
	parts := strings.Split(path, InternalSeparator)

	if len(parts) == 1 && c.defaultable[parts[0]] {
		parts = append(parts, DefaultSegment)
	}

	if external, ok := c.reverse[parts[0]]; ok {
		parts[0] = external
	}

	return strings.Join(parts, ExternalSeparator)
}

// Aliases returns a copy of the converter's alias table, sorted by external name.
func (c *Converter) Aliases() []Alias {
	return AliasesFromMap(c.forward)
}

// ToInternal converts a Figma variable name using the default alias table.
func ToInternal(name string) string {
	return defaultConverter.ToInternal(name)
}

// ToExternal converts a Chakra token path using the default alias table.
func ToExternal(path string) string {
	return defaultConverter.ToExternal(path)
}

func validSegment(s string) bool {
	return s != "" &&
		!strings.Contains(s, ExternalSeparator) &&
		!strings.Contains(s, InternalSeparator)
}
