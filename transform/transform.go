/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform builds nested Chakra token trees from flat Figma variables.
//
// BuildBase produces base tokens ({ value: "..." } leaves). BuildSemantic
// pairs light and dark mode exports into semantic tokens
// ({ value: { _light, _dark } } leaves), collapsing known palette colors into
// token references. Neither function performs I/O: anomalies such as tokens
// missing from one mode are returned as diagnostics.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/tokensync/naming"
	"bennypowers.dev/tokensync/palette"
	"bennypowers.dev/tokensync/tree"
	"bennypowers.dev/tokensync/variables"
)

// ErrMissingModes reports semantic tokens skipped for lacking a value in one
// of the modes. Callers that treat diagnostics as failures wrap it.
var ErrMissingModes = errors.New("semantic tokens missing a mode")

// Mode is a color mode of a semantic token.
type Mode string

const (
	// ModeLight is the light color mode.
	ModeLight Mode = "light"

	// ModeDark is the dark color mode.
	ModeDark Mode = "dark"
)

// Diagnostic reports a non-fatal anomaly found while building semantic tokens.
type Diagnostic struct {
	// Name is the Figma variable name.
	Name string `json:"name"`

	// Missing is the mode the variable has no value in.
	Missing Mode `json:"missing"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("token %s missing in %s mode", d.Name, d.Missing)
}

// Result is the outcome of BuildSemantic.
type Result struct {
	Tree        *tree.Node
	Diagnostics []Diagnostic
}

// Options configures tree building. The zero value uses the default alias
// table, fails on path conflicts and resolves palette colors.
type Options struct {
	// Converter converts Figma names to token paths. Defaults to naming.Default().
	Converter *naming.Converter

	// OnConflict decides how structural path conflicts are handled.
	OnConflict tree.Policy

	// KeepLiterals disables palette reference resolution in semantic tokens.
	KeepLiterals bool
}

func (o Options) converter() *naming.Converter {
	if o.Converter == nil {
		return naming.Default()
	}
	return o.Converter
}

func (o Options) policy() tree.Policy {
	if o.OnConflict == "" {
		return tree.PolicyFail
	}
	return o.OnConflict
}

func (o Options) resolve(value string) string {
	if o.KeepLiterals {
		return value
	}
	return palette.Resolve(value)
}

// BuildBase builds a base token tree. Values are kept verbatim.
func BuildBase(vars variables.List, opts Options) (*tree.Node, error) {
	conv := opts.converter()
	policy := opts.policy()

	root := tree.New()
	for _, v := range vars {
		path := strings.Split(conv.ToInternal(v.Name), naming.InternalSeparator)
		if err := root.Set(path, tree.Literal(v.Value), v.Name, policy); err != nil {
			return nil, fmt.Errorf("building base tokens: %w", err)
		}
	}
	return root, nil
}

// BuildSemantic builds a semantic token tree from light and dark mode exports.
//
// Variables are visited in light order, followed by variables only present in
// the dark export. A variable without a non-empty value in both modes is
// skipped and reported once in Result.Diagnostics.
func BuildSemantic(light, dark variables.List, opts Options) (*Result, error) {
	conv := opts.converter()
	policy := opts.policy()

	lightValues := light.Map()
	darkValues := dark.Map()

	result := &Result{Tree: tree.New()}
	for _, name := range unionNames(light, dark) {
		lightValue := lightValues[name]
		darkValue := darkValues[name]

		switch {
		case lightValue == "":
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Name: name, Missing: ModeLight})
			continue
		case darkValue == "":
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Name: name, Missing: ModeDark})
			continue
		}

		path := strings.Split(conv.ToInternal(name), naming.InternalSeparator)
		value := tree.Conditional(opts.resolve(lightValue), opts.resolve(darkValue))
		if err := result.Tree.Set(path, value, name, policy); err != nil {
			return nil, fmt.Errorf("building semantic tokens: %w", err)
		}
	}

	return result, nil
}

func unionNames(lists ...variables.List) []string {
	var names []string
	seen := make(map[string]bool)
	for _, l := range lists {
		for _, v := range l {
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		}
	}
	return names
}
