/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package variables reads flat Figma variable exports.
//
// An export is a single object mapping variable names to values:
//
//	{
//	  "bg/default": "#ffffff",
//	  "text/fg_muted": "#52525b"
//	}
//
// JSON, JSON with comments and YAML are accepted. Key order is preserved.
package variables

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFlat indicates a variable whose value is an object or array.
	ErrNotFlat = errors.New("variable value is not a scalar")

	// ErrNotObject indicates a document whose root is not an object.
	ErrNotObject = errors.New("variables root must be an object")

	// ErrNullValue indicates a variable with no value, such as an unquoted
	// YAML hex color that parsed as a comment.
	ErrNullValue = errors.New("variable value is null")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Variable is one flat token entry: a Figma variable name and its raw value.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// List is an ordered list of variables with unique names.
type List []Variable

// FromMap returns a list for m, sorted by name.
func FromMap(m map[string]string) List {
	list := make(List, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		list = append(list, Variable{Name: name, Value: m[name]})
	}
	return list
}

// Map returns the variables as a map.
func (l List) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, v := range l {
		m[v.Name] = v.Value
	}
	return m
}

// Names returns the variable names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, v := range l {
		names[i] = v.Name
	}
	return names
}

// Merge concatenates lists. A repeated name keeps its first position and
// takes the last value.
func Merge(lists ...List) List {
	var merged List
	index := make(map[string]int)
	for _, l := range lists {
		for _, v := range l {
			if i, ok := index[v.Name]; ok {
				merged[i].Value = v.Value
				continue
			}
			index[v.Name] = len(merged)
			merged = append(merged, v)
		}
	}
	return merged
}

// Parse decodes a JSON, JSONC or YAML variables document.
func Parse(data []byte) (List, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}

	// JSON is valid YAML, and decoding through yaml.Node keeps key order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse variables: %w", err)
	}
	if len(doc.Content) == 0 {
		return List{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	list := make(List, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrNotFlat, key.Value, key.Line)
		}
		if val.Tag == "!!null" {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrNullValue, key.Value, key.Line)
		}
		list = append(list, Variable{Name: key.Value, Value: val.Value})
	}

	return Merge(list), nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{':
		return true
	case '/':
		// Leading // or /* comment: only JSONC uses these.
		return len(trimmed) > 1 && (trimmed[1] == '/' || trimmed[1] == '*')
	}
	return false
}
