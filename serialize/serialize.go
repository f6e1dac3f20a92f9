/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package serialize renders token trees as tokens.ts entries, JSON or YAML.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensync/tree"
)

// Format represents an output format for a token tree.
type Format string

const (
	// FormatTS outputs object-literal entries for theme/tokens.ts.
	FormatTS Format = "ts"

	// FormatJSON outputs the tree as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the tree as YAML.
	FormatYAML Format = "yaml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatTS),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ts", "typescript", "tokens-ts":
		return FormatTS, nil
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Options configures serialization.
type Options struct {
	// Indent is the indentation of top-level entries in ts output.
	// Zero means DefaultIndent.
	Indent int

	// Step is the extra indentation per nesting level in ts output.
	// Zero means DefaultIndent.
	Step int

	// Declaration wraps ts output in `export const <Declaration> = { ... };`.
	Declaration string
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return DefaultIndent
	}
	return o.Indent
}

func (o Options) step() int {
	if o.Step <= 0 {
		return DefaultIndent
	}
	return o.Step
}

// Marshal renders root in the given format.
func Marshal(root *tree.Node, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatTS:
		return TokensTS(root, opts), nil
	case FormatJSON:
		return JSON(root)
	case FormatYAML:
		return YAML(root)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// JSON renders root as JSON with two-space indentation and a trailing newline.
// Keys keep insertion order and HTML characters are not escaped.
func JSON(root *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders root as YAML with two-space indentation.
func YAML(root *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
