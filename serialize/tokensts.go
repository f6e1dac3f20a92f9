/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package serialize

import (
	"regexp"
	"strings"

	"bennypowers.dev/tokensync/tree"
)

// DefaultIndent is the indentation of top-level keys and of each nesting level.
const DefaultIndent = 2

// identPattern matches keys that need no quoting in an object literal.
var identPattern = regexp.MustCompile(`^(?:[A-Za-z_$][A-Za-z0-9_$]*|0|[1-9][0-9]*)$`)

// TokensTS renders the tree as object-literal entries for a tokens.ts file.
//
//	gray: {
//	  500: { value: "#71717a" },
//	},
//	bg: { value: { _light: "{colors.white}", _dark: "{colors.gray.900}" } },
//
// Each leaf is one line; each group opens and closes on its own line.
func TokensTS(root *tree.Node, opts Options) []byte {
	indent, step := opts.indent(), opts.step()

	var sb strings.Builder
	if opts.Declaration != "" {
		sb.WriteString("export const " + opts.Declaration + " = {\n")
	}
	writeEntries(&sb, root, indent, step)
	if opts.Declaration != "" {
		sb.WriteString("};\n")
	}
	return []byte(sb.String())
}

func writeEntries(sb *strings.Builder, node *tree.Node, indent, step int) {
	spaces := strings.Repeat(" ", indent)
	for _, key := range node.Keys() {
		child := node.Child(key)
		if v, ok := child.Value(); ok {
			sb.WriteString(spaces + objectKey(key) + ": { value: " + leafValue(v) + " },\n")
			continue
		}
		sb.WriteString(spaces + objectKey(key) + ": {\n")
		writeEntries(sb, child, indent+step, step)
		sb.WriteString(spaces + "},\n")
	}
}

func leafValue(v tree.Value) string {
	if v.Modes != nil {
		return "{ _light: " + quote(v.Modes.Light) + ", _dark: " + quote(v.Modes.Dark) + " }"
	}
	return quote(v.Literal)
}

func objectKey(key string) string {
	if identPattern.MatchString(key) {
		return key
	}
	return quote(key)
}

func quote(s string) string {
	return tree.Quote(s)
}
