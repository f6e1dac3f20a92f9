/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ValueKey is the key wrapping a leaf value in serialized output.
const ValueKey = "value"

// MarshalJSON encodes the tree as nested objects in insertion order.
// Leaves encode as {"value": ...}.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n.value != nil {
		buf.WriteString(`{"` + ValueKey + `":`)
		if n.value.Modes != nil {
			buf.WriteString(`{"_light":`)
			writeJSONString(buf, n.value.Modes.Light)
			buf.WriteString(`,"_dark":`)
			writeJSONString(buf, n.value.Modes.Dark)
			buf.WriteByte('}')
		} else {
			writeJSONString(buf, n.value.Literal)
		}
		buf.WriteByte('}')
		return nil
	}

	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, key)
		buf.WriteByte(':')
		if err := n.children[key].encodeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// Quote returns s as a JSON string without HTML escaping. The result is also a
// valid JavaScript string literal.
func Quote(s string) string {
	var buf bytes.Buffer
	writeJSONString(&buf, s)
	return buf.String()
}

// writeJSONString writes s as a JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
}

// MarshalYAML encodes the tree as YAML mappings in insertion order.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (n *Node) yamlNode() *yaml.Node {
	if n.value != nil {
		var val *yaml.Node
		if n.value.Modes != nil {
			val = mapping(
				strScalar("_light"), strScalar(n.value.Modes.Light),
				strScalar("_dark"), strScalar(n.value.Modes.Dark),
			)
		} else {
			val = strScalar(n.value.Literal)
		}
		return mapping(strScalar(ValueKey), val)
	}

	m := mapping()
	for _, key := range n.keys {
		m.Content = append(m.Content, strScalar(key), n.children[key].yamlNode())
	}
	return m
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
