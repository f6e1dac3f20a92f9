/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree provides the nested token tree built from flat token paths.
//
// A Node is either a leaf holding a Value, or a branch holding ordered
// children. Children keep the order in which they were first inserted, so
// every serialization of the same tree is byte-identical.
package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tree operations.
var (
	// ErrPathConflict indicates a path that is both a leaf and a prefix of another path.
	ErrPathConflict = errors.New("token path conflict")

	// ErrEmptySegment indicates a path with an empty segment.
	ErrEmptySegment = errors.New("empty token path segment")

	// ErrUnknownPolicy indicates an unrecognized conflict policy name.
	ErrUnknownPolicy = errors.New("unknown conflict policy")
)

// Modes holds the light and dark mode values of a semantic token.
// The JSON keys are the Chakra condition names.
type Modes struct {
	Light string `json:"_light" yaml:"_light"`
	Dark  string `json:"_dark" yaml:"_dark"`
}

// Value is the payload of a leaf: either a literal or a light/dark pair.
type Value struct {
	Literal string
	Modes   *Modes
}

// Literal returns a single-valued token value.
func Literal(s string) Value {
	return Value{Literal: s}
}

// Conditional returns a light/dark token value.
func Conditional(light, dark string) Value {
	return Value{Modes: &Modes{Light: light, Dark: dark}}
}

// IsConditional reports whether v holds light and dark values.
func (v Value) IsConditional() bool {
	return v.Modes != nil
}

// String renders the value for display.
func (v Value) String() string {
	if v.Modes != nil {
		return fmt.Sprintf("light: %s, dark: %s", v.Modes.Light, v.Modes.Dark)
	}
	return v.Literal
}

// Policy decides what happens when an insertion conflicts with the tree.
type Policy string

const (
	// PolicyFail aborts with ErrPathConflict (default).
	PolicyFail Policy = "fail"

	// PolicyOverwrite replaces whatever occupies the conflicting position.
	PolicyOverwrite Policy = "overwrite"
)

// ValidPolicies returns all valid policy names.
func ValidPolicies() []string {
	return []string{string(PolicyFail), string(PolicyOverwrite)}
}

// ParsePolicy converts a string to a Policy. The empty string is PolicyFail.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "fail", "error":
		return PolicyFail, nil
	case "overwrite", "last-write-wins":
		return PolicyOverwrite, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownPolicy, s, strings.Join(ValidPolicies(), ", "))
	}
}

// ConflictError describes a structural conflict found during insertion.
type ConflictError struct {
	// Path is the dot path where the conflict occurred.
	Path string

	// Source is the external token name being inserted.
	Source string

	// Existing is the external token name already occupying Path, if it is a leaf.
	Existing string

	// Reason describes the kind of conflict.
	Reason string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s at %q while inserting %q", ErrPathConflict, e.Reason, e.Path, e.Source)
	if e.Existing != "" {
		msg += fmt.Sprintf(" (set by %q)", e.Existing)
	}
	return msg
}

// Unwrap returns ErrPathConflict.
func (e *ConflictError) Unwrap() error {
	return ErrPathConflict
}

// Node is a branch or leaf of a token tree. The zero value is an empty branch.
type Node struct {
	keys     []string
	children map[string]*Node
	value    *Value
	source   string
}

// New returns an empty tree.
func New() *Node {
	return &Node{}
}

// IsLeaf reports whether n holds a value.
func (n *Node) IsLeaf() bool {
	return n.value != nil
}

// Value returns the leaf value of n.
func (n *Node) Value() (Value, bool) {
	if n.value == nil {
		return Value{}, false
	}
	return *n.value, true
}

// Source returns the external token name that set this leaf.
func (n *Node) Source() string {
	return n.source
}

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.keys)
}

// Child returns the child at key, or nil.
func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// Get returns the node at path, or nil.
func (n *Node) Get(path ...string) *Node {
	cur := n
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		cur = cur.children[seg]
	}
	return cur
}

// Lookup returns the leaf value at a dot path.
func (n *Node) Lookup(dotPath string) (Value, bool) {
	node := n.Get(strings.Split(dotPath, ".")...)
	if node == nil {
		return Value{}, false
	}
	return node.Value()
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for _, key := range n.keys {
		count += n.children[key].Leaves()
	}
	return count
}

// Walk calls fn for every leaf in insertion order.
func (n *Node) Walk(fn func(path []string, v Value) error) error {
	return n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func(path []string, v Value) error) error {
	if n.value != nil {
		return fn(prefix, *n.value)
	}
	for _, key := range n.keys {
		path := append(append([]string(nil), prefix...), key)
		if err := n.children[key].walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

// Set stores v at path, creating intermediate branches as needed.
// source is the external token name, used in conflict reports.
func (n *Node) Set(path []string, v Value, source string, policy Policy) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path for %q", ErrEmptySegment, source)
	}
	for i, seg := range path {
		if seg == "" {
			return fmt.Errorf("%w: segment %d of %q", ErrEmptySegment, i, source)
		}
	}

	cur := n
	for i, seg := range path[:len(path)-1] {
		next := cur.children[seg]
		switch {
		case next == nil:
			next = &Node{}
			cur.put(seg, next)
		case next.IsLeaf():
			if policy != PolicyOverwrite {
				return &ConflictError{
					Path:     strings.Join(path[:i+1], "."),
					Source:   source,
					Existing: next.source,
					Reason:   "leaf where a group is needed",
				}
			}
			next = &Node{}
			cur.put(seg, next)
		}
		cur = next
	}

	last := path[len(path)-1]
	if existing := cur.children[last]; existing != nil && policy != PolicyOverwrite {
		if !existing.IsLeaf() {
			return &ConflictError{
				Path:   strings.Join(path, "."),
				Source: source,
				Reason: "group where a leaf is needed",
			}
		}
		if existing.source != source {
			return &ConflictError{
				Path:     strings.Join(path, "."),
				Source:   source,
				Existing: existing.source,
				Reason:   "duplicate token path",
			}
		}
	}

	val := v
	cur.put(last, &Node{value: &val, source: source})
	return nil
}

// put sets a child, keeping the original position of an existing key.
func (n *Node) put(key string, child *Node) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}
