// Package node defines the parser's AST: a strictly top-down tree where
// every node carries a payload variant, ordered attributes, children,
// and an optional source span.
package node

import "github.com/ShafSpecs/mdit-go/srcmap"

// Value is the marker interface every node payload variant implements.
// Built-in variants live alongside their owning package (Root and
// InlineRoot here, leaf-rule payloads in package cmark); user code may
// define its own by implementing this interface, the same way the
// reference implementation lets any type implement its NodeValue trait.
type Value interface {
	// NodeValueName returns a short, stable tag for debugging and the
	// tree-dump CLI. It is not used for dispatch.
	NodeValueName() string
}

// Attr is one ordered key/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the parse tree.
type Node struct {
	Value    Value
	Attrs    []Attr
	Children []*Node
	Span     srcmap.Span
	HasSpan  bool
}

// New returns a Node wrapping the given payload with no children,
// attributes, or span.
func New(v Value) *Node {
	return &Node{Value: v}
}

// SetSpan records the node's byte range in the original document.
func (n *Node) SetSpan(start, end int) {
	n.Span = srcmap.Span{Start: start, End: end}
	n.HasSpan = true
}

// Attr returns the value of the named attribute and whether it was set.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr appends or overwrites the named attribute, preserving the
// existing position on overwrite so attribute order stays stable.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Walk visits n and every descendant in pre-order, depth first.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
