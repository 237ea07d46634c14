package node_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSpan(t *testing.T) {
	n := node.New(node.Text{Content: "hi"})
	assert.False(t, n.HasSpan)

	n.SetSpan(3, 5)
	assert.True(t, n.HasSpan)
	assert.Equal(t, 3, n.Span.Start)
	assert.Equal(t, 5, n.Span.End)
}

func TestAttrSetAndGetPreservesOrderOnOverwrite(t *testing.T) {
	n := node.New(node.Text{Content: "x"})
	n.SetAttr("href", "/a")
	n.SetAttr("title", "t")
	n.SetAttr("href", "/b")

	require.Len(t, n.Attrs, 2)
	assert.Equal(t, "href", n.Attrs[0].Name)
	v, ok := n.Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/b", v)

	_, ok = n.Attr("missing")
	assert.False(t, ok)
}

func TestWalkVisitsPreOrder(t *testing.T) {
	child1 := node.New(node.Text{Content: "a"})
	child2 := node.New(node.Text{Content: "b"})
	root := node.New(node.Text{Content: "root"})
	root.Children = []*node.Node{child1, child2}

	var order []string
	node.Walk(root, func(n *node.Node) {
		order = append(order, n.Value.(node.Text).Content)
	})

	assert.Equal(t, []string{"root", "a", "b"}, order)
}

func TestWalkNilIsNoop(t *testing.T) {
	called := false
	node.Walk(nil, func(*node.Node) { called = true })
	assert.False(t, called)
}
