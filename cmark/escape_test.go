package cmark_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/cmark"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapePunctuation(t *testing.T) {
	s, root := newScan(`\*not emphasis\*`, cmark.Escape{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "*", root.Children[0].Value.(cmark.TextSpecial).Content)
	assert.Equal(t, "not emphasis", root.Children[1].Value.(node.Text).Content)
	assert.Equal(t, "*", root.Children[2].Value.(cmark.TextSpecial).Content)
}

func TestEscapeNonEscapableCharIsLiteralBackslash(t *testing.T) {
	s, root := newScan(`\w`, cmark.Escape{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 1)
	assert.Equal(t, `\w`, root.Children[0].Value.(node.Text).Content)
}

func TestEscapeTrailingBackslashIsLiteral(t *testing.T) {
	s, root := newScan(`\`, cmark.Escape{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 1)
	assert.Equal(t, `\`, root.Children[0].Value.(node.Text).Content)
}
