package cmark_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/cmark"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaksHardBreakOnTwoTrailingSpaces(t *testing.T) {
	s, root := newScan("foo  \nbar", cmark.Breaks{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "foo", root.Children[0].Value.(node.Text).Content)
	assert.IsType(t, cmark.HardBreak{}, root.Children[1].Value)
	assert.Equal(t, "bar", root.Children[2].Value.(node.Text).Content)
}

func TestBreaksSoftBreakOnBareNewline(t *testing.T) {
	s, root := newScan("foo\nbar", cmark.Breaks{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 3)
	assert.IsType(t, cmark.SoftBreak{}, root.Children[1].Value)
}

func TestBreaksSoftBreakOnOneTrailingSpace(t *testing.T) {
	s, root := newScan("foo \nbar", cmark.Breaks{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 3)
	assert.IsType(t, cmark.SoftBreak{}, root.Children[1].Value)
}

func TestBreaksConsumesLeadingWhitespaceOnNextLine(t *testing.T) {
	s, root := newScan("foo\n   bar", cmark.Breaks{})
	s.Ruler.Tokenize(s)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "bar", root.Children[2].Value.(node.Text).Content)
}
