package inline_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// starRule turns "*x*" into an emphasis node holding "x", for
// exercising the registry and tokenizer without needing the full
// cmark plugin set.
type starRule struct{ name string }

// emphasis is the payload starRule emits. It is not a node.Text, so the
// tokenizer's text merging keeps it as a sibling of its own.
type emphasis struct{ Content string }

func (emphasis) NodeValueName() string { return "emphasis" }

func (r starRule) Name() string   { return r.name }
func (r starRule) Marker() rune   { return '*' }
func (r starRule) Run(s *inline.State) (int, bool) {
	if s.Pos+2 >= s.PosMax || s.Src[s.Pos+1] == '*' {
		return 0, false
	}
	end := -1
	for i := s.Pos + 1; i < s.PosMax; i++ {
		if s.Src[i] == '*' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, false
	}
	n := node.New(emphasis{Content: s.Src[s.Pos+1 : end]})
	s.EmitNode(n)
	return end + 1 - s.Pos, true
}

func newState(src string, r *inline.Ruler) (*inline.State, *node.Node) {
	root := node.New(node.Text{Content: ""})
	return inline.New(src, root, nil, nil, r), root
}

func TestAddAndHas(t *testing.T) {
	r := inline.NewRuler()
	assert.False(t, r.Has("star"))
	r.Add(starRule{name: "star"})
	assert.True(t, r.Has("star"))
}

func TestAddDuplicatePanics(t *testing.T) {
	r := inline.NewRuler()
	r.Add(starRule{name: "star"})
	assert.Panics(t, func() { r.Add(starRule{name: "star"}) })
}

func TestAddBeforeAndAfterOrdering(t *testing.T) {
	r := inline.NewRuler()
	r.Add(starRule{name: "b"})
	r.AddBefore("b", starRule{name: "a"})
	r.AddAfter("b", starRule{name: "c"})

	s, root := newState("*x*", r)
	r.Tokenize(s)
	// "a", "b", and "c" share the marker '*' and matching behavior;
	// "a" wins since it is first in registration order.
	require.Len(t, root.Children, 1)
}

func TestFirstRegisteredRuleWinsForSameMarker(t *testing.T) {
	r := inline.NewRuler()
	r.Add(failRule{})
	r.Add(starRule{name: "star"})

	s, root := newState("*x*", r)
	r.Tokenize(s)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "x", root.Children[0].Value.(emphasis).Content)
}

type failRule struct{}

func (failRule) Name() string             { return "fail" }
func (failRule) Marker() rune             { return '*' }
func (failRule) Run(*inline.State) (int, bool) { return 0, false }
