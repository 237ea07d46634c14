package cmark

import (
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/unescape"
)

// Escape matches a backslash followed by an escapable ASCII punctuation
// character, emitting the escaped character as literal text; a
// backslash before anything else (including end-of-input) is left for
// the tokenizer's own text fallback, matching §H's destination/title
// escape handling applied to running text.
type Escape struct{}

func (Escape) Name() string { return "cmark-escape" }
func (Escape) Marker() rune { return '\\' }

func (Escape) Run(state *inline.State) (int, bool) {
	if state.Pos+1 >= state.PosMax {
		return 0, false
	}
	c := state.Src[state.Pos+1]
	if c >= 0x80 || !unescape.IsEscapable(c) {
		return 0, false
	}

	n := node.New(TextSpecial{
		Content: string(c),
		Markup:  state.Src[state.Pos : state.Pos+2],
		Info:    "escape",
	})
	span := state.GetMap(state.Pos, state.Pos+2)
	n.SetSpan(span.Start, span.End)
	state.EmitNode(n)
	return 2, true
}
