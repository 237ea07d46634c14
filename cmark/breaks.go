package cmark

import (
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
)

// Breaks turns a newline into a HardBreak (preceded by two or more
// spaces) or a SoftBreak (anything else), consuming the newline and any
// leading whitespace on the following line.
type Breaks struct{}

func (Breaks) Name() string { return "cmark-breaks" }
func (Breaks) Marker() rune { return '\n' }

func (Breaks) Run(state *inline.State) (int, bool) {
	if state.Pos >= state.PosMax || state.Src[state.Pos] != '\n' {
		return 0, false
	}

	pos := state.Pos + 1
	for pos < state.PosMax && (state.Src[pos] == ' ' || state.Src[pos] == '\t') {
		pos++
	}

	trailing := state.TrailingText()
	tailSize := 0
	for i := len(trailing) - 1; i >= 0 && trailing[i] == ' '; i-- {
		tailSize++
	}
	state.PopTrailingText(tailSize)

	var value node.Value
	if tailSize >= 2 {
		value = HardBreak{}
	} else {
		value = SoftBreak{}
	}

	n := node.New(value)
	span := state.GetMap(state.Pos-tailSize, pos)
	n.SetSpan(span.Start, span.End)
	state.EmitNode(n)

	return pos - state.Pos, true
}
