package cmark

import (
	"regexp"

	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/unescape"
)

// digitalEntityRE and namedEntityRE are anchored at the current inline
// position (not the whole string), mirroring DIGITAL_RE/NAMED_RE.
var (
	digitalEntityRE = regexp.MustCompile(`(?i)^&#(x[a-f0-9]{1,6}|[0-9]{1,7});`)
	namedEntityRE   = regexp.MustCompile(`(?i)^&([a-z][a-z0-9]{1,31});`)
)

// Entity matches `&#123;`, `&#x7B;`, and named references like `&amp;`.
type Entity struct{}

func (Entity) Name() string { return "cmark-entity" }
func (Entity) Marker() rune { return '&' }

func (Entity) Run(state *inline.State) (int, bool) {
	rest := state.Src[state.Pos:state.PosMax]

	if len(rest) >= 2 && rest[1] == '#' {
		return runDigitalEntity(state, rest)
	}
	return runNamedEntity(state, rest)
}

func runDigitalEntity(state *inline.State, rest string) (int, bool) {
	m := digitalEntityRE.FindStringSubmatch(rest)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	hex := digits[0] == 'x' || digits[0] == 'X'
	if hex {
		digits = digits[1:]
	}
	content := unescape.NumericEntity(digits, hex)
	return emitEntity(state, m[0], content), true
}

func runNamedEntity(state *inline.State, rest string) (int, bool) {
	m := namedEntityRE.FindStringSubmatch(rest)
	if m == nil {
		return 0, false
	}
	content, ok := unescape.NamedEntity(m[1])
	if !ok {
		return 0, false
	}
	return emitEntity(state, m[0], content), true
}

func emitEntity(state *inline.State, markup, content string) int {
	n := node.New(TextSpecial{Content: content, Markup: markup, Info: "entity"})
	span := state.GetMap(state.Pos, state.Pos+len(markup))
	n.SetSpan(span.Start, span.End)
	state.EmitNode(n)
	return len(markup)
}
