package cmark

import (
	"regexp"

	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
)

var (
	autolinkRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]{1,31}:[^<>\x00-\x20]*$`)
	emailRE    = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
)

// Autolink (the node payload declared in value.go) is also the rule that
// matches `<scheme:rest>` and `<user@host>`.
func (Autolink) Name() string { return "cmark-autolink" }
func (Autolink) Marker() rune { return '<' }

func (Autolink) Run(state *inline.State) (int, bool) {
	n, _, length, ok := getAutolink(state)
	if !ok {
		return 0, false
	}

	span := state.GetMap(state.Pos, state.Pos+length)
	n.SetSpan(span.Start, span.End)

	innerStart, innerEnd := state.Pos+1, state.Pos+length-1
	inner := node.New(node.Text{Content: state.NormalizeLinkText(state.Src[innerStart:innerEnd])})
	innerSpan := state.GetMap(innerStart, innerEnd)
	inner.SetSpan(innerSpan.Start, innerSpan.End)
	n.Children = append(n.Children, inner)

	state.EmitNode(n)
	return length, true
}

// getAutolink scans `<...>` for a bare `>` (no nested `<`), classifies
// the interior as an absolute-URI or email autolink, and normalizes it.
func getAutolink(state *inline.State) (*node.Node, string, int, bool) {
	src, pos, max := state.Src, state.Pos, state.PosMax
	if pos >= max || src[pos] != '<' {
		return nil, "", 0, false
	}

	end := -1
	for i := pos + 1; i < max; i++ {
		switch src[i] {
		case '<':
			return nil, "", 0, false
		case '>':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, "", 0, false
	}

	url := src[pos+1 : end]
	isAutolink := autolinkRE.MatchString(url)
	isEmail := !isAutolink && emailRE.MatchString(url)
	if !isAutolink && !isEmail {
		return nil, "", 0, false
	}

	var fullURL string
	if isAutolink {
		fullURL = state.NormalizeLink(url)
	} else {
		fullURL = state.NormalizeLink("mailto:" + url)
	}

	if !state.ValidateLink(fullURL) {
		return nil, "", 0, false
	}

	return node.New(Autolink{URL: fullURL}), fullURL, end + 1 - pos, true
}
