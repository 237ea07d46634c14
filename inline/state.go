// Package inline implements the pluggable rule dispatch system (§4.D)
// and the tokenizer loop (§4.E) that drives it, plus the per-scan
// mutable State (§4.C) threaded through arbitrarily deep recursion.
package inline

import (
	"unicode/utf8"

	"github.com/ShafSpecs/mdit-go/env"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/srcmap"
)

// State is the per-scan mutable context for one InlineRoot's content.
type State struct {
	Src    string
	Pos    int
	PosMax int

	// Node is the node whose Children are being populated by the
	// current scan (or sub-scan, while label-scanning swaps it out).
	Node *node.Node

	// LinkLevel is bumped/lowered by the raw-HTML-inline rule so that
	// an <a>...</a> span suppresses link creation inside it.
	LinkLevel int

	// Depth counts re-entrant tokenizer recursion (label scans inside
	// label scans); it is compared against MaxNesting to bound work.
	Depth int

	InlineEnv *env.Bag
	RootEnv   *env.Bag
	Mapping   srcmap.Mapping

	Ruler *Ruler

	// Hooks copied from the owning MarkdownIt configuration.
	ValidateLink      func(string) bool
	NormalizeLink     func(string) string
	NormalizeLinkText func(string) string
	MaxNesting        int
}

// New constructs a State ready to tokenize src[0:len(src)] into node's
// children. rootEnv is the document-wide bag (holds the reference map);
// a fresh InlineEnv is created per call, matching the "inline_env dies
// when the scan for one InlineRoot ends" lifetime rule.
func New(src string, n *node.Node, mapping srcmap.Mapping, rootEnv *env.Bag, ruler *Ruler) *State {
	return &State{
		Src:       src,
		Pos:       0,
		PosMax:    len(src),
		Node:      n,
		InlineEnv: env.New(),
		RootEnv:   rootEnv,
		Mapping:   mapping,
		Ruler:     ruler,
	}
}

// GetMap resolves a local [start,end) byte range into its document-wide
// Span using the scan's Mapping.
func (s *State) GetMap(start, end int) srcmap.Span {
	return srcmap.Span{Start: s.Mapping.Resolve(start), End: s.Mapping.Resolve(end)}
}

// TrailingText returns the text accumulated in Node.Children since the
// last non-text token, without disturbing the tree. Used by the
// hard/soft break rule to inspect trailing spaces.
func (s *State) TrailingText() string {
	children := s.Node.Children
	start := len(children)
	for start > 0 {
		if _, ok := children[start-1].Value.(node.Text); !ok {
			break
		}
		start--
	}
	var b []byte
	for _, c := range children[start:] {
		b = append(b, c.Value.(node.Text).Content...)
	}
	return string(b)
}

// PopTrailingText removes the last n bytes of trailing text from
// Node.Children, truncating or dropping Text nodes as needed. It is
// the primitive the break rule uses to consume trailing spaces that
// decide hardbreak vs. softbreak.
func (s *State) PopTrailingText(n int) {
	children := s.Node.Children
	for n > 0 && len(children) > 0 {
		last := children[len(children)-1]
		text, ok := last.Value.(node.Text)
		if !ok {
			break
		}
		if len(text.Content) <= n {
			n -= len(text.Content)
			children = children[:len(children)-1]
			continue
		}
		last.Value = node.Text{Content: text.Content[:len(text.Content)-n]}
		n = 0
	}
	s.Node.Children = children
}

// EmitNode appends n to Node.Children. Rules call this (rather than
// mutating Children directly) so that, in the future, cross-cutting
// bookkeeping has one choke point.
func (s *State) EmitNode(n *node.Node) {
	s.Node.Children = append(s.Node.Children, n)
}

// EmitText appends a single fallback character as its own Text node;
// the tokenizer merges consecutive Text nodes at flush time (see
// mergeAdjacentText in tokenizer.go) rather than accumulating into a
// scratch buffer, so label sub-scans that swap Node never bleed text
// across the swap.
func (s *State) EmitText(content string) {
	s.Node.Children = append(s.Node.Children, node.New(node.Text{Content: content}))
}

// currentRune returns the rune at Pos and its byte width, or
// (utf8.RuneError, 0) if Pos has reached PosMax.
func (s *State) currentRune() (rune, int) {
	if s.Pos >= s.PosMax {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(s.Src[s.Pos:s.PosMax])
	return r, size
}
