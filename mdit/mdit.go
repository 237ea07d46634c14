// Package mdit wires the block phase, the inline rule set, and the
// link/reference resolver into the single entry point: New().Parse(src).
package mdit

import (
	"regexp"
	"strings"

	"github.com/ShafSpecs/mdit-go/block"
	"github.com/ShafSpecs/mdit-go/cmark"
	"github.com/ShafSpecs/mdit-go/env"
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/srcmap"
)

// MarkdownIt holds the configured rule set and the three link hooks a
// caller may override before the first Parse call.
type MarkdownIt struct {
	ValidateLink      func(string) bool
	NormalizeLink     func(string) string
	NormalizeLinkText func(string) string
	MaxNesting        int

	ruler *inline.Ruler
}

var badProtoRE = regexp.MustCompile(`(?i)^(vbscript|javascript|file|data):`)
var goodDataRE = regexp.MustCompile(`(?i)^data:image/(gif|png|jpeg|webp);`)

func defaultValidateLink(href string) bool {
	return !badProtoRE.MatchString(href) || goodDataRE.MatchString(href)
}

// linkSafeSet is the set of ASCII characters defaultNormalizeLink
// leaves unescaped, matching the reference implementation's URL-safe
// punctuation allowlist for link destinations.
const linkSafeSet = ";/?:@&=+$,-_.!~*'()#"

func isLinkSafe(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	return strings.IndexByte(linkSafeSet, c) >= 0
}

// defaultNormalizeLink percent-encodes a link destination, preserving
// characters already percent-encoded (a literal "%" followed by two hex
// digits passes through untouched) and the URL-structural punctuation in
// linkSafeSet. This is a hand-rolled stand-in for the reference
// implementation's mdurl::encode: no percent-encoding-preserving encoder
// appears anywhere in the example pool, so this is written against the
// standard library rather than ported from a third-party package (see
// DESIGN.md).
func defaultNormalizeLink(href string) string {
	var b strings.Builder
	b.Grow(len(href))
	for i := 0; i < len(href); i++ {
		c := href[i]
		if c == '%' && i+2 < len(href) && isHex(href[i+1]) && isHex(href[i+2]) {
			b.WriteByte(c)
			continue
		}
		if isLinkSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString("%")
		b.WriteString(strings.ToUpper(hexByte(c)))
	}
	return b.String()
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

const hexDigits = "0123456789ABCDEF"

func hexByte(c byte) string {
	return string([]byte{hexDigits[c>>4], hexDigits[c&0xf]})
}

func defaultNormalizeLinkText(text string) string {
	return text
}

// New returns a MarkdownIt with the default link hooks and nesting
// budget in place and an empty rule registry; the builtin cmark rule set
// is registered by the first Parse call.
func New() *MarkdownIt {
	md := &MarkdownIt{
		ValidateLink:      defaultValidateLink,
		NormalizeLink:     defaultNormalizeLink,
		NormalizeLinkText: defaultNormalizeLinkText,
		MaxNesting:        100,
		ruler:             inline.NewRuler(),
	}
	return md
}

// Ruler exposes the inline rule registry so callers can add rules before
// the first Parse call, mirroring the reference implementation's
// md.inline.ruler access point. Parse registers a builtin rule only when
// no rule of that name is registered yet; the registry has no way to
// remove or move a rule once added.
func (md *MarkdownIt) Ruler() *inline.Ruler {
	return md.ruler
}

// Parse runs the block phase over src, then walks the resulting tree
// tokenizing every InlineRoot in place, returning the finished document.
func (md *MarkdownIt) Parse(src string) *node.Node {
	root, refs := block.Parse(src)

	ruler := md.ruler
	if !ruler.Has("cmark-link") {
		cmark.AddLinks(ruler, refs)
	}
	if !ruler.Has("cmark-image") {
		cmark.AddImages(ruler, refs)
	}
	registerDefaultRulesOnce(ruler)

	rootEnv := root.Value.(node.Root).Env
	walkRecursive(md, root, rootEnv)
	return root
}

// registerDefaultRulesOnce adds the non-link leaf rules the first time
// a ruler is used, letting a caller who built their own Ruler() and
// called Add themselves skip re-registration.
func registerDefaultRulesOnce(r *inline.Ruler) {
	if !r.Has("cmark-entity") {
		r.Add(cmark.Entity{})
	}
	if !r.Has("cmark-autolink") {
		r.Add(cmark.Autolink{})
	}
	if !r.Has("cmark-html-inline") {
		r.Add(cmark.HtmlInlineRule{})
	}
	if !r.Has("cmark-breaks") {
		r.Add(cmark.Breaks{})
	}
	if !r.Has("cmark-escape") {
		r.Add(cmark.Escape{})
	}
}

// walkRecursive implements §4.E's tree walk: it replaces each
// InlineRoot node in place with the result of tokenizing its Content,
// then recurses into every node's children (including the ones a rule
// just produced), because a link or image factory may itself stash
// nested InlineRoot-shaped work — in this minimal block phase it never
// does, but the walk stays general so an extension's block rule could
// defer inline parsing of a child the same way.
func walkRecursive(md *MarkdownIt, n *node.Node, rootEnv *env.Bag) {
	for i, child := range n.Children {
		if ir, ok := child.Value.(node.InlineRoot); ok {
			n.Children[i] = tokenizeInlineRoot(md, ir, rootEnv)
		}
		walkRecursive(md, n.Children[i], rootEnv)
	}
}

// tokenizeInlineRoot runs one InlineRoot's content through the inline
// ruler and returns a node holding the resulting children directly
// (the InlineRoot wrapper itself carries no payload worth keeping past
// this point, so its span is moved onto a plain paragraph-like
// container for the tree-dump CLI to report).
func tokenizeInlineRoot(md *MarkdownIt, ir node.InlineRoot, rootEnv *env.Bag) *node.Node {
	out := node.New(paragraph{})
	mapping := ir.Mapping
	if mapping == nil {
		mapping = srcmap.Identity(0)
	}
	if len(ir.Content) > 0 {
		out.SetSpan(mapping.Resolve(0), mapping.Resolve(len(ir.Content)))
	}

	state := inline.New(ir.Content, out, mapping, rootEnv, md.ruler)
	state.ValidateLink = md.ValidateLink
	state.NormalizeLink = md.NormalizeLink
	state.NormalizeLinkText = md.NormalizeLinkText
	state.MaxNesting = md.MaxNesting

	md.ruler.Tokenize(state)
	return out
}

// paragraph is the block-level container a parsed InlineRoot becomes.
// The minimal block phase (§4.J) only ever produces paragraphs, so this
// is the sole block-level payload besides Root.
type paragraph struct{}

func (paragraph) NodeValueName() string { return "paragraph" }
