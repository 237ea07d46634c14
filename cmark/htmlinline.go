package cmark

import (
	"regexp"

	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
)

const (
	attrName     = `[a-zA-Z_:][a-zA-Z0-9:._-]*`
	unquoted     = `[^"'=<>` + "`" + `\x00-\x20]+`
	singleQuoted = `'[^']*'`
	doubleQuoted = `"[^"]*"`
)

var attrValue = `(?:` + unquoted + `|` + singleQuoted + `|` + doubleQuoted + `)`
var attribute = `(?:\s+` + attrName + `(?:\s*=\s*` + attrValue + `)?)`

var htmlTagRE = regexp.MustCompile(
	`^(?:` +
		`<[A-Za-z][A-Za-z0-9\-]*` + attribute + `*\s*/?>` + // open tag
		`|</[A-Za-z][A-Za-z0-9\-]*\s*>` + // closing tag
		`|<!---->|<!--(?:-?[^>-])(?:-?[^-])*-->` + // comment
		`|<[?].*?[?]>` + // processing instruction
		`|<![A-Za-z]+\s+[^>]*>` + // declaration
		`|<!\[CDATA\[[\s\S]*?\]\]>` + // CDATA section
		`)`,
)

var (
	htmlLinkOpenRE  = regexp.MustCompile(`(?i)^<a[\s>]`)
	htmlLinkCloseRE = regexp.MustCompile(`(?i)^</a\s*>`)
)

// HtmlInlineRule matches a single raw HTML construct (emitted as an
// HtmlInline node): an open or close tag,
// a comment, a processing instruction, a declaration, or CDATA.
// LinkLevel tracks nesting inside a raw `<a>...</a>` so the link rule
// can refuse to create a Markdown link while already inside raw HTML
// anchor markup.
type HtmlInlineRule struct{}

func (HtmlInlineRule) Name() string { return "cmark-html-inline" }
func (HtmlInlineRule) Marker() rune { return '<' }

func (HtmlInlineRule) Run(state *inline.State) (int, bool) {
	if state.Pos+1 >= state.PosMax {
		return 0, false
	}
	switch c := state.Src[state.Pos+1]; {
	case c == '!' || c == '?' || c == '/' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
	default:
		return 0, false
	}

	m := htmlTagRE.FindString(state.Src[state.Pos:state.PosMax])
	if m == "" {
		return 0, false
	}

	if htmlLinkOpenRE.MatchString(m) {
		state.LinkLevel++
	} else if htmlLinkCloseRE.MatchString(m) {
		state.LinkLevel--
	}

	n := node.New(HtmlInline{Content: m})
	span := state.GetMap(state.Pos, state.Pos+len(m))
	n.SetSpan(span.Start, span.End)
	state.EmitNode(n)
	return len(m), true
}
