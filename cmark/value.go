// Package cmark supplies the leaf inline rules a complete CommonMark
// core needs on top of the inline engine and link parser: entity and
// numeric character references, autolinks, raw inline HTML, hard/soft
// breaks, backslash escapes, and the Links/Images node variants wired
// through package linkrule. None of it renders to HTML — rendering
// remains an explicit non-goal; these rules only build tree nodes.
package cmark

// TextSpecial is a decoded-but-distinguishable span of text: its
// Content is what a renderer should output, while Markup preserves the
// original source spelling (e.g. "&amp;" or "\\*") for tooling that
// wants to round-trip or highlight it. Entity and Escape both use it.
type TextSpecial struct {
	Content string
	Markup  string
	Info    string
}

func (TextSpecial) NodeValueName() string { return "text_special" }

// Autolink is `<scheme:...>` or `<user@host>`, normalized to a URL.
type Autolink struct {
	URL string
}

func (Autolink) NodeValueName() string { return "autolink" }

// HtmlInline is a raw inline HTML tag, comment, processing instruction,
// declaration, or CDATA section, carried verbatim.
type HtmlInline struct {
	Content string
}

func (HtmlInline) NodeValueName() string { return "html_inline" }

// HardBreak and SoftBreak are the two line-break node variants,
// disambiguated by whether two or more spaces preceded the newline.
type HardBreak struct{}

func (HardBreak) NodeValueName() string { return "hardbreak" }

type SoftBreak struct{}

func (SoftBreak) NodeValueName() string { return "softbreak" }

// Link and Image are the concrete node variants linkrule.Add and
// linkrule.AddPrefix build, exposing the resolved destination/title.
type Link struct {
	Href     string
	Title    string
	HasTitle bool
}

func (Link) NodeValueName() string { return "link" }

type Image struct {
	Href     string
	Title    string
	HasTitle bool
}

func (Image) NodeValueName() string { return "image" }
