package cmark_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/cmark"
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/refmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLinksInlineForm(t *testing.T) {
	r := inline.NewRuler()
	cmark.AddLinks(r, refmap.New())

	root := node.New(node.Text{Content: ""})
	src := `[foo](/bar "baz")`
	s := inline.New(src, root, nil, nil, r)
	s.ValidateLink = func(string) bool { return true }
	s.NormalizeLink = func(href string) string { return href }
	s.NormalizeLinkText = func(text string) string { return text }
	s.MaxNesting = 100
	r.Tokenize(s)

	require.Len(t, root.Children, 1)
	lv := root.Children[0].Value.(cmark.Link)
	assert.Equal(t, "/bar", lv.Href)
	assert.Equal(t, "baz", lv.Title)
}

func TestAddLinksReferenceForm(t *testing.T) {
	refs := refmap.New()
	refs.Define("bar", "/bar", "baz")

	r := inline.NewRuler()
	cmark.AddLinks(r, refs)

	root := node.New(node.Text{Content: ""})
	src := `[foo][bar]`
	s := inline.New(src, root, nil, nil, r)
	s.ValidateLink = func(string) bool { return true }
	s.NormalizeLink = func(href string) string { return href }
	s.NormalizeLinkText = func(text string) string { return text }
	s.MaxNesting = 100
	r.Tokenize(s)

	require.Len(t, root.Children, 1)
	lv := root.Children[0].Value.(cmark.Link)
	assert.Equal(t, "/bar", lv.Href)
	assert.Equal(t, "baz", lv.Title)
}

func TestAddLinksSuppressedInsideRawHtmlAnchor(t *testing.T) {
	refs := refmap.New()
	refs.Define("bar", "/bar", "")

	r := inline.NewRuler()
	cmark.AddLinks(r, refs)
	r.Add(cmark.HtmlInlineRule{})

	root := node.New(node.Text{Content: ""})
	src := `<a href="x">[foo](bar)</a>`
	s := inline.New(src, root, nil, nil, r)
	s.ValidateLink = func(string) bool { return true }
	s.NormalizeLink = func(href string) string { return href }
	s.NormalizeLinkText = func(text string) string { return text }
	s.MaxNesting = 100
	r.Tokenize(s)

	for _, c := range root.Children {
		_, isLink := c.Value.(cmark.Link)
		assert.False(t, isLink, "a Markdown link must not form inside a raw HTML anchor span")
	}
}

func TestAddImagesAllowsNestedLink(t *testing.T) {
	refs := refmap.New()
	refs.Define("c", "/c", "")

	r := inline.NewRuler()
	cmark.AddLinks(r, refs)
	cmark.AddImages(r, refs)

	root := node.New(node.Text{Content: ""})
	src := `![a [b](c) d](e)`
	s := inline.New(src, root, nil, nil, r)
	s.ValidateLink = func(string) bool { return true }
	s.NormalizeLink = func(href string) string { return href }
	s.NormalizeLinkText = func(text string) string { return text }
	s.MaxNesting = 100
	r.Tokenize(s)

	require.Len(t, root.Children, 1)
	iv := root.Children[0].Value.(cmark.Image)
	assert.Equal(t, "e", iv.Href)
}
