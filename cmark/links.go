package cmark

import (
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/linkrule"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/refmap"
)

// RefLookup adapts a *refmap.Map to linkrule.ReferenceLookup.
type RefLookup struct{ Refs *refmap.Map }

func (r RefLookup) Lookup(label string) (dest, title string, hasTitle, ok bool) {
	e, found := r.Refs.Lookup(label)
	if !found {
		return "", "", false, false
	}
	return e.Destination, e.Title, e.HasTitle, true
}

// AddLinks registers the link rule (no prefix, nesting disabled: a
// link's label may not itself contain another link).
func AddLinks(r *inline.Ruler, refs *refmap.Map) {
	linkrule.Add(r, "cmark-link", false, RefLookup{Refs: refs}, func(href string, hasHref bool, title string, hasTitle bool) node.Value {
		return Link{Href: href, Title: title, HasTitle: hasTitle}
	})
}

// AddImages registers the image rule (prefix "!", nesting enabled: an
// image's alt text may itself contain inline markup, including links).
func AddImages(r *inline.Ruler, refs *refmap.Map) {
	linkrule.AddPrefix(r, "cmark-image", '!', true, RefLookup{Refs: refs}, func(href string, hasHref bool, title string, hasTitle bool) node.Value {
		return Image{Href: href, Title: title, HasTitle: hasTitle}
	})
}
