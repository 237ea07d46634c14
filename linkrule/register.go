package linkrule

import (
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
)

// Factory builds the emitted node's payload variant from the resolved
// href/title. href/title are absent (hasHref/hasTitle false) when the grammar matched
// but the URL was rejected by ValidateLink, or no title was present.
type Factory func(href string, hasHref bool, title string, hasTitle bool) node.Value

// Ruler is an alias for inline.Ruler, the registry Add/AddPrefix
// register into.
type Ruler = inline.Ruler

// closeMarkerRuleName is the passive "]" rule both Add and AddPrefix
// ensure is registered exactly once, so a stray "]" is never itself
// mistaken for a token (§6).
const closeMarkerRuleName = "link-close-marker"

type closeMarkerRule struct{}

func (closeMarkerRule) Name() string                 { return closeMarkerRuleName }
func (closeMarkerRule) Marker() rune                  { return ']' }
func (closeMarkerRule) Run(*inline.State) (int, bool) { return 0, false }

func ensureCloseMarkerRule(r *Ruler) {
	if !r.Has(closeMarkerRuleName) {
		r.Add(closeMarkerRule{})
	}
}

// Add registers a link-like rule with marker "[" and no prefix
// character (§6's `add`). factory produces the resulting node's
// variant; refs supplies the document's reference map lookup.
func Add(r *Ruler, name string, enableNested bool, refs ReferenceLookup, factory Factory) {
	r.Add(&prefixedLinkRule{
		name:         name,
		prefix:       0,
		enableNested: enableNested,
		refs:         refs,
		factory:      factory,
	})
	ensureCloseMarkerRule(r)
}

// AddPrefix registers a rule with marker prefix followed by "[" (§6's
// `add_prefix`), e.g. "!" for images. When enableNested is false,
// successfully emitting this node sets the SeenLinks flag for
// enclosing (non-nested) scans, the same as Add.
func AddPrefix(r *Ruler, name string, prefix rune, enableNested bool, refs ReferenceLookup, factory Factory) {
	r.Add(&prefixedLinkRule{
		name:         name,
		prefix:       prefix,
		enableNested: enableNested,
		refs:         refs,
		factory:      factory,
	})
	ensureCloseMarkerRule(r)
}

type prefixedLinkRule struct {
	name         string
	prefix       rune // 0 means no prefix, marker is '['
	enableNested bool
	refs         ReferenceLookup
	factory      Factory
}

func (r *prefixedLinkRule) Name() string { return r.name }

func (r *prefixedLinkRule) Marker() rune {
	if r.prefix == 0 {
		return '['
	}
	return r.prefix
}

func (r *prefixedLinkRule) Run(state *inline.State) (int, bool) {
	start := state.Pos
	offset := 0
	if r.prefix != 0 {
		offset = 1
		if start+1 >= state.PosMax || state.Src[start+1] != '[' {
			return 0, false
		}
	}

	// A raw inline HTML anchor suppresses Markdown link creation inside
	// its span (images are unaffected: only the no-prefix link form is
	// reachable at LinkLevel 0 elsewhere).
	if r.prefix == 0 && state.LinkLevel > 0 {
		return 0, false
	}

	result, ok := ParseLink(state, start+offset, r.enableNested, r.refs)
	if !ok {
		return 0, false
	}

	value := r.factory(result.Href, result.HasHref, result.Title, result.HasTitle)
	n := node.New(value)
	span := state.GetMap(start, result.End)
	n.SetSpan(span.Start, span.End)
	n.Children = result.Nodes
	state.EmitNode(n)

	if !r.enableNested {
		setSeenLinks(state)
	}

	return result.End - start, true
}
