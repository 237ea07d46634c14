package linkrule

import (
	"github.com/ShafSpecs/mdit-go/env"
	"github.com/ShafSpecs/mdit-go/inline"
	"github.com/ShafSpecs/mdit-go/node"
)

// seenLinks is the transient inline_env flag asserting a committed link
// exists inside the current scan; its presence forbids further link
// nesting for the enclosing (non-nested-enabled) scope.
type seenLinks struct{}

// labelCacheEntry is what LinkLabelScanCache stores per opening-bracket
// offset: the label's parsed children and end position, or (nil,
// false) to record a proven miss.
type labelCacheEntry struct {
	children []*node.Node
	end      int
	found    bool
}

// labelCache is the §3 LinkLabelScanCache: keyed by a label's opening
// "[" byte offset, authoritative for nested label lookups within the
// life of one outer inline scan.
type labelCache map[int]labelCacheEntry

// ParseLabel finds the `]` matching the `[` at src[start], assuming
// that character is already known to be `[`. On success it returns the
// end offset (pointing at the matching `]`) and stores the label's
// parsed children in the cache for the caller (ParseLink) to consume.
// See §4.F for the algorithm this implements verbatim.
func ParseLabel(state *inline.State, start int, enableNested bool) (int, bool) {
	cache := env.GetOrInsertDefault[labelCache](state.InlineEnv)
	if entry, ok := cache[start]; ok {
		return entry.end, entry.found
	}

	if state.Depth >= state.MaxNesting {
		cache[start] = labelCacheEntry{found: false}
		env.Insert(state.InlineEnv, cache)
		return 0, false
	}

	oldRoot := state.Node
	oldSeenLinks, hadSeenLinks := env.Take[seenLinks](state.InlineEnv)
	oldPos := state.Pos

	state.Node = node.New(node.Text{Content: ""})
	state.Pos = start + 1
	state.Depth++

	level := 1
	found := false

	for state.Pos < state.PosMax {
		c := state.Src[state.Pos]
		if c == ']' {
			level--
			if level == 0 {
				found = true
				break
			}
		}

		producedNonText := state.Ruler.TokenizeOne(state)

		if !enableNested && env.Contains[seenLinks](state.InlineEnv) {
			break
		}

		if !producedNonText && c == '[' {
			level++
		}
	}

	state.Depth--

	cache = env.GetOrInsertDefault[labelCache](state.InlineEnv)
	var result int
	if found {
		cache[start] = labelCacheEntry{children: state.Node.Children, end: state.Pos, found: true}
		result = state.Pos
	} else {
		cache[start] = labelCacheEntry{found: false}
	}

	state.Pos = oldPos
	state.Node = oldRoot
	if hadSeenLinks {
		env.Insert(state.InlineEnv, oldSeenLinks)
	}

	return result, found
}

// setSeenLinks raises the seenLinks flag for the remainder of the
// current inline scan, forbidding further non-nested link matches.
func setSeenLinks(state *inline.State) {
	env.Insert(state.InlineEnv, seenLinks{})
}

// takeLabelChildren removes and returns the cached children for the
// label opened at bracketOffset, panicking if absent — callers only
// reach this after ParseLabel already proved that offset has a
// successful entry, so a miss here is a programmer error.
func takeLabelChildren(state *inline.State, bracketOffset int) []*node.Node {
	cache := env.GetOrInsertDefault[labelCache](state.InlineEnv)
	entry, ok := cache[bracketOffset]
	if !ok || !entry.found {
		panic("linkrule: takeLabelChildren called on an unresolved or missing label cache entry")
	}
	delete(cache, bracketOffset)
	env.Insert(state.InlineEnv, cache)
	return entry.children
}
