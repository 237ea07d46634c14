package block

import (
	"strings"

	"github.com/ShafSpecs/mdit-go/env"
	"github.com/ShafSpecs/mdit-go/node"
	"github.com/ShafSpecs/mdit-go/refmap"
	"github.com/ShafSpecs/mdit-go/srcmap"
)

// Parse runs the minimal block phase over src: it normalizes line
// endings, extracts reference definitions into a fresh *refmap.Map,
// and groups the remaining non-blank lines into paragraphs, each an
// InlineRoot child of the returned Root node. refs is returned
// separately from the tree (rather than only living in Root.Env) so
// callers can inspect it directly; Root.Env also holds it, since the
// inline link rule reads it from there via root_env.
func Parse(src string) (*node.Node, *refmap.Map) {
	src = Normalize(src)
	refs := refmap.New()

	root := node.New(node.Root{Env: env.New()})
	env.Insert(root.Value.(node.Root).Env, refs)

	var pending []srcmap.Pair
	var content strings.Builder

	flush := func() {
		if content.Len() == 0 {
			return
		}
		n := node.New(node.InlineRoot{
			Content: content.String(),
			Mapping: append(srcmap.Mapping(nil), pending...),
		})
		root.Children = append(root.Children, n)
		content.Reset()
		pending = pending[:0]
	}

	pos := 0
	for pos < len(src) {
		if label, dest, title, hasTitle, consumed, ok := scanReferenceDefinition(src[pos:]); ok {
			if hasTitle {
				refs.DefineIfAbsent(label, dest, title)
			} else {
				refs.DefineIfAbsent(label, dest, "")
			}
			pos += consumed
			if pos < len(src) && src[pos] == '\n' {
				pos++
			}
			flush()
			continue
		}

		lineStart := pos
		lineEnd := lineStart
		for lineEnd < len(src) && src[lineEnd] != '\n' {
			lineEnd++
		}
		line := src[lineStart:lineEnd]

		if isBlank(line) {
			flush()
		} else {
			if content.Len() > 0 {
				pending = append(pending, srcmap.Pair{Local: content.Len() + 1, Global: lineStart})
				content.WriteByte('\n')
			} else {
				pending = append(pending, srcmap.Pair{Local: 0, Global: lineStart})
			}
			content.WriteString(line)
		}

		pos = lineEnd
		if pos < len(src) && src[pos] == '\n' {
			pos++
		}
	}
	flush()

	return root, refs
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}
