// Package srcmap tracks byte offsets back to the original document and
// converts them to 1-based (line, column) pairs for diagnostics.
//
// Columns are counted in grapheme clusters via github.com/rivo/uniseg
// rather than bytes or runes, so a reported column matches what an editor
// or terminal shows for combining marks and wide East-Asian characters.
package srcmap

import "github.com/rivo/uniseg"

// Span is a half-open byte range [Start, End) in the original document.
type Span struct {
	Start int
	End   int
}

// Pair maps a local offset (within a block's extracted inline content)
// to its corresponding offset in the original document.
type Pair struct {
	Local  int
	Global int
}

// Mapping is an ascending-by-Local list of Pair. A Mapping of nil or a
// single {0, 0} entry means "local offsets equal global offsets".
type Mapping []Pair

// Identity returns the trivial mapping for inline content taken
// verbatim from the document starting at globalStart.
func Identity(globalStart int) Mapping {
	return Mapping{{Local: 0, Global: globalStart}}
}

// Resolve converts a local offset into the corresponding global offset,
// using the greatest mapping entry whose Local is <= local.
func (m Mapping) Resolve(local int) int {
	if len(m) == 0 {
		return local
	}
	best := m[0]
	for _, p := range m {
		if p.Local > local {
			break
		}
		best = p
	}
	return best.Global + (local - best.Local)
}

// LineCol converts a byte offset in src into a 1-based (line, column)
// pair. Column is a grapheme-cluster count from the start of the line.
func LineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = 1
	rest := src[lineStart:offset]
	for len(rest) > 0 {
		_, rest, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
		col++
	}
	return line, col
}
