// Package block implements the minimal block phase (§4.J): input
// normalization, reference-definition extraction, and paragraph
// grouping into InlineRoot nodes under a synthetic Root. It is a thin,
// non-goal-respecting collaborator — no headings, lists, blockquotes,
// fences, tables, or HTML blocks — that exists only to hand the inline
// engine something to chew on and to populate the reference map §4.I
// depends on.
package block

import "strings"

// Normalize applies the line-ending and NUL substitutions invariant 3
// requires: CRLF and lone CR become LF, and NUL becomes U+FFFD. It is
// idempotent — normalizing already-normalized text is a no-op.
func Normalize(src string) string {
	if strings.IndexByte(src, '\r') < 0 && strings.IndexByte(src, 0) < 0 {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\r':
			b.WriteByte('\n')
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
		case 0:
			b.WriteRune('�')
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String()
}
