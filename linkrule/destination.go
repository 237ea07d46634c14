// Package linkrule implements the recursive link parser: the label
// scanner and its cache (§4.F), the link-form disambiguation algorithm
// (§4.G), and the destination/title sub-parsers (§4.H). It is the
// generalized Go counterpart of the original's
// generics::inline::full_link, reusable for both links (no prefix) and
// images (prefix "!") or any custom prefixed variant.
package linkrule

import "github.com/ShafSpecs/mdit-go/unescape"

// FragmentResult is the outcome of parsing a link destination or title.
type FragmentResult struct {
	Pos   int // position just past the parsed fragment
	Lines int // newlines consumed (titles may span two physical lines)
	Str   string
}

// ParseDestination parses the `<href>` part of a link, starting at
// src[start]. It returns (result, true) on success. Two forms are
// supported: bracketed (`<...>`, allowing escaped content, no bare
// unescaped `<` or newline) and bare (stops at whitespace or ASCII
// control, tracks parenthesis nesting up to 32 levels deep).
func ParseDestination(src string, start, max int) (FragmentResult, bool) {
	if start >= max {
		return FragmentResult{}, false
	}

	if src[start] == '<' {
		return parseBracketedDestination(src, start, max)
	}
	return parseBareDestination(src, start, max)
}

func parseBracketedDestination(src string, start, max int) (FragmentResult, bool) {
	pos := start + 1
	for pos < max {
		switch src[pos] {
		case '\n', '<':
			return FragmentResult{}, false
		case '>':
			return FragmentResult{
				Pos:   pos + 1,
				Lines: 0,
				Str:   unescape.All(src[start+1 : pos]),
			}, true
		case '\\':
			if pos+1 >= max {
				return FragmentResult{}, false
			}
			pos += 2
		default:
			pos++
		}
	}
	return FragmentResult{}, false
}

func parseBareDestination(src string, start, max int) (FragmentResult, bool) {
	pos := start
	level := 0

	for pos < max {
		c := src[pos]
		switch {
		case c <= ' ' || c == 0x7f:
			// space (0x20) and ASCII control characters terminate the
			// bare form cleanly.
			goto done
		case c == '\\':
			if pos+1 >= max || src[pos+1] == ' ' {
				goto done
			}
			pos += 2
		case c == '(':
			level++
			if level > 32 {
				return FragmentResult{}, false
			}
			pos++
		case c == ')':
			if level == 0 {
				goto done
			}
			level--
			pos++
		default:
			pos++
		}
	}

done:
	if level != 0 {
		return FragmentResult{}, false
	}
	return FragmentResult{
		Pos:   pos,
		Lines: 0,
		Str:   unescape.All(src[start:pos]),
	}, true
}

// ParseTitle parses a `"..."`, `'...'`, or `(...)` link title starting
// at src[start]. Newlines are permitted inside and counted in Lines.
func ParseTitle(src string, start, max int) (FragmentResult, bool) {
	if start >= max {
		return FragmentResult{}, false
	}

	var closing byte
	switch src[start] {
	case '"':
		closing = '"'
	case '\'':
		closing = '\''
	case '(':
		closing = ')'
	default:
		return FragmentResult{}, false
	}

	pos := start + 1
	lines := 0

	for pos < max {
		c := src[pos]
		switch {
		case c == closing:
			return FragmentResult{
				Pos:   pos + 1,
				Lines: lines,
				Str:   unescape.All(src[start+1 : pos]),
			}, true
		case closing == ')' && c == '(':
			return FragmentResult{}, false
		case c == '\n':
			lines++
			pos++
		case c == '\\':
			if pos+1 >= max {
				return FragmentResult{}, false
			}
			pos += 2
		default:
			pos++
		}
	}
	return FragmentResult{}, false
}
