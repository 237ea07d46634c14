package inline

import "github.com/ShafSpecs/mdit-go/node"

// TokenizeOne advances state by exactly one step: it tries every rule
// that could apply at the current character, in registration order, and
// on the first match advances Pos by the consumed byte count and
// reports true. If no rule matches, it consumes one UTF-8 character as
// text and reports false. This is the re-entry primitive label scanning
// uses to probe the inline stream one token at a time (§4.E).
func (r *Ruler) TokenizeOne(s *State) bool {
	c, size := s.currentRune()
	if size == 0 {
		return false
	}

	for _, rule := range r.candidates(c) {
		if consumed, ok := rule.Run(s); ok {
			s.Pos += consumed
			return true
		}
	}

	s.EmitText(s.Src[s.Pos : s.Pos+size])
	s.Pos += size
	return false
}

// Tokenize drives TokenizeOne until Pos reaches PosMax, then merges
// consecutive Text nodes (including inside any subtrees a rule
// attached, such as a link's label children) produced along the way.
func (r *Ruler) Tokenize(s *State) {
	for s.Pos < s.PosMax {
		r.TokenizeOne(s)
	}
	mergeAdjacentText(s.Node)
}

// mergeAdjacentText coalesces runs of sibling Text nodes into one,
// recursively, implementing "consecutive text characters are merged
// into a single Text node at flush time" (§4.E).
func mergeAdjacentText(n *node.Node) {
	if n == nil {
		return
	}
	merged := make([]*node.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if t, ok := c.Value.(node.Text); ok && len(merged) > 0 {
			if prevText, ok := merged[len(merged)-1].Value.(node.Text); ok {
				merged[len(merged)-1].Value = node.Text{Content: prevText.Content + t.Content}
				continue
			}
		}
		merged = append(merged, c)
	}
	n.Children = merged
	for _, c := range n.Children {
		mergeAdjacentText(c)
	}
}
