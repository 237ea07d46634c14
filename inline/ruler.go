package inline

import "fmt"

// Rule is one inline syntax rule (§4.D). Marker returns the single
// leading character this rule is indexed under, or 0 for a markerless
// rule that is always tried.
type Rule interface {
	Name() string
	Marker() rune
	// Run attempts to match at state.Pos. On success it appends node(s)
	// to state.Node.Children and returns the number of bytes consumed.
	Run(state *State) (consumed int, ok bool)
}

// Checker is an optional fast lookahead a Rule may additionally
// implement: it must not mutate state, and is used by rules (or their
// callers) that need to peek without committing a match.
type Checker interface {
	Check(state *State) (consumed int, ok bool)
}

// Ruler is the ordered rule registry plus an index from rule name to
// position. There is no index by marker character: candidates scans the
// whole list at every position. Registration order is significant: for
// a given marker, the first registered rule whose Run returns ok=true
// wins.
type Ruler struct {
	rules      []Rule
	indexByName map[string]int
}

// NewRuler returns an empty registry.
func NewRuler() *Ruler {
	return &Ruler{indexByName: make(map[string]int)}
}

// Has reports whether a rule with the given name is already registered.
func (r *Ruler) Has(name string) bool {
	_, ok := r.indexByName[name]
	return ok
}

// Add registers rule at the end of the list. It panics if a rule with
// the same name is already registered — duplicate registration is a
// programmer error, not a runtime condition callers recover from.
func (r *Ruler) Add(rule Rule) {
	if r.Has(rule.Name()) {
		panic(fmt.Sprintf("inline: rule %q already registered", rule.Name()))
	}
	r.indexByName[rule.Name()] = len(r.rules)
	r.rules = append(r.rules, rule)
}

// AddBefore inserts rule immediately before the named rule.
func (r *Ruler) AddBefore(name string, rule Rule) {
	r.insertAt(r.mustIndex(name), rule)
}

// AddAfter inserts rule immediately after the named rule.
func (r *Ruler) AddAfter(name string, rule Rule) {
	r.insertAt(r.mustIndex(name)+1, rule)
}

func (r *Ruler) mustIndex(name string) int {
	i, ok := r.indexByName[name]
	if !ok {
		panic(fmt.Sprintf("inline: no such rule %q", name))
	}
	return i
}

func (r *Ruler) insertAt(i int, rule Rule) {
	if r.Has(rule.Name()) {
		panic(fmt.Sprintf("inline: rule %q already registered", rule.Name()))
	}
	r.rules = append(r.rules, nil)
	copy(r.rules[i+1:], r.rules[i:])
	r.rules[i] = rule
	r.reindex()
}

func (r *Ruler) reindex() {
	for name := range r.indexByName {
		delete(r.indexByName, name)
	}
	for i, rule := range r.rules {
		r.indexByName[rule.Name()] = i
	}
}

// candidates returns the rules that may apply at character c, in
// registration order: markerless rules interleaved with rules indexed
// under c.
func (r *Ruler) candidates(c rune) []Rule {
	out := make([]Rule, 0, 4)
	for _, rule := range r.rules {
		if m := rule.Marker(); m == 0 || m == c {
			out = append(out, rule)
		}
	}
	return out
}
