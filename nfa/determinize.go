package nfa

import (
	"github.com/coregx/automata/charset"
	"github.com/coregx/automata/dfa"
)

func subsetEqual[Q comparable](a, b map[Q]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for q := range a {
		if _, ok := b[q]; !ok {
			return false
		}
	}
	return true
}

func unionSubsets[Q comparable](a, b map[Q]struct{}) map[Q]struct{} {
	out := make(map[Q]struct{}, len(a)+len(b))
	for q := range a {
		out[q] = struct{}{}
	}
	for q := range b {
		out[q] = struct{}{}
	}
	return out
}

// transitionsFor computes the range-partitioned map from disjoint
// character ranges to the ε-closed union of targets reachable from states
// by a single non-ε move: for each q in states and each non-ε transition
// (label, targets) from q, and each range r in label, update the range map
// over r by unioning in ε*(targets). The range map's Update splits
// pre-existing ranges that overlap r and applies the merge to the
// overlapping portion only, preserving disjointness.
func (n *NFA[Q]) transitionsFor(states map[Q]struct{}) *charset.Map[map[Q]struct{}] {
	m := charset.NewMap[map[Q]struct{}](subsetEqual[Q])

	for q := range states {
		for _, t := range n.transitions[q] {
			if t.Label == nil {
				continue
			}
			closed := n.EpsilonClosure(t.Targets)
			for _, r := range t.Label.Ranges() {
				m.Update(r.Lo, r.Hi, func(old map[Q]struct{}, present bool) map[Q]struct{} {
					if !present {
						return closed
					}
					return unionSubsets(old, closed)
				})
			}
		}
	}

	return m
}

// Determinize turns n into a DFA via subset construction. Each reachable
// subset of NFA states is ε-closed and interned into a DFA state via
// rename; rename must be deterministic (equal subsets must map to equal R
// values), since that is how the worklist below detects a subset has
// already been visited and terminates the search.
//
// Determinize cannot be a method of NFA[Q] because Go methods may not
// introduce additional type parameters beyond the receiver's; it is a free
// function the way e.g. a generic Map over a container must be.
func Determinize[Q comparable, R comparable](n *NFA[Q], rename func(map[Q]struct{}) R) *dfa.DFA[R] {
	initial := n.EpsilonClosure(n.initial)
	initialImage := rename(initial)

	final := make(map[R]struct{})
	transitions := make(map[R]*charset.Map[R])
	visited := make(map[R]struct{})

	type work struct {
		states map[Q]struct{}
		image  R
	}
	stack := []work{{states: initial, image: initialImage}}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[w.image]; seen {
			continue
		}
		visited[w.image] = struct{}{}

		for q := range w.states {
			if n.IsFinal(q) {
				final[w.image] = struct{}{}
				break
			}
		}

		rangeMap := n.transitionsFor(w.states)
		rMap := charset.NewMap[R](func(a, b R) bool { return a == b })
		for _, entry := range rangeMap.Entries() {
			if len(entry.Value) == 0 {
				continue
			}
			targetImage := rename(entry.Value)
			rMap.Update(entry.Range.Lo, entry.Range.Hi, func(R, bool) R { return targetImage })
			stack = append(stack, work{states: entry.Value, image: targetImage})
		}
		if len(rMap.Entries()) > 0 {
			transitions[w.image] = rMap
		}
	}

	return dfa.FromParts(initialImage, final, transitions)
}
