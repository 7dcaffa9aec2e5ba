package nfa

// MappedUnion merges every state, transition, initial state, and final
// state of other into n, after applying rename to each of other's state
// identifiers. The caller is responsible for rename's injectivity if
// state disjointness between n's original states and other's is desired.
// The result recognizes the union of the two languages, since all
// original initial states of both automata remain marked initial.
//
// A free function rather than a method for the same reason as
// Determinize: Go methods cannot add type parameters beyond the
// receiver's, and other's state type R is independent of n's Q.
func MappedUnion[Q comparable, R comparable](n *NFA[Q], other *NFA[R], rename func(R) Q) {
	for q, entries := range other.transitions {
		renamed := rename(q)
		n.AddState(renamed)
		for _, t := range entries {
			for target := range t.Targets {
				n.AddTransition(renamed, t.Label, rename(target))
			}
		}
	}

	for q := range other.initial {
		n.AddInitialState(rename(q))
	}
	for q := range other.final {
		n.AddFinalState(rename(q))
	}
}

// Union adds every state and transition of other to n unchanged (no
// renaming). Equivalent to MappedUnion with the identity function.
func Union[Q comparable](n *NFA[Q], other *NFA[Q]) {
	MappedUnion(n, other, func(q Q) Q { return q })
}
