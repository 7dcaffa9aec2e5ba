package nfa

// IsSingleton reports whether this automaton recognizes exactly one
// string. See ToSingleton for the corrected-contract discussion.
func (n *NFA[Q]) IsSingleton() bool {
	_, ok := n.ToSingleton()
	return ok
}

// ToSingleton returns the string recognized by this automaton if it is a
// singleton automaton (it accepts exactly one string), and false
// otherwise (accepts no string, or more than one).
//
// Walk: starting from the unique initial state (false if there is more
// than one), require at each step that the current state has at most one
// outgoing label, that the label is a non-ε charset of cardinality 1, and
// that it leads to exactly one target; append that one scalar and
// continue from the target. The walk ends when a state has no outgoing
// transitions.
//
// A walk that dead-ends at a non-accepting state recognizes no complete
// string and returns false; only a walk that terminates on a final state
// yields a singleton. A walk that passes through a final state before its
// end, or that returns to a state it already visited, returns false.
func (n *NFA[Q]) ToSingleton() (string, bool) {
	if len(n.initial) > 1 {
		return "", false
	}

	var q Q
	found := false
	for s := range n.initial {
		q = s
		found = true
	}
	if !found {
		// No initial states: recognizes no string at all.
		return "", false
	}

	var result []rune
	visited := make(map[Q]struct{})
	for {
		if _, seen := visited[q]; seen {
			return "", false
		}
		visited[q] = struct{}{}

		entries := n.transitions[q]
		if len(entries) == 0 {
			if !n.IsFinal(q) {
				return "", false
			}
			return string(result), true
		}
		if len(entries) > 1 || n.IsFinal(q) {
			return "", false
		}

		t := entries[0]
		if t.Label == nil || t.Label.Len() != 1 {
			return "", false
		}
		if len(t.Targets) != 1 {
			return "", false
		}

		result = append(result, t.Label.Ranges()[0].Lo)
		for target := range t.Targets {
			q = target
		}
	}
}
