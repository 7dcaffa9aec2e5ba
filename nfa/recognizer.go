package nfa

// State is the dynamic configuration of an NFA recognizer traversal: the
// current ε-closed set of reachable states. It carries two sets (current,
// next). Each step collects the successors in next, ε-closes them into a
// newly allocated map that becomes the new current set, and clears the old
// current set for reuse as the new next. No DFS stack is kept between steps.
type State[Q comparable] struct {
	current map[Q]struct{}
	next    map[Q]struct{}
}

// InitialState implements the Recognizer contract: ε*(initial_states),
// or false if that closure is empty (the automaton has no way to begin).
func (n *NFA[Q]) InitialState() (State[Q], bool) {
	closure := n.EpsilonClosure(n.initial)
	if len(closure) == 0 {
		return State[Q]{}, false
	}
	return State[Q]{current: closure, next: make(map[Q]struct{}, len(closure))}, true
}

// NextState implements the Recognizer contract: consume one scalar and
// return the successor configuration, or false if it is rejected here.
func (n *NFA[Q]) NextState(s State[Q], token rune) (State[Q], bool) {
	for q := range s.current {
		for _, t := range n.transitions[q] {
			if t.Label == nil || !t.Label.Contains(token) {
				continue
			}
			for target := range t.Targets {
				s.next[target] = struct{}{}
			}
		}
	}

	closure := n.EpsilonClosure(s.next)
	if len(closure) == 0 {
		return State[Q]{}, false
	}

	for q := range s.current {
		delete(s.current, q)
	}
	return State[Q]{current: closure, next: s.current}, true
}

// IsFinalState implements the Recognizer contract: whether any state in
// the current configuration is accepting.
func (n *NFA[Q]) IsFinalState(s State[Q]) bool {
	for q := range s.current {
		if n.IsFinal(q) {
			return true
		}
	}
	return false
}
