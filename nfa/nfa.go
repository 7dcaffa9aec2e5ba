// Package nfa implements a nondeterministic finite automaton over Unicode
// scalar values: states are an opaque, caller-chosen type Q; transitions
// are labelled either by ε (the empty label, consuming no input) or by a
// charset.Set of scalars. States are added by additive mutation
// (AddState, AddTransition, AddInitialState, AddFinalState) and the
// resulting automaton is then consumed by compositional operations
// (Determinize, Product) that yield new automata, or merged into another
// automaton in place by MappedUnion. States, once added, are never removed.
package nfa

import "github.com/coregx/automata/charset"

// Transition pairs a label (nil meaning ε) with the set of states it leads
// to from some source state.
type Transition[Q comparable] struct {
	Label   *charset.Set // nil => ε-transition
	Targets map[Q]struct{}
}

// NFA is a nondeterministic finite automaton whose states are values of
// type Q. The zero value is not ready for use; construct with New.
type NFA[Q comparable] struct {
	transitions map[Q][]Transition[Q]
	initial     map[Q]struct{}
	final       map[Q]struct{}
}

// New returns an empty NFA.
func New[Q comparable]() *NFA[Q] {
	return &NFA[Q]{
		transitions: make(map[Q][]Transition[Q]),
		initial:     make(map[Q]struct{}),
		final:       make(map[Q]struct{}),
	}
}

// AddState ensures q is present in the automaton as a bare state (no
// transitions added beyond what it may already have). Idempotent.
func (n *NFA[Q]) AddState(q Q) {
	if _, ok := n.transitions[q]; !ok {
		n.transitions[q] = nil
	}
}

// AddTransition adds a transition from source to target labelled by label
// (nil for ε). Both endpoints are ensured present. Multiple transitions
// with overlapping labels between the same pair of states are permitted;
// repeated calls with an identical label accumulate into the same target
// set rather than creating duplicate entries.
func (n *NFA[Q]) AddTransition(source Q, label *charset.Set, target Q) {
	n.AddState(source)
	n.AddState(target)

	entries := n.transitions[source]
	for i := range entries {
		if labelsEqual(entries[i].Label, label) {
			entries[i].Targets[target] = struct{}{}
			return
		}
	}
	n.transitions[source] = append(entries, Transition[Q]{
		Label:   label,
		Targets: map[Q]struct{}{target: {}},
	})
}

func labelsEqual(a, b *charset.Set) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// AddInitialState marks q as an initial state. Returns true if q was not
// already initial.
func (n *NFA[Q]) AddInitialState(q Q) bool {
	n.AddState(q)
	if _, ok := n.initial[q]; ok {
		return false
	}
	n.initial[q] = struct{}{}
	return true
}

// AddFinalState marks q as a final (accepting) state. Returns true if q
// was not already final.
func (n *NFA[Q]) AddFinalState(q Q) bool {
	n.AddState(q)
	if _, ok := n.final[q]; ok {
		return false
	}
	n.final[q] = struct{}{}
	return true
}

// IsInitialState reports whether q is marked as an initial state.
func (n *NFA[Q]) IsInitialState(q Q) bool {
	_, ok := n.initial[q]
	return ok
}

// IsFinal reports whether q is marked as a final state.
func (n *NFA[Q]) IsFinal(q Q) bool {
	_, ok := n.final[q]
	return ok
}

// InitialStates returns the set of initial states. The returned map must
// not be mutated.
func (n *NFA[Q]) InitialStates() map[Q]struct{} {
	return n.initial
}

// FinalStates returns the set of final states. The returned map must not
// be mutated.
func (n *NFA[Q]) FinalStates() map[Q]struct{} {
	return n.final
}

// Successors returns the outgoing transitions from q, or nil if q has
// none (or is unknown). The returned slice must not be mutated.
func (n *NFA[Q]) Successors(q Q) []Transition[Q] {
	return n.transitions[q]
}

// States returns every state known to the automaton (sources, targets,
// and bare states added via AddState), in no particular order.
func (n *NFA[Q]) States() []Q {
	out := make([]Q, 0, len(n.transitions))
	for q := range n.transitions {
		out = append(out, q)
	}
	return out
}
