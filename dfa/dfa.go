// Package dfa implements a deterministic finite automaton over Unicode
// scalar values, typically produced by subset construction from an NFA
// (see package nfa's Determinize) but also constructable directly from
// parts. A DFA's states are values of a caller-chosen type Q; its
// transition table is, per source state, a range-partitioned map from
// disjoint character ranges to a single target state.
package dfa

import "github.com/coregx/automata/charset"

// DFA is a deterministic finite automaton whose states are values of type
// Q.
type DFA[Q comparable] struct {
	initial Q
	final   map[Q]struct{}
	// transitions[q] is nil for a state with no outgoing transitions.
	transitions map[Q]*charset.Map[Q]
}

// FromParts constructs a DFA directly from its initial state, final-state
// set, and transition table. Each entry of transitions must already
// satisfy the disjointness invariant (charset.Map enforces this on every
// Update it performs).
func FromParts[Q comparable](initial Q, final map[Q]struct{}, transitions map[Q]*charset.Map[Q]) *DFA[Q] {
	if final == nil {
		final = make(map[Q]struct{})
	}
	if transitions == nil {
		transitions = make(map[Q]*charset.Map[Q])
	}
	return &DFA[Q]{initial: initial, final: final, transitions: transitions}
}

// Initial returns the DFA's unique initial state.
func (d *DFA[Q]) Initial() Q {
	return d.initial
}

// IsFinal reports whether q is an accepting state.
func (d *DFA[Q]) IsFinal(q Q) bool {
	_, ok := d.final[q]
	return ok
}

// FinalStates returns the set of accepting states. The returned map must
// not be mutated.
func (d *DFA[Q]) FinalStates() map[Q]struct{} {
	return d.final
}

// Step locates the unique outgoing range of q containing c and returns
// its target, or false if no such range exists (c is rejected at q).
func (d *DFA[Q]) Step(q Q, c rune) (Q, bool) {
	m, ok := d.transitions[q]
	if !ok || m == nil {
		var zero Q
		return zero, false
	}
	return m.Get(c)
}

// Transitions returns the range-partitioned transition table rooted at q,
// or nil if q has none.
func (d *DFA[Q]) Transitions(q Q) *charset.Map[Q] {
	return d.transitions[q]
}

// InitialState implements the Recognizer contract: a DFA always has
// exactly one way to begin.
func (d *DFA[Q]) InitialState() (Q, bool) {
	return d.initial, true
}

// NextState implements the Recognizer contract: consume one scalar and
// return the successor state, or false if token is rejected at current.
func (d *DFA[Q]) NextState(current Q, token rune) (Q, bool) {
	return d.Step(current, token)
}

// IsFinalState implements the Recognizer contract.
func (d *DFA[Q]) IsFinalState(state Q) bool {
	return d.IsFinal(state)
}
