package nfa

import (
	"github.com/coregx/automata/internal/conv"
	"github.com/coregx/automata/internal/sparse"
	"github.com/coregx/automata/stateid"
)

// FastState is the sparse-set-backed counterpart of State[stateid.ID]: the
// same current/next swap discipline, but backed by internal/sparse's
// SparseSets instead of a pair of Go maps, for the common case where states
// are stateid.ID values over a known, bounded universe. The pair is
// allocated once, in InitialState, and its two sets are swapped rather than
// reallocated on every subsequent step.
type FastState struct {
	sets *sparse.SparseSets
}

// FastRecognizer adapts an *NFA[stateid.ID] to the Recognizer contract using
// FastState instead of the generic State[stateid.ID], trading the generic
// closure's map allocations for SparseSet's array-backed O(1) membership and
// O(1) Clear. capacity must exceed every stateid.ID ever added to n; the
// natural source is the count issued by a stateid.Uint32Builder, which hands
// out IDs densely starting at 0.
type FastRecognizer struct {
	n        *NFA[stateid.ID]
	capacity uint32
}

// NewFastRecognizer wraps n for fast-path recognition, sizing its scratch
// sparse sets for the given capacity (an upper bound, exclusive, on the
// stateid.ID values n uses).
func NewFastRecognizer(n *NFA[stateid.ID], capacity int) *FastRecognizer {
	return &FastRecognizer{n: n, capacity: conv.IntToUint32(capacity)}
}

// closeInPlace extends dest with its own ε-closure: every state reachable
// from a member of dest by zero or more ε-moves is inserted into dest. dest
// is both the seed and the output, so no scratch set beyond the DFS stack
// is allocated.
func (r *FastRecognizer) closeInPlace(dest *sparse.SparseSet) {
	stack := make([]uint32, 0, dest.Len())
	dest.Iter(func(v uint32) {
		stack = append(stack, v)
	})

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range r.n.transitions[stateid.ID(v)] {
			if t.Label != nil {
				continue
			}
			for target := range t.Targets {
				tv := uint32(target)
				if dest.Insert(tv) {
					stack = append(stack, tv)
				}
			}
		}
	}
}

// InitialState implements the Recognizer contract.
func (r *FastRecognizer) InitialState() (FastState, bool) {
	sets := sparse.NewSparseSets(r.capacity)
	for q := range r.n.initial {
		sets.Set1.Insert(uint32(q))
	}

	r.closeInPlace(sets.Set1)
	if sets.Set1.IsEmpty() {
		return FastState{}, false
	}
	return FastState{sets: sets}, true
}

// NextState implements the Recognizer contract. The successor set is built
// in the state's scratch set (cleared, not reallocated) and then the pair
// is swapped so it becomes the new current set — the same swap the generic
// State[Q].NextState performs over maps, but over a persistent SparseSets
// pair instead of per-step allocations.
func (r *FastRecognizer) NextState(s FastState, token rune) (FastState, bool) {
	next := s.sets.Set2
	next.Clear()
	s.sets.Set1.Iter(func(v uint32) {
		for _, t := range r.n.transitions[stateid.ID(v)] {
			if t.Label == nil || !t.Label.Contains(token) {
				continue
			}
			for target := range t.Targets {
				next.Insert(uint32(target))
			}
		}
	})

	r.closeInPlace(next)
	if next.IsEmpty() {
		return FastState{}, false
	}
	s.sets.Swap()
	return FastState{sets: s.sets}, true
}

// IsFinalState implements the Recognizer contract.
func (r *FastRecognizer) IsFinalState(s FastState) bool {
	found := false
	s.sets.Set1.Iter(func(v uint32) {
		if r.n.IsFinal(stateid.ID(v)) {
			found = true
		}
	})
	return found
}
