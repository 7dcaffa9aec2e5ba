package nfa

import "github.com/coregx/automata/charset"

type pair[A, B comparable] struct {
	a A
	b B
}

func epsilonTargets[Q comparable](n *NFA[Q], q Q) map[Q]struct{} {
	for _, t := range n.transitions[q] {
		if t.Label == nil {
			return t.Targets
		}
	}
	return nil
}

// Product constructs the product automaton of a and b on state pairs,
// renamed by rename(qa, qb). Final states are images of pairs that are
// final in both sources, giving language intersection. Only state pairs
// reachable from an initial pair are materialized (depth-first, with
// visited-set dedup keyed by the renamed image).
//
// ε handling: a synchronized ε-edge f(a,b) -> f(sa,sb) is added only when
// both a and b have an ε-move to sa and sb respectively; one-sided
// ε-moves are deliberately not carried over. This makes Product
// language-intersection-preserving only when neither
// input has a semantically meaningful ε-move the other side lacks at the
// same point — callers composing regex fragments are expected to have
// already ε-closed fragment boundaries; general ε-NFAs should be
// determinized (or ε-closed) before taking a product.
//
// Free function for the same reason as Determinize/MappedUnion: A and B
// are independent type parameters, and the result type S is a third.
func Product[A comparable, B comparable, S comparable](a *NFA[A], b *NFA[B], rename func(A, B) S) *NFA[S] {
	result := New[S]()

	visited := make(map[S]struct{})
	var stack []pair[A, B]

	for qa := range a.initial {
		for qb := range b.initial {
			s := rename(qa, qb)
			result.AddInitialState(s)
			stack = append(stack, pair[A, B]{a: qa, b: qb})
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := rename(p.a, p.b)
		if _, seen := visited[s]; seen {
			continue
		}
		visited[s] = struct{}{}
		result.AddState(s)

		if a.IsFinal(p.a) && b.IsFinal(p.b) {
			result.AddFinalState(s)
		}

		for _, ta := range a.transitions[p.a] {
			if ta.Label == nil {
				continue
			}
			for _, tb := range b.transitions[p.b] {
				if tb.Label == nil {
					continue
				}
				label := charset.Intersection(*ta.Label, *tb.Label)
				if label.IsEmpty() {
					continue
				}
				for sa := range ta.Targets {
					for sb := range tb.Targets {
						next := rename(sa, sb)
						result.AddTransition(s, &label, next)
						stack = append(stack, pair[A, B]{a: sa, b: sb})
					}
				}
			}
		}

		aEps := epsilonTargets(a, p.a)
		bEps := epsilonTargets(b, p.b)
		if len(aEps) > 0 && len(bEps) > 0 {
			for sa := range aEps {
				for sb := range bEps {
					next := rename(sa, sb)
					result.AddTransition(s, nil, next)
					stack = append(stack, pair[A, B]{a: sa, b: sb})
				}
			}
		}
	}

	return result
}
