package nfa

// EpsilonClosure computes ε*(states): the least fixed point containing
// states and closed under ε-transitions, via iterative depth-first
// traversal with a visited set. EpsilonClosure is monotone and idempotent:
// EpsilonClosure(EpsilonClosure(s)) == EpsilonClosure(s).
func (n *NFA[Q]) EpsilonClosure(states map[Q]struct{}) map[Q]struct{} {
	closure := make(map[Q]struct{}, len(states))
	stack := make([]Q, 0, len(states))
	for q := range states {
		closure[q] = struct{}{}
		stack = append(stack, q)
	}

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range n.transitions[q] {
			if t.Label != nil {
				continue
			}
			for target := range t.Targets {
				if _, seen := closure[target]; !seen {
					closure[target] = struct{}{}
					stack = append(stack, target)
				}
			}
		}
	}

	return closure
}

// RecognizesEmpty reports whether this automaton accepts the empty
// string: whether ε*(initial_states) intersects final_states. Computed
// via a single DFS that returns as soon as a final state is found,
// without materializing the whole closure when it isn't necessary.
func (n *NFA[Q]) RecognizesEmpty() bool {
	visited := make(map[Q]struct{})
	stack := make([]Q, 0, len(n.initial))
	for q := range n.initial {
		stack = append(stack, q)
	}

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[q]; seen {
			continue
		}
		visited[q] = struct{}{}

		if n.IsFinal(q) {
			return true
		}

		for _, t := range n.transitions[q] {
			if t.Label != nil {
				continue
			}
			for target := range t.Targets {
				stack = append(stack, target)
			}
		}
	}

	return false
}
