package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/automata/charset"
)

func TestEpsilonClosureFollowsChainOfEpsilons(t *testing.T) {
	n := New[int]()
	n.AddTransition(0, nil, 1)
	n.AddTransition(1, nil, 2)
	n.AddFinalState(2)

	closure := n.EpsilonClosure(map[int]struct{}{0: {}})
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, closure)
}

func TestEpsilonClosureDoesNotCrossLabeledTransitions(t *testing.T) {
	n := New[int]()
	a := charset.Of('a', 'a')
	n.AddTransition(0, &a, 1)

	closure := n.EpsilonClosure(map[int]struct{}{0: {}})
	assert.Equal(t, map[int]struct{}{0: {}}, closure)
}

func TestEpsilonClosureIsIdempotent(t *testing.T) {
	n := New[int]()
	n.AddTransition(0, nil, 1)
	n.AddTransition(1, nil, 2)

	once := n.EpsilonClosure(map[int]struct{}{0: {}})
	twice := n.EpsilonClosure(once)
	assert.Equal(t, once, twice)
}

func TestRecognizesEmptyTrueWhenInitialClosureReachesFinal(t *testing.T) {
	n := New[int]()
	n.AddInitialState(0)
	n.AddTransition(0, nil, 1)
	n.AddFinalState(1)

	assert.True(t, n.RecognizesEmpty())
}

func TestRecognizesEmptyFalseWhenNoEpsilonPathToFinal(t *testing.T) {
	n := New[int]()
	a := charset.Of('a', 'a')
	n.AddInitialState(0)
	n.AddTransition(0, &a, 1)
	n.AddFinalState(1)

	assert.False(t, n.RecognizesEmpty())
}

func TestRecognizesEmptyFalseWithNoInitialStates(t *testing.T) {
	n := New[int]()
	n.AddFinalState(0)
	assert.False(t, n.RecognizesEmpty())
}
