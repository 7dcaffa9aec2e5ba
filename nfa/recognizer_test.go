package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStateFalseWhenNoInitialStates(t *testing.T) {
	n := New[int]()
	_, ok := n.InitialState()
	assert.False(t, ok)
}

func TestNextStateRejectsUnmatchedToken(t *testing.T) {
	n := buildLinearChain("ab")
	state, ok := n.InitialState()
	assert.True(t, ok)

	_, ok = n.NextState(state, 'z')
	assert.False(t, ok)
}

func TestStateWalkAcceptsExactString(t *testing.T) {
	n := buildLinearChain("ab")
	assert.True(t, acceptsNFA(n, "ab"))
	assert.False(t, acceptsNFA(n, "a"))
	assert.False(t, acceptsNFA(n, "abc"))
}

func TestStateStepsThroughRepeatedToken(t *testing.T) {
	n := buildLinearChain("aaa")
	state, ok := n.InitialState()
	assert.True(t, ok)

	for range "aaa" {
		state, ok = n.NextState(state, 'a')
		assert.True(t, ok)
	}
	assert.True(t, n.IsFinalState(state))
}
