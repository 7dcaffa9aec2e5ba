package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/automata/charset"
)

func TestUnionAcceptsEitherLanguage(t *testing.T) {
	cat := buildLinearChain("cat")

	// Disjoint state space from cat's 0..3, so Union (no renaming) doesn't
	// collide them.
	dog := New[int]()
	d := charset.Of('d', 'd')
	o := charset.Of('o', 'o')
	g := charset.Of('g', 'g')
	dog.AddInitialState(100)
	dog.AddTransition(100, &d, 101)
	dog.AddTransition(101, &o, 102)
	dog.AddTransition(102, &g, 103)
	dog.AddFinalState(103)

	Union(cat, dog)

	for _, tc := range []struct {
		in      string
		accepts bool
	}{
		{"cat", true},
		{"dog", true},
		{"cow", false},
		{"", false},
	} {
		assert.Equal(t, tc.accepts, acceptsNFA(cat, tc.in), "input %q", tc.in)
	}
}

func TestMappedUnionRenamesOtherStates(t *testing.T) {
	base := New[int]()
	base.AddInitialState(0)
	base.AddFinalState(0)

	other := New[string]()
	other.AddInitialState("x")
	other.AddFinalState("x")

	MappedUnion(base, other, func(s string) int {
		// Rename into a disjoint region of base's state space.
		if s == "x" {
			return 1000
		}
		return -1
	})

	assert.True(t, base.IsInitialState(1000))
	assert.True(t, base.IsFinal(1000))
	assert.True(t, acceptsNFA(base, ""))
}

func TestMappedUnionCarriesOverTransitions(t *testing.T) {
	base := New[int]()
	base.AddInitialState(0)

	other := New[int]()
	a := charset.Of('a', 'a')
	other.AddInitialState(0)
	other.AddTransition(0, &a, 1)
	other.AddFinalState(1)

	// Rename other's states by adding 10, keeping them disjoint from base's.
	MappedUnion(base, other, func(q int) int { return q + 10 })

	assert.True(t, acceptsNFA(base, "a"))
}
