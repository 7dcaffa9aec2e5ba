// Package stateid provides state-identifier builders for constructing
// automata: an opaque, totally-ordered-by-construction value issued once
// per state and never reused. The default builder issues monotonically
// increasing 32-bit identifiers up to a configurable limit.
package stateid

import (
	"github.com/pkg/errors"

	"github.com/coregx/automata/internal/conv"
)

// ID is the default state identifier type: a compact 32-bit value.
type ID uint32

// ErrTooManyStates is returned by a Builder when it cannot mint any more
// state identifiers, either because its backing counter would overflow or
// because a caller-configured Limit has been reached.
var ErrTooManyStates = errors.New("stateid: too many states")

// nfaStates is the minimal surface a Builder needs on the automaton it is
// populating: the ability to register a bare state. This avoids an import
// cycle with package nfa (NFA[Q] itself depends on nothing in stateid).
type nfaStates[Q any] interface {
	AddState(q Q)
}

// Builder mints fresh state identifiers and registers them on nfa as bare
// states (no transitions). A *Uint32Builder or *UUIDBuilder satisfies this
// directly; since Go already allows a pointer receiver's method set to be
// used anywhere the interface is expected, no separate "builder of a
// builder" wrapper is needed.
type Builder[Q any] interface {
	Next(nfa nfaStates[Q]) (Q, error)
}

// Uint32Builder is the default state builder, issuing IDs 0, 1, 2, ... in
// order. Limit caps the number of states that may be issued; a zero Limit
// means "no limit beyond the natural uint32 overflow point".
type Uint32Builder struct {
	count uint32
	Limit uint32
}

// NewUint32Builder returns a builder with no configured limit beyond the
// natural 32-bit overflow point.
func NewUint32Builder() *Uint32Builder {
	return &Uint32Builder{Limit: ^uint32(0)}
}

// NewUint32BuilderWithLimit returns a builder that fails with
// ErrTooManyStates once limit states have been issued. limit is given as a
// plain int (the natural type for a caller-configured size bound) and
// safely narrowed to the builder's uint32 counter.
func NewUint32BuilderWithLimit(limit int) *Uint32Builder {
	return &Uint32Builder{Limit: conv.IntToUint32(limit)}
}

// Next mints the next ID, registers it as a bare state on nfa, and returns
// it. It fails with ErrTooManyStates if minting would overflow uint32 or
// exceed the configured Limit.
func (b *Uint32Builder) Next(nfa nfaStates[ID]) (ID, error) {
	if b.count == ^uint32(0) {
		return 0, errors.Wrap(ErrTooManyStates, "uint32 counter exhausted")
	}
	q := b.count
	next := b.count + 1
	if b.Limit != 0 && next > b.Limit {
		return 0, errors.Wrapf(ErrTooManyStates, "limit %d exceeded", b.Limit)
	}
	b.count = next
	nfa.AddState(ID(q))
	return ID(q), nil
}
