package stateid

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUIDBuilder mints globally-unique state identifiers. Unlike Uint32Builder
// it never runs out (UUID collisions are not modeled as ErrTooManyStates),
// which makes it convenient when merging automata built independently
// (e.g. by separate goroutines assembling regex fragments concurrently)
// without a subsequent rename pass to avoid id collisions.
type UUIDBuilder struct{}

// NewUUIDBuilder returns a UUID-backed state builder.
func NewUUIDBuilder() *UUIDBuilder {
	return &UUIDBuilder{}
}

// Next mints a fresh random UUID, registers it as a bare state on nfa, and
// returns it.
func (b *UUIDBuilder) Next(nfa nfaStates[uuid.UUID]) (uuid.UUID, error) {
	q, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, errors.Wrap(err, "stateid: generating random uuid")
	}
	nfa.AddState(q)
	return q, nil
}
