// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set is a data structure that supports O(1) insertion, membership testing and
// clearing while maintaining a dense list of elements; this one has no single-element removal. It backs the fast-path NFA recognizer
// state (see package nfa's FastState) where the set of ε-closed reachable states is bounded
// by a known universe of stateid.ID values and needs to be cleared every step without
// reallocating. SparseSets pairs two sets for the current/next swap that same recognizer
// performs on every step.
package sparse

// defaultCapacity is used when NewSparseSet is given a capacity of 0.
const defaultCapacity = 64

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// This implementation is optimized for cases where the universe of possible
// values is known and relatively small (e.g., NFA state IDs).
type SparseSet struct {
	sparse   []uint32 // Maps value -> index in dense
	dense    []uint32 // Contains the actual values
	size     uint32   // Current number of elements
	capacity uint32
}

// NewSparseSet creates a new sparse set with the given capacity.
// The capacity represents the maximum value that can be stored (exclusive).
// A capacity of 0 defaults to 64.
func NewSparseSet(capacity uint32) *SparseSet {
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &SparseSet{
		sparse:   make([]uint32, capacity),
		dense:    make([]uint32, 0, capacity),
		size:     0,
		capacity: capacity,
	}
}

// Insert adds a value to the set, returning true if it was not already
// present. Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}

	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains returns true if the value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= s.capacity {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Iter calls the given function for each value in the set.
// The iteration order is unspecified (in practice, insertion order).
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// SparseSets is a pair of sparse sets meant to be swapped rather than
// reallocated on every step of a current/next traversal (see nfa.FastState).
type SparseSets struct {
	Set1 *SparseSet
	Set2 *SparseSet
}

// NewSparseSets creates a pair of empty sparse sets, each with the given
// capacity.
func NewSparseSets(capacity uint32) *SparseSets {
	return &SparseSets{
		Set1: NewSparseSet(capacity),
		Set2: NewSparseSet(capacity),
	}
}

// Swap exchanges Set1 and Set2 in place (pointer swap, no copying).
func (ss *SparseSets) Swap() {
	ss.Set1, ss.Set2 = ss.Set2, ss.Set1
}
