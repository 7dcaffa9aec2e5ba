package sparse

import (
	"testing"
)

// TestSparseSetIter tests the Iter() method.
func TestSparseSetIter(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var collected []uint32
	s.Iter(func(v uint32) {
		collected = append(collected, v)
	})

	if len(collected) != 3 {
		t.Fatalf("expected 3 items, got %d", len(collected))
	}
	// Insertion order: 7, 2, 5
	if collected[0] != 7 || collected[1] != 2 || collected[2] != 5 {
		t.Errorf("expected [7,2,5], got %v", collected)
	}
}

// TestSparseSetIterEmpty tests Iter on an empty set.
func TestSparseSetIterEmpty(t *testing.T) {
	s := NewSparseSet(10)

	called := false
	s.Iter(func(v uint32) {
		called = true
	})
	if called {
		t.Error("Iter should not call function on empty set")
	}
}

// TestSparseSetContainsOutOfBounds tests Contains with value >= capacity.
func TestSparseSetContainsOutOfBounds(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)

	// Value beyond capacity should return false
	if s.Contains(10) {
		t.Error("Contains(10) should be false for capacity 10")
	}
	if s.Contains(100) {
		t.Error("Contains(100) should be false for capacity 10")
	}
}
