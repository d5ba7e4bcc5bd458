package domain

import "math/bits"

// CandidateSet is the set of digits 1-9 still possible for one cell,
// packed one bit per digit: bit d-1 set means d is possible. An empty
// set marks an unsolvable cell, a singleton a solved one.
//
// CandidateSet is a plain value; boards copy 81 of them per search
// branch, so every operation stays allocation-free.
type CandidateSet uint16

// AllCandidates is the completely unconstrained set {1..9}.
const AllCandidates CandidateSet = 1<<GridSize - 1

// Only returns the singleton set containing d. d must be in 1..9.
func Only(d uint8) CandidateSet { return 1 << (d - 1) }

// Has reports whether d is still possible.
func (s CandidateSet) Has(d uint8) bool { return s&Only(d) != 0 }

// Count returns the set's cardinality.
func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Solved reports whether exactly one digit remains.
func (s CandidateSet) Solved() bool { return s.Count() == 1 }

// Value extracts the digit of a singleton set. ok is false for empty
// and multi-candidate sets.
func (s CandidateSet) Value() (d uint8, ok bool) {
	if !s.Solved() {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Without returns s with every digit of other removed.
func (s CandidateSet) Without(other CandidateSet) CandidateSet { return s &^ other }

// Digits returns the remaining digits in ascending order.
func (s CandidateSet) Digits() []uint8 {
	ds := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= GridSize; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}
