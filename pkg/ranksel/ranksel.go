// Package ranksel defines the capability interfaces shared by every set
// representation in this module (ImpliedSet, Ranker, Selecter) and
// implements, exactly once, the auxiliary operations defined as
// defaults in terms of a primitive capability: Rank0, Rank2, Contains,
// AccessAndRank, and Select0.
//
// Go has no trait default methods, so rather than duplicate this logic
// per concrete type, each of dense64.Dense64, sparse.Sparse, and the
// oracle.* reference types forwards to these functions from a thin
// method of its own.
package ranksel

// ImpliedSet exposes the basic size/count of a set-like structure over
// non-negative integers.
type ImpliedSet interface {
	// Count returns the number of elements in the set.
	Count() uint64
	// Size returns the size of the domain; at least one more than the
	// largest element in the set.
	Size() uint64
}

// Ranker is implemented by structures that can answer Rank(value): the
// number of elements strictly less than value.
type Ranker interface {
	ImpliedSet
	Rank(value uint64) uint64
}

// Selecter is implemented by structures that can answer Select(index):
// the index-th smallest element (0-indexed). The caller must ensure
// index < Count().
type Selecter interface {
	ImpliedSet
	Select(index uint64) uint64
}

// Rank1 is an alias for Rank, for clarity when code mixes Rank0 and Rank1.
func Rank1[R Ranker](r R, value uint64) uint64 {
	return r.Rank(value)
}

// Rank0 returns the rank of value in the complement of the set.
func Rank0[R Ranker](r R, value uint64) uint64 {
	return value - r.Rank(value)
}

// Rank2 computes the ranks of two domain elements. Callers should ensure
// value1 < value2; implementations are free to exploit that the two
// values are close together, but the interface-level default here just
// calls Rank twice.
func Rank2[R Ranker](r R, value1, value2 uint64) (uint64, uint64) {
	return r.Rank(value1), r.Rank(value2)
}

// Contains reports whether value is a member of the set.
func Contains[R Ranker](r R, value uint64) bool {
	return r.Rank(value) < r.Rank(value+1)
}

// AccessAndRank returns the rank of value together with whether it is a
// member of the set, sharing the pair of Rank calls Contains and Rank
// would otherwise duplicate.
func AccessAndRank[R Ranker](r R, value uint64) (uint64, bool) {
	rank1, rank2 := Rank2(r, value, value+1)
	return rank1, rank1 < rank2
}

// Select0 finds the index-th element of the complement of the set via
// binary search over Rank0. It is the standard default; a given
// structure may offer a faster specialization (e.g. a symmetric sample
// index) but this is always correct.
func Select0[R Ranker](r R, index uint64) uint64 {
	var first uint64
	count := r.Size()
	for count > 0 {
		step := count / 2
		x := first + step
		if Rank0(r, x) <= index {
			first = x + 1
			count -= step + 1
		} else {
			count = step
		}
	}
	return first - 1
}
