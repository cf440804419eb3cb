// Package intvec implements fixed-width packed integer vectors: a
// sequence of n unsigned integers each fitting in b bits (0 <= b <= 64).
//
// Two interchangeable realizations are offered behind the same IntVec
// interface: BitPacked, a single bit-packed []uint64 word array where an
// entry may straddle two words, and Bucketed, one of six storage shapes
// keyed by the smallest of {8,16,24,32,48,64} bits covering b. Bucketed
// is the form persisted as part of a Sparse set (see pkg/persist); the
// bit-packed form exists purely as a space/speed alternative.
package intvec

import "fmt"

// IntVec is a sequence of fixed-width unsigned integers supporting
// append, in-place update, and random access.
type IntVec interface {
	// Len returns the number of stored values.
	Len() int
	// Push appends v to the end of the vector. It is an error if
	// v does not fit in the vector's configured width.
	Push(v uint64) error
	// Set overwrites the value at index. It is an error if v does not
	// fit in the configured width; index must be < Len().
	Set(index int, v uint64) error
	// Get returns the value at index; index must be < Len().
	Get(index int) uint64
	// Width returns the number of bits each stored value is guaranteed
	// to fit in.
	Width() int
}

func checkWidth(b int) error {
	if b < 0 || b > 64 {
		return fmt.Errorf("intvec: width %d out of range [0, 64]", b)
	}
	return nil
}

func checkFits(v uint64, b int) error {
	if b >= 64 {
		return nil
	}
	if v>>uint(b) != 0 {
		return fmt.Errorf("intvec: value %d does not fit in %d bits", v, b)
	}
	return nil
}
