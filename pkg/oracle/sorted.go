// Package oracle implements reference set representations used only as
// test oracles: Sorted (a bare sorted slice, rank by binary search),
// NaiveDense (an un-indexed bit vector, linear-scan rank), and
// NaiveSparse (a sorted slice with a fixed-bucket table of contents).
// None of these are meant for production use. Each one deliberately
// gives up the O(1)/near-O(1) bounds the indexed structures provide in
// exchange for being obviously correct, so property tests can check the
// fast structures against them.
package oracle

import "github.com/xflash-panda/ransel/pkg/ranksel"

// Sorted is a set backed directly by a sorted, deduplicated slice.
type Sorted struct {
	elements []uint64
}

// NewSorted builds a Sorted oracle from elements, which must already be
// sorted in strictly increasing order.
func NewSorted(elements []uint64) *Sorted {
	return &Sorted{elements: append([]uint64(nil), elements...)}
}

func (s *Sorted) Count() uint64 { return uint64(len(s.elements)) }

func (s *Sorted) Size() uint64 {
	if len(s.elements) == 0 {
		return 0
	}
	return s.elements[len(s.elements)-1] + 1
}

func (s *Sorted) Rank(value uint64) uint64 {
	if value >= s.Size() {
		return s.Count()
	}
	var first uint64
	count := s.Count()
	for count > 0 {
		step := count / 2
		i := first + step
		if s.elements[i] < value {
			first = i + 1
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

func (s *Sorted) Select(index uint64) uint64 { return s.elements[index] }

func (s *Sorted) Rank0(value uint64) uint64                 { return ranksel.Rank0(s, value) }
func (s *Sorted) Rank1(value uint64) uint64                 { return s.Rank(value) }
func (s *Sorted) Rank2(v1, v2 uint64) (uint64, uint64)      { return ranksel.Rank2(s, v1, v2) }
func (s *Sorted) Contains(value uint64) bool                { return ranksel.Contains(s, value) }
func (s *Sorted) AccessAndRank(value uint64) (uint64, bool) { return ranksel.AccessAndRank(s, value) }
func (s *Sorted) Select0(index uint64) uint64               { return ranksel.Select0(s, index) }
