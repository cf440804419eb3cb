// Package sparse implements Sparse, an Elias–Fano encoded set: a sorted
// sequence of n values drawn from [0, 2^b) split into a unary-coded
// high-part bitmap (wrapped in a dense64.Dense64 for constant-time
// Rank/Select) and a width-bucketed low-part vector.
package sparse

import (
	"fmt"
	"io"
	"math"

	"github.com/xflash-panda/ransel/pkg/bitvec"
	"github.com/xflash-panda/ransel/pkg/dense64"
	"github.com/xflash-panda/ransel/pkg/intvec"
	"github.com/xflash-panda/ransel/pkg/persist"
	"github.com/xflash-panda/ransel/pkg/ranksel"
)

// Sparse is a set of n values over the domain [0, 2^b), stored as a
// high/low split with the high parts unary-coded in a dense64.Dense64
// and the d-bit low parts held in a width-bucketed intvec.IntVec.
type Sparse struct {
	b, n, d uint
	hi      *dense64.Dense64
	lo      intvec.IntVec
}

// chooseD computes the low-part width for a domain of 2^b values holding
// n elements: floor(log2(2^b / (1.44*n))), clamped to [0, b].
//
// The formula divides by n, which is undefined for n == 0; in that case
// d is defined to be b, which minimizes the emitted high-part bit count
// (see DESIGN.md).
func chooseD(b, n uint) uint {
	if n == 0 {
		return b
	}
	d := math.Floor(math.Log2(math.Exp2(float64(b)) / (1.44 * float64(n))))
	if d < 0 {
		return 0
	}
	if d > float64(b) {
		return b
	}
	return uint(d)
}

// New builds an Elias–Fano set over the domain [0, 2^b) from elements,
// which must be sorted in strictly increasing order. It returns an
// error if elements is unsorted or contains a duplicate, or if any
// element does not fit in b bits, or if b exceeds 63.
func New(b uint, elements []uint64) (*Sparse, error) {
	if b > 63 {
		return nil, fmt.Errorf("sparse: domain width %d exceeds 63 bits", b)
	}
	n := uint(len(elements))
	domain := uint64(1) << b
	var prev uint64
	for i, x := range elements {
		if x >= domain {
			return nil, fmt.Errorf("sparse: element %d value %d does not fit in %d bits", i, x, b)
		}
		if i > 0 && x <= prev {
			return nil, fmt.Errorf("sparse: elements must be sorted and distinct; %d at index %d is not greater than %d", x, i, prev)
		}
		prev = x
	}

	d := chooseD(b, n)
	lowMask := uint64(1)<<d - 1

	lo, err := intvec.NewBucketed(int(d))
	if err != nil {
		return nil, fmt.Errorf("sparse: %w", err)
	}

	hiBits := bitvec.New()
	var hiCursor uint64
	for _, x := range elements {
		hi := x >> d
		for hiCursor <= hi {
			hiBits.Push(true)
			hiCursor++
		}
		hiBits.Push(false)
		if err := lo.Push(x & lowMask); err != nil {
			return nil, fmt.Errorf("sparse: %w", err)
		}
	}
	buckets := uint64(1) << (b - d)
	for hiCursor < buckets {
		hiBits.Push(true)
		hiCursor++
	}
	hiBits.Push(true) // sentinel

	hi, err := dense64.New(uint64(hiBits.Len()), hiBits.Words())
	if err != nil {
		return nil, fmt.Errorf("sparse: %w", err)
	}

	return &Sparse{b: b, n: n, d: d, hi: hi, lo: lo}, nil
}

// Count returns the number of elements in the set.
func (s *Sparse) Count() uint64 { return uint64(s.n) }

// Size returns the size of the domain, 2^b. b is capped at 63, since
// 2^64 would overflow uint64 and wrap to 0, breaking every Size-based
// bounds check; callers needing the full 64-bit domain should split it
// into two Sparse sets.
func (s *Sparse) Size() uint64 { return uint64(1) << s.b }

// Rank returns the number of elements strictly less than value.
func (s *Sparse) Rank(value uint64) uint64 {
	if value >= s.Size() {
		return s.Count()
	}
	hi := value >> s.d
	lo := value & (uint64(1)<<s.d - 1)

	r0 := s.hi.Select(hi) - hi
	r1 := s.hi.Select(hi+1) - (hi + 1)

	r := r0
	for r < r1 && s.lo.Get(int(r)) < lo {
		r++
	}
	return r
}

// Rank2 computes the ranks of two domain elements. When both fall in
// the same high-value bucket, the pair of Select lookups bracketing
// that bucket is shared between them; otherwise it falls back to two
// independent Rank calls.
func (s *Sparse) Rank2(value1, value2 uint64) (uint64, uint64) {
	if value1 >= s.Size() || value2 >= s.Size() || value1>>s.d != value2>>s.d {
		return s.Rank(value1), s.Rank(value2)
	}

	hi := value1 >> s.d
	lo1 := value1 & (uint64(1)<<s.d - 1)
	lo2 := value2 & (uint64(1)<<s.d - 1)

	r0 := s.hi.Select(hi) - hi
	r1 := s.hi.Select(hi+1) - (hi + 1)

	r := r0
	for r < r1 && s.lo.Get(int(r)) < lo1 {
		r++
	}
	rank1 := r
	for r < r1 && s.lo.Get(int(r)) < lo2 {
		r++
	}
	return rank1, r
}

// Select returns the index-th smallest element. The caller must ensure
// index < Count().
func (s *Sparse) Select(index uint64) uint64 {
	z := s.hi.Select0(index)
	hi := s.hi.Rank(z) - 1
	return hi<<s.d | s.lo.Get(int(index))
}

// Rank0 returns the rank of value in the complement of the set.
func (s *Sparse) Rank0(value uint64) uint64 {
	return ranksel.Rank0(s, value)
}

// Rank1 is an alias for Rank.
func (s *Sparse) Rank1(value uint64) uint64 {
	return s.Rank(value)
}

// Contains reports whether value is a member of the set.
func (s *Sparse) Contains(value uint64) bool {
	return ranksel.Contains(s, value)
}

// AccessAndRank returns Rank(value) together with whether value is a
// member of the set.
func (s *Sparse) AccessAndRank(value uint64) (uint64, bool) {
	return ranksel.AccessAndRank(s, value)
}

// Select0 returns the index-th smallest element *not* in the set, via
// the standard binary-search default.
func (s *Sparse) Select0(index uint64) uint64 {
	return ranksel.Select0(s, index)
}

// Save writes the set as b, n, d, then the high-part Dense64 and the
// low-part bucketed IntVec.
func (s *Sparse) Save(w io.Writer) error {
	if err := persist.WriteUint64(w, uint64(s.b)); err != nil {
		return err
	}
	if err := persist.WriteUint64(w, uint64(s.n)); err != nil {
		return err
	}
	if err := persist.WriteUint64(w, uint64(s.d)); err != nil {
		return err
	}
	if err := s.hi.Save(w); err != nil {
		return err
	}
	return intvec.SaveBucketed(w, s.lo)
}

// Load reads a set written by Save.
func Load(r io.Reader) (*Sparse, error) {
	b, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("sparse: read b: %w", err)
	}
	n, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("sparse: read n: %w", err)
	}
	d, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("sparse: read d: %w", err)
	}
	hi, err := dense64.Load(r)
	if err != nil {
		return nil, fmt.Errorf("sparse: read hi: %w", err)
	}
	lo, err := intvec.LoadBucketed(r)
	if err != nil {
		return nil, fmt.Errorf("sparse: read lo: %w", err)
	}
	if lo.Len() != int(n) {
		return nil, fmt.Errorf("sparse: lo length %d does not match n %d", lo.Len(), n)
	}
	return &Sparse{b: uint(b), n: uint(n), d: uint(d), hi: hi, lo: lo}, nil
}
