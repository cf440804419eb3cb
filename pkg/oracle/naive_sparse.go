package oracle

import (
	"fmt"
	"io"

	"github.com/xflash-panda/ransel/pkg/persist"
	"github.com/xflash-panda/ransel/pkg/ranksel"
)

// tocBlockBits sizes the NaiveSparse table of contents: the domain
// [0, 2^b) is split into 1<<tocBlockBits buckets of 2^(b-tocBlockBits)
// values each.
const tocBlockBits = 10

// NaiveSparse is a sorted-slice set accelerated by a fixed-bucket table
// of contents, trading Sorted's full binary search for a binary search
// confined to one bucket.
type NaiveSparse struct {
	b        uint
	elements []uint64
	toc      []uint64
}

// NewNaiveSparse builds a NaiveSparse over domain [0, 2^b) from a sorted,
// deduplicated slice of elements. b must exceed tocBlockBits.
func NewNaiveSparse(b uint, elements []uint64) (*NaiveSparse, error) {
	if b <= tocBlockBits {
		return nil, fmt.Errorf("oracle: naive sparse domain width %d must exceed %d", b, tocBlockBits)
	}
	m := uint64(1) << tocBlockBits
	s := b - tocBlockBits
	toc := make([]uint64, m+1)
	for _, x := range elements {
		v := x >> s
		toc[v]++
	}
	var count uint64
	for i, c := range toc {
		toc[i] = count
		count += c
	}
	return &NaiveSparse{b: b, elements: append([]uint64(nil), elements...), toc: toc}, nil
}

func (s *NaiveSparse) Count() uint64 { return uint64(len(s.elements)) }
func (s *NaiveSparse) Size() uint64  { return uint64(1) << s.b }

func (s *NaiveSparse) Rank(value uint64) uint64 {
	if value >= s.Size() {
		return s.Count()
	}
	shift := s.b - tocBlockBits
	i := value >> shift
	first := s.toc[i]
	last := s.toc[i+1]
	count := last - first
	for count > 0 {
		step := count / 2
		j := first + step
		if s.elements[j] < value {
			first = j + 1
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

func (s *NaiveSparse) Select(index uint64) uint64 { return s.elements[index] }

func (s *NaiveSparse) Rank0(value uint64) uint64                { return ranksel.Rank0(s, value) }
func (s *NaiveSparse) Rank1(value uint64) uint64                { return s.Rank(value) }
func (s *NaiveSparse) Rank2(v1, v2 uint64) (uint64, uint64)     { return ranksel.Rank2(s, v1, v2) }
func (s *NaiveSparse) Contains(value uint64) bool               { return ranksel.Contains(s, value) }
func (s *NaiveSparse) AccessAndRank(value uint64) (uint64, bool) {
	return ranksel.AccessAndRank(s, value)
}
func (s *NaiveSparse) Select0(index uint64) uint64 { return ranksel.Select0(s, index) }

// Save writes the oracle as b, the elements vector, then the toc
// vector.
func (s *NaiveSparse) Save(w io.Writer) error {
	if err := persist.WriteUint64(w, uint64(s.b)); err != nil {
		return err
	}
	if err := persist.WriteUint64s(w, s.elements); err != nil {
		return err
	}
	return persist.WriteUint64s(w, s.toc)
}

// Load reads an oracle written by Save.
func Load(r io.Reader) (*NaiveSparse, error) {
	b, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("oracle: read b: %w", err)
	}
	elements, err := persist.ReadUint64s(r)
	if err != nil {
		return nil, fmt.Errorf("oracle: read elements: %w", err)
	}
	toc, err := persist.ReadUint64s(r)
	if err != nil {
		return nil, fmt.Errorf("oracle: read toc: %w", err)
	}
	return &NaiveSparse{b: uint(b), elements: elements, toc: toc}, nil
}
