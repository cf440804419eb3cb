package oracle

import (
	"github.com/xflash-panda/ransel/pkg/bitops"
	"github.com/xflash-panda/ransel/pkg/bitvec"
	"github.com/xflash-panda/ransel/pkg/ranksel"
)

// NaiveDense is a dense set backed by a plain, un-indexed bit vector:
// Rank and Select both fall back to a linear scan over words.
type NaiveDense struct {
	bits     *bitvec.BitVec
	bitCount uint64
}

// NewNaiveDense wraps bits as a set, counting its one-bits up front.
func NewNaiveDense(bits *bitvec.BitVec) *NaiveDense {
	words := bits.Words()
	var count uint64
	for _, w := range words {
		count += uint64(bitops.Rank64(w, 64))
	}
	return &NaiveDense{bits: bits, bitCount: count}
}

func (d *NaiveDense) Size() uint64  { return uint64(d.bits.Len()) }
func (d *NaiveDense) Count() uint64 { return d.bitCount }

func (d *NaiveDense) Rank(value uint64) uint64 {
	words := d.bits.Words()
	n := uint64(len(words))
	w := value / 64
	if w >= n {
		return d.Count()
	}
	var cumulative uint64
	for i := uint64(0); i < w; i++ {
		cumulative += uint64(bitops.Rank64(words[i], 64))
	}
	return cumulative + uint64(bitops.Rank64(words[w], uint(value%64)))
}

func (d *NaiveDense) Select(index uint64) uint64 {
	words := d.bits.Words()
	var cumulative uint64
	for i, w := range words {
		c := uint64(bitops.Rank64(w, 64))
		if cumulative+c > index {
			j := index - cumulative
			p := bitops.Select64(w, int(j))
			return 64*uint64(i) + uint64(p)
		}
		cumulative += c
	}
	panic("oracle: select index out of range")
}

func (d *NaiveDense) Rank0(value uint64) uint64            { return ranksel.Rank0(d, value) }
func (d *NaiveDense) Rank1(value uint64) uint64            { return d.Rank(value) }
func (d *NaiveDense) Rank2(v1, v2 uint64) (uint64, uint64)  { return ranksel.Rank2(d, v1, v2) }
func (d *NaiveDense) Contains(value uint64) bool            { return ranksel.Contains(d, value) }
func (d *NaiveDense) AccessAndRank(value uint64) (uint64, bool) {
	return ranksel.AccessAndRank(d, value)
}
func (d *NaiveDense) Select0(index uint64) uint64 { return ranksel.Select0(d, index) }
