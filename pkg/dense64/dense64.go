// Package dense64 implements Dense64, an indexed dense bitmap giving
// constant-time Rank and near-constant-time Select over a bit vector
// backed by 64-bit words.
//
// Adapted from a domain-matching trie's label bitmap (rank64,
// indexRank64, select32R64, indexSelect32R64) into a standalone
// general-purpose bitmap, with select samples now built via a single
// forward scan rather than a repeated binary-search-then-scan helper
// (see Select0 and the construction-time seldex builder below).
package dense64

import (
	"fmt"
	"io"

	"github.com/xflash-panda/ransel/pkg/bitops"
	"github.com/xflash-panda/ransel/pkg/persist"
	"github.com/xflash-panda/ransel/pkg/ranksel"
)

// blockBits controls the select sample rate: one seldex entry per
// 1<<blockBits one-bits.
const blockBits = 10
const blockSize = 1 << blockBits

// Dense64 is a bitmap over `size` bit positions, backed by `words`, with
// a popcount prefix-sum index (randex) for O(1) Rank and a sparse select
// sample index (seldex) bounding the word-scan in Select.
type Dense64 struct {
	size   uint64
	words  []uint64
	randex []uint32
	seldex []uint32
}

// New builds an indexed dense bitmap over the given words, logically
// truncated to size bit positions. It returns an error if the bitmap's
// total popcount would overflow the 32-bit randex/seldex entries.
func New(size uint64, words []uint64) (*Dense64, error) {
	if size > uint64(len(words))*64 {
		return nil, fmt.Errorf("dense64: size %d exceeds %d words", size, len(words))
	}

	randex := make([]uint32, len(words)+1)
	var count uint64
	for i, w := range words {
		randex[i] = uint32(count)
		count += uint64(bitops.Rank64(w, 64))
	}
	if count > 1<<32-1 {
		return nil, fmt.Errorf("dense64: total popcount %d exceeds uint32 range", count)
	}
	randex[len(words)] = uint32(count)

	seldex := buildSeldex(randex)

	return &Dense64{size: size, words: append([]uint64(nil), words...), randex: randex, seldex: seldex}, nil
}

// buildSeldex samples, for each k with k*blockSize < total popcount, the
// smallest word index w such that randex[w+1] > k*blockSize. A single
// forward walk through randex suffices, since both k*blockSize and w
// only increase as k increases.
func buildSeldex(randex []uint32) []uint32 {
	if len(randex) == 0 {
		return nil
	}
	total := randex[len(randex)-1]
	var seldex []uint32
	w := 0
	for k := uint32(0); uint64(k)*blockSize < uint64(total); k++ {
		target := k * blockSize
		for w+1 < len(randex) && randex[w+1] <= target {
			w++
		}
		seldex = append(seldex, uint32(w))
	}
	return seldex
}

// Count returns the total number of one-bits.
func (d *Dense64) Count() uint64 {
	return uint64(d.randex[len(d.randex)-1])
}

// Size returns the number of bit positions in the bitmap's domain.
func (d *Dense64) Size() uint64 {
	return d.size
}

// Rank returns the number of one-bits at positions strictly less than
// value.
func (d *Dense64) Rank(value uint64) uint64 {
	if value >= d.size {
		return d.Count()
	}
	w := value / 64
	b := uint(value % 64)
	return uint64(d.randex[w]) + uint64(bitops.Rank64(d.words[w], b))
}

// Select returns the position of the index-th one-bit. The caller must
// ensure index < Count().
func (d *Dense64) Select(index uint64) uint64 {
	i := d.seldex[index>>blockBits]
	for int(i)+1 < len(d.randex) && uint64(d.randex[i+1]) <= index {
		i++
	}
	r0 := uint64(d.randex[i])
	return 64*uint64(i) + uint64(bitops.Select64(d.words[i], int(index-r0)))
}

// Select0 returns the position of the index-th zero-bit via the
// standard binary-search default. A symmetric seldex_0 sample index
// would be a legitimate specialization, but is not needed at the scale
// this module targets, since Select0 is rare in the sparse-set use that
// drives this package.
func (d *Dense64) Select0(index uint64) uint64 {
	return ranksel.Select0(d, index)
}

// Rank0 returns the rank of value in the bitmap's complement.
func (d *Dense64) Rank0(value uint64) uint64 {
	return ranksel.Rank0(d, value)
}

// Rank1 is an alias for Rank.
func (d *Dense64) Rank1(value uint64) uint64 {
	return d.Rank(value)
}

// Rank2 computes the ranks of two domain elements.
func (d *Dense64) Rank2(value1, value2 uint64) (uint64, uint64) {
	return ranksel.Rank2(d, value1, value2)
}

// Contains reports whether value's bit is set.
func (d *Dense64) Contains(value uint64) bool {
	return ranksel.Contains(d, value)
}

// AccessAndRank returns Rank(value) together with whether value's bit
// is set.
func (d *Dense64) AccessAndRank(value uint64) (uint64, bool) {
	return ranksel.AccessAndRank(d, value)
}

// Save writes the bitmap as size, then the words, randex, and seldex
// vectors, each length-prefixed.
func (d *Dense64) Save(w io.Writer) error {
	if err := persist.WriteUint64(w, d.size); err != nil {
		return err
	}
	if err := persist.WriteUint64s(w, d.words); err != nil {
		return err
	}
	if err := persist.WriteUint32s(w, d.randex); err != nil {
		return err
	}
	return persist.WriteUint32s(w, d.seldex)
}

// Load reads a bitmap written by Save.
func Load(r io.Reader) (*Dense64, error) {
	size, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("dense64: read size: %w", err)
	}
	words, err := persist.ReadUint64s(r)
	if err != nil {
		return nil, fmt.Errorf("dense64: read words: %w", err)
	}
	randex, err := persist.ReadUint32s(r)
	if err != nil {
		return nil, fmt.Errorf("dense64: read randex: %w", err)
	}
	seldex, err := persist.ReadUint32s(r)
	if err != nil {
		return nil, fmt.Errorf("dense64: read seldex: %w", err)
	}
	if len(randex) != len(words)+1 {
		return nil, fmt.Errorf("dense64: randex length %d does not match %d words", len(randex), len(words))
	}
	return &Dense64{size: size, words: words, randex: randex, seldex: seldex}, nil
}
