package oracle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/ransel/pkg/bitvec"
)

type miniRNG struct{ x uint64 }

func (r *miniRNG) next() uint64 {
	r.x = r.x*2862933555777941757 + 3037000493
	return r.x
}

func sortedDedupRandom(seed uint64, k int, mask uint64) []uint64 {
	rng := &miniRNG{x: seed}
	seen := make(map[uint64]bool)
	var xs []uint64
	for i := 0; i < k; i++ {
		x := (rng.next() ^ (rng.next() << 32) ^ (rng.next() >> 32)) & mask
		if !seen[x] {
			seen[x] = true
			xs = append(xs, x)
		}
	}
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	return xs
}

func TestSortedRank(t *testing.T) {
	xs := sortedDedupRandom(0xfbdb8b2bcc6674b9, 1024, 1<<20-1)
	s := NewSorted(xs)
	for i, x := range xs {
		assert.Equal(t, uint64(i), s.Rank(x))
		assert.True(t, s.Contains(x))
		rank, ok := s.AccessAndRank(x)
		assert.Equal(t, uint64(i), rank)
		assert.True(t, ok)
	}
}

func hexBits(xs []uint64) *bitvec.BitVec {
	b := bitvec.New()
	for _, x := range xs {
		for i := 0; i < 64; i++ {
			b.Push((x & 1) == 1)
			x >>= 1
		}
	}
	return b
}

func TestNaiveDenseLiteral(t *testing.T) {
	dat := []uint64{
		0x634b9340deec8469, 0x84eb72e372e6a42f, 0x887223eead889e46, 0x60e42e378e9549c8,
		0x86aaf4f00e8c7b16, 0x0ece3ae2b0fc440c, 0xcb1e4df954f381be, 0xb90b639ce82a8329,
	}
	bits := hexBits(dat)
	nd := NewNaiveDense(bits)
	assert.Equal(t, uint64(248), nd.Count())
	assert.Equal(t, uint64(512), nd.Size())

	var count uint64
	var ones []uint64
	for i := uint64(0); i < 512; i++ {
		assert.Equal(t, count, nd.Rank(i))
		if bits.Get(int(i)) {
			count++
			ones = append(ones, i)
		}
	}
	require.Len(t, ones, 248)
	for i, x := range ones {
		assert.Equal(t, x, nd.Select(uint64(i)))
	}
}

func TestNaiveSparseRank(t *testing.T) {
	xs := sortedDedupRandom(0xfbdb8b2bcc6674b9, 1024, 1<<20-1)
	ns, err := NewNaiveSparse(20, xs)
	require.NoError(t, err)
	for i, x := range xs {
		assert.Equal(t, uint64(i), ns.Rank(x))
		assert.True(t, ns.Contains(x))
		rank, ok := ns.AccessAndRank(x)
		assert.Equal(t, uint64(i), rank)
		assert.True(t, ok)
	}
}

func TestNaiveSparseSaveLoad(t *testing.T) {
	xs := sortedDedupRandom(0x12345, 256, 1<<20-1)
	ns, err := NewNaiveSparse(20, xs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ns.Save(&buf))
	loaded, err := Load(&buf)
	require.NoError(t, err)

	for i, x := range xs {
		assert.Equal(t, uint64(i), loaded.Rank(x))
		assert.Equal(t, x, loaded.Select(uint64(i)))
	}
}

func TestNaiveSparseDomainTooSmallIsError(t *testing.T) {
	_, err := NewNaiveSparse(8, nil)
	assert.Error(t, err)
}
