package ranksel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSet is a minimal Ranker over a sorted slice, used only to exercise
// the default algorithms in isolation from any real structure.
type fakeSet struct {
	xs []uint64
}

func (f fakeSet) Count() uint64 { return uint64(len(f.xs)) }

func (f fakeSet) Size() uint64 {
	if len(f.xs) == 0 {
		return 0
	}
	return f.xs[len(f.xs)-1] + 1
}

func (f fakeSet) Rank(value uint64) uint64 {
	lo, hi := 0, len(f.xs)
	for lo < hi {
		mid := (lo + hi) / 2
		if f.xs[mid] < value {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint64(lo)
}

func TestDefaults(t *testing.T) {
	s := fakeSet{xs: []uint64{1, 3, 4, 8}}

	assert.Equal(t, uint64(2), Rank1(s, 4))
	assert.Equal(t, uint64(2), Rank0(s, 4)) // 0,2 not present below 4 -> rank0(4)=4-2=2
	r1, r2 := Rank2(s, 3, 8)
	assert.Equal(t, uint64(1), r1)
	assert.Equal(t, uint64(3), r2)
	assert.True(t, Contains(s, 3))
	assert.False(t, Contains(s, 2))
	rank, in := AccessAndRank(s, 3)
	assert.Equal(t, uint64(1), rank)
	assert.True(t, in)

	assert.Equal(t, uint64(0), Select0(s, 0))
	assert.Equal(t, uint64(2), Select0(s, 1))
	assert.Equal(t, uint64(5), Select0(s, 2))
	assert.Equal(t, uint64(6), Select0(s, 3))
	assert.Equal(t, uint64(7), Select0(s, 4))
}
