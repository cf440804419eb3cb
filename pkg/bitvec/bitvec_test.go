package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushGet(t *testing.T) {
	bv := New()
	var want []bool
	for i := 0; i < 200; i++ {
		bit := i%3 == 0
		want = append(want, bit)
		bv.Push(bit)
	}
	assert.Equal(t, len(want), bv.Len())
	for i, bit := range want {
		assert.Equal(t, bit, bv.Get(i), "index %d", i)
	}
}

func TestSetOverwrites(t *testing.T) {
	bv := New()
	for i := 0; i < 10; i++ {
		bv.Push(false)
	}
	bv.Set(4, true)
	assert.True(t, bv.Get(4))
	bv.Set(4, false)
	assert.False(t, bv.Get(4))
}

func TestUnusedTailBitsAreZero(t *testing.T) {
	bv := New()
	bv.Push(true)
	// Only one bit pushed, but the backing word has 64 bits; the word
	// array itself must not have stray set bits beyond size.
	assert.Equal(t, uint64(1), bv.Words()[0])
}
