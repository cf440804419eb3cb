package intvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// miniRNG is a small deterministic PRNG, used the same way the original
// source's test modules use their own MiniRng: fast, reproducible,
// no external dependency for plain unit tests.
type miniRNG struct{ x uint64 }

func (r *miniRNG) next() uint64 {
	r.x = r.x*2862933555777941757 + 3037000493
	return r.x
}

func TestPushGetRandomBitPacked(t *testing.T) {
	for _, b := range []int{4, 7, 47, 63} {
		b := b
		t.Run("", func(t *testing.T) {
			iv, err := NewBitPacked(b)
			require.NoError(t, err)
			rng := &miniRNG{x: 0xfbdb8b2bcc6674b8}
			mask := uint64(1)<<uint(b) - 1
			var want []uint64
			for i := 0; i < 1000; i++ {
				v := rng.next() & mask
				want = append(want, v)
				require.NoError(t, iv.Push(v))
			}
			require.Equal(t, len(want), iv.Len())
			for i, v := range want {
				assert.Equal(t, v, iv.Get(i), "index %d width %d", i, b)
			}
		})
	}
}

func TestPushGetRandomBucketed(t *testing.T) {
	for _, b := range []int{4, 7, 20, 24, 40, 48, 63, 64} {
		b := b
		t.Run("", func(t *testing.T) {
			iv, err := NewBucketed(b)
			require.NoError(t, err)
			rng := &miniRNG{x: 0xfbdb8b2bcc6674b9}
			mask := uint64(1)<<uint(b) - 1
			if b == 64 {
				mask = ^uint64(0)
			}
			var want []uint64
			for i := 0; i < 1000; i++ {
				v := rng.next() & mask
				want = append(want, v)
				require.NoError(t, iv.Push(v))
			}
			for i, v := range want {
				assert.Equal(t, v, iv.Get(i), "index %d width %d", i, b)
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	iv, err := NewBitPacked(10)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, iv.Push(uint64(i)))
	}
	require.NoError(t, iv.Set(2, 777))
	assert.Equal(t, uint64(777), iv.Get(2))
}

func TestPushValueTooWideIsError(t *testing.T) {
	iv, err := NewBitPacked(4)
	require.NoError(t, err)
	assert.Error(t, iv.Push(16))
	assert.NoError(t, iv.Push(15))
}

func TestBadWidthIsError(t *testing.T) {
	_, err := NewBitPacked(65)
	assert.Error(t, err)
	_, err = NewBucketed(65)
	assert.Error(t, err)
}

func TestBucketedRoundTrip(t *testing.T) {
	for _, b := range []int{4, 16, 24, 32, 48, 64} {
		iv, err := NewBucketed(b)
		require.NoError(t, err)
		mask := uint64(1)<<uint(b) - 1
		if b == 64 {
			mask = ^uint64(0)
		}
		rng := &miniRNG{x: 0x12345 + uint64(b)}
		var want []uint64
		for i := 0; i < 50; i++ {
			v := rng.next() & mask
			want = append(want, v)
			require.NoError(t, iv.Push(v))
		}

		var buf bytes.Buffer
		require.NoError(t, SaveBucketed(&buf, iv))
		loaded, err := LoadBucketed(&buf)
		require.NoError(t, err)
		require.Equal(t, iv.Len(), loaded.Len())
		for i, v := range want {
			assert.Equal(t, v, loaded.Get(i))
		}
	}
}

func TestBitPackedAndBucketedAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.IntRange(1, 63).Draw(t, "b")
		n := rapid.IntRange(0, 64).Draw(t, "n")
		mask := uint64(1)<<uint(b) - 1

		bp, err := NewBitPacked(b)
		require.NoError(t, err)
		bk, err := NewBucketed(b)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			v := rapid.Uint64().Draw(t, "v") & mask
			require.NoError(t, bp.Push(v))
			require.NoError(t, bk.Push(v))
		}
		for i := 0; i < n; i++ {
			require.Equal(t, bp.Get(i), bk.Get(i))
		}
	})
}
