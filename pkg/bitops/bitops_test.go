package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRank64Literal(t *testing.T) {
	w := uint64(0xdeadbeefdeadbeef)
	assert.Equal(t, 0, Rank64(w, 0))
	assert.Equal(t, 13, Rank64(w, 16))
	assert.Equal(t, 24, Rank64(w, 32))
	assert.Equal(t, 48, Rank64(w, 64))
}

func TestSelect64Literal(t *testing.T) {
	w := uint64(0xdeadbeefdeadbeef)
	assert.Equal(t, 0, Select64(w, 0))
	assert.Equal(t, 5, Select64(w, 4))
	assert.Equal(t, 63, Select64(w, 47))
}

func TestRank64Edges(t *testing.T) {
	assert.Equal(t, 0, Rank64(0, 64))
	assert.Equal(t, 64, Rank64(^uint64(0), 64))
	assert.Equal(t, 0, Rank64(^uint64(0), 0))
}

func TestRank64SelectAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Uint64().Draw(t, "w")
		count := Rank64(w, 64)
		if count == 0 {
			return
		}
		i := rapid.IntRange(0, count-1).Draw(t, "i")
		pos := Select64(w, i)
		assert.Equal(t, i, Rank64(w, uint(pos)))
		assert.Equal(t, i+1, Rank64(w, uint(pos)+1))
	})
}
