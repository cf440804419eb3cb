// Package parens implements the balanced-parentheses navigation
// operations built on top of a Ranker: a bit sequence where a set bit
// is an open paren and a clear bit is a close paren, expressed as free
// functions over a small capability interface.
package parens

import "github.com/xflash-panda/ransel/pkg/ranksel"

// RankAccesser is the capability a balanced-parentheses sequence needs:
// Rank plus the combined access/rank query every concrete set type in
// this module already exposes.
type RankAccesser interface {
	ranksel.Ranker
	AccessAndRank(value uint64) (uint64, bool)
}

// Valid reports whether the sequence is a well-formed balanced-paren
// string: exactly as many opens as closes, and the running excess never
// goes negative.
func Valid[R RankAccesser](r R) bool {
	if 2*r.Count() != r.Size() {
		return false
	}
	for i := uint64(0); i < r.Size(); i++ {
		rank, _ := r.AccessAndRank(i)
		if 2*rank < i {
			return false
		}
	}
	return true
}

// Excess returns 2*Rank(value) - value, the running open/close balance
// at position value. Well-defined (non-negative) for any position in a
// Valid sequence.
func Excess[R RankAccesser](r R, value uint64) uint64 {
	return 2*r.Rank(value) - value
}

// FwdSearch scans forward from i+1 for the first position whose excess
// equals excess(i)+d, returning false if none exists before Size().
func FwdSearch[R RankAccesser](r R, i uint64, d int64) (uint64, bool) {
	target := int64(Excess(r, i)) + d
	for j := i + 1; j < r.Size(); j++ {
		if int64(Excess(r, j)) == target {
			return j, true
		}
	}
	return 0, false
}

// BwdSearch scans backward from i-1 for the first position whose excess
// equals excess(i)+d, returning false if none exists before 0.
func BwdSearch[R RankAccesser](r R, i uint64, d int64) (uint64, bool) {
	target := int64(Excess(r, i)) + d
	j := i
	for j > 0 {
		j--
		if int64(Excess(r, j)) == target {
			return j, true
		}
	}
	return 0, false
}

// Close returns the position of the close paren matching the open paren
// at i: the first j > i after which the excess is back to excess(i).
func Close[R RankAccesser](r R, i uint64) (uint64, bool) {
	target := Excess(r, i)
	for j := i + 1; j < r.Size(); j++ {
		if Excess(r, j+1) == target {
			return j, true
		}
	}
	return 0, false
}

// Open returns the position of the open paren matching the close paren
// at i.
func Open[R RankAccesser](r R, i uint64) (uint64, bool) {
	return BwdSearch(r, i, -1)
}

// Enclose returns the position of the open paren of the innermost pair
// strictly enclosing the pair opened at i.
func Enclose[R RankAccesser](r R, i uint64) (uint64, bool) {
	return BwdSearch(r, i, -1)
}

// Parent is an alias for Enclose.
func Parent[R RankAccesser](r R, value uint64) (uint64, bool) {
	return Enclose(r, value)
}

// FirstChild returns the position immediately following value, which is
// the first child of the node opened at value whenever value itself
// opens a non-empty pair.
func FirstChild[R RankAccesser](r R, value uint64) uint64 {
	return value + 1
}
