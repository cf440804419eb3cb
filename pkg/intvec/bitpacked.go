package intvec

// bitPacked stores n values of width b in a single []uint64 word array,
// entries laid out least-significant-bit-first; an entry may straddle
// two words. This generalizes bitvec.BitVec's single-bit packing to an
// arbitrary width, and exists as a space/speed alternative to the
// width-bucketed realization. It is not part of the persisted Sparse
// format.
type bitPacked struct {
	width int
	n     int
	words []uint64
}

// NewBitPacked returns a bit-packed IntVec for values fitting in b bits.
func NewBitPacked(b int) (IntVec, error) {
	if err := checkWidth(b); err != nil {
		return nil, err
	}
	return &bitPacked{width: b}, nil
}

func (v *bitPacked) Len() int   { return v.n }
func (v *bitPacked) Width() int { return v.width }

func (v *bitPacked) wordsNeeded(n int) int {
	bits := n * v.width
	return (bits + 63) / 64
}

func (v *bitPacked) Get(index int) uint64 {
	if v.width == 0 {
		return 0
	}
	bitPos := index * v.width
	w := bitPos >> 6
	b := uint(bitPos & 63)
	lo := v.words[w] >> b

	if b+uint(v.width) <= 64 {
		return lo & mask(v.width)
	}
	// Straddles into the next word.
	hiBits := b + uint(v.width) - 64
	hi := v.words[w+1] & mask(int(hiBits))
	return (hi << (64 - b)) | lo
}

func (v *bitPacked) Set(index int, x uint64) error {
	if err := checkFits(x, v.width); err != nil {
		return err
	}
	v.set(index, x)
	return nil
}

func (v *bitPacked) set(index int, x uint64) {
	if v.width == 0 {
		return
	}
	bitPos := index * v.width
	w := bitPos >> 6
	b := uint(bitPos & 63)

	m := mask(v.width)
	v.words[w] &^= m << b
	v.words[w] |= (x & m) << b

	if b+uint(v.width) > 64 {
		hiBits := b + uint(v.width) - 64
		hiMask := mask(int(hiBits))
		v.words[w+1] &^= hiMask
		v.words[w+1] |= (x >> (64 - b)) & hiMask
	}
}

func (v *bitPacked) Push(x uint64) error {
	if err := checkFits(x, v.width); err != nil {
		return err
	}
	index := v.n
	v.n++
	for len(v.words) < v.wordsNeeded(v.n) {
		v.words = append(v.words, 0)
	}
	v.set(index, x)
	return nil
}

func mask(bits int) uint64 {
	if bits <= 0 {
		return 0
	}
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits) - 1
}
