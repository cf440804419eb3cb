package intvec

import (
	"fmt"
	"io"

	"github.com/xflash-panda/ransel/pkg/persist"
)

// BucketWidth returns the smallest of {8,16,24,32,48,64} that covers b
// bits, or an error if b is out of range.
func BucketWidth(b int) (int, error) {
	if err := checkWidth(b); err != nil {
		return 0, err
	}
	switch {
	case b <= 8:
		return 8, nil
	case b <= 16:
		return 16, nil
	case b <= 24:
		return 24, nil
	case b <= 32:
		return 32, nil
	case b <= 48:
		return 48, nil
	default:
		return 64, nil
	}
}

// NewBucketed returns a width-bucketed IntVec for values fitting in b
// bits, backed by one of six storage shapes keyed by the smallest of
// {8,16,24,32,48,64} that covers b. Push and Set check values against
// the bucket width (Width()), not against b: a value wider than b bits
// that still fits the bucket is accepted.
func NewBucketed(b int) (IntVec, error) {
	width, err := BucketWidth(b)
	if err != nil {
		return nil, err
	}
	switch width {
	case 8:
		return &u8Vec{}, nil
	case 16:
		return &u16Vec{}, nil
	case 24:
		return &u24Vec{}, nil
	case 32:
		return &u32Vec{}, nil
	case 48:
		return &u48Vec{}, nil
	default:
		return &u64Vec{}, nil
	}
}

type u8Vec struct{ xs []uint8 }

func (v *u8Vec) Len() int     { return len(v.xs) }
func (v *u8Vec) Width() int   { return 8 }
func (v *u8Vec) Get(i int) uint64 { return uint64(v.xs[i]) }

func (v *u8Vec) Push(x uint64) error {
	if err := checkFits(x, 8); err != nil {
		return err
	}
	v.xs = append(v.xs, uint8(x))
	return nil
}

func (v *u8Vec) Set(i int, x uint64) error {
	if err := checkFits(x, 8); err != nil {
		return err
	}
	v.xs[i] = uint8(x)
	return nil
}

type u16Vec struct{ xs []uint16 }

func (v *u16Vec) Len() int     { return len(v.xs) }
func (v *u16Vec) Width() int   { return 16 }
func (v *u16Vec) Get(i int) uint64 { return uint64(v.xs[i]) }

func (v *u16Vec) Push(x uint64) error {
	if err := checkFits(x, 16); err != nil {
		return err
	}
	v.xs = append(v.xs, uint16(x))
	return nil
}

func (v *u16Vec) Set(i int, x uint64) error {
	if err := checkFits(x, 16); err != nil {
		return err
	}
	v.xs[i] = uint16(x)
	return nil
}

// u24Vec splits each 24-bit value into a high byte and a low halfword,
// stored in separate slices so no byte of padding is wasted per entry.
type u24Vec struct {
	hi []uint8
	lo []uint16
}

func (v *u24Vec) Len() int   { return len(v.hi) }
func (v *u24Vec) Width() int { return 24 }

func (v *u24Vec) Get(i int) uint64 {
	return uint64(v.hi[i])<<16 | uint64(v.lo[i])
}

func (v *u24Vec) Push(x uint64) error {
	if err := checkFits(x, 24); err != nil {
		return err
	}
	v.hi = append(v.hi, uint8(x>>16))
	v.lo = append(v.lo, uint16(x))
	return nil
}

func (v *u24Vec) Set(i int, x uint64) error {
	if err := checkFits(x, 24); err != nil {
		return err
	}
	v.hi[i] = uint8(x >> 16)
	v.lo[i] = uint16(x)
	return nil
}

type u32Vec struct{ xs []uint32 }

func (v *u32Vec) Len() int     { return len(v.xs) }
func (v *u32Vec) Width() int   { return 32 }
func (v *u32Vec) Get(i int) uint64 { return uint64(v.xs[i]) }

func (v *u32Vec) Push(x uint64) error {
	if err := checkFits(x, 32); err != nil {
		return err
	}
	v.xs = append(v.xs, uint32(x))
	return nil
}

func (v *u32Vec) Set(i int, x uint64) error {
	if err := checkFits(x, 32); err != nil {
		return err
	}
	v.xs[i] = uint32(x)
	return nil
}

// u48Vec splits each 48-bit value into a high halfword and a low word,
// stored in separate slices so no byte of padding is wasted per entry.
type u48Vec struct {
	hi []uint16
	lo []uint32
}

func (v *u48Vec) Len() int   { return len(v.hi) }
func (v *u48Vec) Width() int { return 48 }

func (v *u48Vec) Get(i int) uint64 {
	return uint64(v.hi[i])<<32 | uint64(v.lo[i])
}

func (v *u48Vec) Push(x uint64) error {
	if err := checkFits(x, 48); err != nil {
		return err
	}
	v.hi = append(v.hi, uint16(x>>32))
	v.lo = append(v.lo, uint32(x))
	return nil
}

func (v *u48Vec) Set(i int, x uint64) error {
	if err := checkFits(x, 48); err != nil {
		return err
	}
	v.hi[i] = uint16(x >> 32)
	v.lo[i] = uint32(x)
	return nil
}

type u64Vec struct{ xs []uint64 }

func (v *u64Vec) Len() int     { return len(v.xs) }
func (v *u64Vec) Width() int   { return 64 }
func (v *u64Vec) Get(i int) uint64 { return v.xs[i] }

func (v *u64Vec) Push(x uint64) error {
	v.xs = append(v.xs, x)
	return nil
}

func (v *u64Vec) Set(i int, x uint64) error {
	v.xs[i] = x
	return nil
}

// SaveBucketed writes a bucketed IntVec as a tag giving the bucket
// width, then one vector (widths 8/16/32/64) or two vectors (24:
// hi-byte then lo-halfword; 48: hi-halfword then lo-word).
func SaveBucketed(w io.Writer, v IntVec) error {
	tag := v.Width()
	if err := persist.WriteUint64(w, uint64(tag)); err != nil {
		return err
	}
	switch x := v.(type) {
	case *u8Vec:
		return persist.WriteUint8s(w, x.xs)
	case *u16Vec:
		return persist.WriteUint16s(w, x.xs)
	case *u24Vec:
		if err := persist.WriteUint8s(w, x.hi); err != nil {
			return err
		}
		return persist.WriteUint16s(w, x.lo)
	case *u32Vec:
		return persist.WriteUint32s(w, x.xs)
	case *u48Vec:
		if err := persist.WriteUint16s(w, x.hi); err != nil {
			return err
		}
		return persist.WriteUint32s(w, x.lo)
	case *u64Vec:
		return persist.WriteUint64s(w, x.xs)
	default:
		return fmt.Errorf("intvec: cannot save unknown IntVec implementation %T", v)
	}
}

// LoadBucketed reads a bucketed IntVec written by SaveBucketed.
func LoadBucketed(r io.Reader) (IntVec, error) {
	tag64, err := persist.ReadUint64(r)
	if err != nil {
		return nil, fmt.Errorf("intvec: read tag: %w", err)
	}
	switch tag64 {
	case 8:
		xs, err := persist.ReadUint8s(r)
		if err != nil {
			return nil, err
		}
		return &u8Vec{xs: xs}, nil
	case 16:
		xs, err := persist.ReadUint16s(r)
		if err != nil {
			return nil, err
		}
		return &u16Vec{xs: xs}, nil
	case 24:
		hi, err := persist.ReadUint8s(r)
		if err != nil {
			return nil, err
		}
		lo, err := persist.ReadUint16s(r)
		if err != nil {
			return nil, err
		}
		if len(hi) != len(lo) {
			return nil, fmt.Errorf("intvec: u24 hi/lo length mismatch: %d != %d", len(hi), len(lo))
		}
		return &u24Vec{hi: hi, lo: lo}, nil
	case 32:
		xs, err := persist.ReadUint32s(r)
		if err != nil {
			return nil, err
		}
		return &u32Vec{xs: xs}, nil
	case 48:
		hi, err := persist.ReadUint16s(r)
		if err != nil {
			return nil, err
		}
		lo, err := persist.ReadUint32s(r)
		if err != nil {
			return nil, err
		}
		if len(hi) != len(lo) {
			return nil, fmt.Errorf("intvec: u48 hi/lo length mismatch: %d != %d", len(hi), len(lo))
		}
		return &u48Vec{hi: hi, lo: lo}, nil
	case 64:
		xs, err := persist.ReadUint64s(r)
		if err != nil {
			return nil, err
		}
		return &u64Vec{xs: xs}, nil
	default:
		return nil, fmt.Errorf("intvec: unknown width tag %d", tag64)
	}
}
