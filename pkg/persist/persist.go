// Package persist implements the length-prefixed, native-endian byte
// layout shared by every persistable structure in this module: a
// uint64 length (always written at a fixed 64-bit width, regardless of
// host pointer size) followed by that many fixed-width elements.
//
// Each width gets its own monomorphized read/write pair rather than a
// single generic/reflection-based implementation.
package persist

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteUint64 writes a single scalar in native byte order.
func WriteUint64(w io.Writer, x uint64) error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], x)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("persist: write scalar: %w", err)
	}
	return nil
}

// ReadUint64 reads a single scalar in native byte order.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("persist: read scalar: %w", err)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

func writeLength(w io.Writer, n int) error {
	return WriteUint64(w, uint64(n))
}

func readLength(r io.Reader) (int, error) {
	n, err := ReadUint64(r)
	if err != nil {
		return 0, fmt.Errorf("persist: read length: %w", err)
	}
	return int(n), nil
}

// WriteUint8s writes a length-prefixed vector of bytes.
func WriteUint8s(w io.Writer, xs []uint8) error {
	if err := writeLength(w, len(xs)); err != nil {
		return err
	}
	if _, err := w.Write(xs); err != nil {
		return fmt.Errorf("persist: write uint8 vector: %w", err)
	}
	return nil
}

// ReadUint8s reads a length-prefixed vector of bytes.
func ReadUint8s(r io.Reader) ([]uint8, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	xs := make([]uint8, n)
	if _, err := io.ReadFull(r, xs); err != nil {
		return nil, fmt.Errorf("persist: read uint8 vector: %w", err)
	}
	return xs, nil
}

// WriteUint16s writes a length-prefixed vector of uint16s.
func WriteUint16s(w io.Writer, xs []uint16) error {
	if err := writeLength(w, len(xs)); err != nil {
		return err
	}
	buf := make([]byte, 2*len(xs))
	for i, x := range xs {
		binary.NativeEndian.PutUint16(buf[2*i:], x)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("persist: write uint16 vector: %w", err)
	}
	return nil
}

// ReadUint16s reads a length-prefixed vector of uint16s.
func ReadUint16s(r io.Reader) ([]uint16, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 2*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("persist: read uint16 vector: %w", err)
	}
	xs := make([]uint16, n)
	for i := range xs {
		xs[i] = binary.NativeEndian.Uint16(buf[2*i:])
	}
	return xs, nil
}

// WriteUint32s writes a length-prefixed vector of uint32s.
func WriteUint32s(w io.Writer, xs []uint32) error {
	if err := writeLength(w, len(xs)); err != nil {
		return err
	}
	buf := make([]byte, 4*len(xs))
	for i, x := range xs {
		binary.NativeEndian.PutUint32(buf[4*i:], x)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("persist: write uint32 vector: %w", err)
	}
	return nil
}

// ReadUint32s reads a length-prefixed vector of uint32s.
func ReadUint32s(r io.Reader) ([]uint32, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("persist: read uint32 vector: %w", err)
	}
	xs := make([]uint32, n)
	for i := range xs {
		xs[i] = binary.NativeEndian.Uint32(buf[4*i:])
	}
	return xs, nil
}

// WriteUint64s writes a length-prefixed vector of uint64s.
func WriteUint64s(w io.Writer, xs []uint64) error {
	if err := writeLength(w, len(xs)); err != nil {
		return err
	}
	buf := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.NativeEndian.PutUint64(buf[8*i:], x)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("persist: write uint64 vector: %w", err)
	}
	return nil
}

// ReadUint64s reads a length-prefixed vector of uint64s.
func ReadUint64s(r io.Reader) ([]uint64, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("persist: read uint64 vector: %w", err)
	}
	xs := make([]uint64, n)
	for i := range xs {
		xs[i] = binary.NativeEndian.Uint64(buf[8*i:])
	}
	return xs, nil
}
