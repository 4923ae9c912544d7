// Package sample draws field elements from byte streams: a SHAKE-256 XOF for
// seed-derived values, or any io.Reader such as crypto/rand or a lattigo
// keyed PRNG.
package sample

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"banquet-field/field"
)

// maxRejections bounds DistinctPoints retries per point.
const maxRejections = 64

// NewXOF returns a SHAKE-256 stream keyed by label and parts. Every input is
// length-prefixed so distinct part lists never collide.
func NewXOF(label string, parts ...[]byte) io.Reader {
	h := sha3.NewShake256()
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(label)))
	h.Write(n[:])
	h.Write([]byte(label))
	for _, p := range parts {
		binary.LittleEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write(p)
	}
	return h
}

// Element reads one uniform element of f from r. A nil r uses crypto/rand.
// Every λ-byte string encodes a field element, so no rejection is needed.
func Element(f *field.Field, r io.Reader) (field.Elem, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, f.ByteSize())
	if _, err := io.ReadFull(r, buf); err != nil {
		return field.Zero, fmt.Errorf("sample element: %w", err)
	}
	return f.FromBytes(buf)
}

// Elements reads n uniform elements of f from r.
func Elements(f *field.Field, r io.Reader, n int) ([]field.Elem, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, n*f.ByteSize())
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("sample %d elements: %w", n, err)
	}
	out := make([]field.Elem, n)
	for i := range out {
		e, err := f.FromBytes(buf[i*f.ByteSize() : (i+1)*f.ByteSize()])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// NonZero reads uniform elements from r until one is nonzero.
func NonZero(f *field.Field, r io.Reader) (field.Elem, error) {
	for i := 0; i < maxRejections; i++ {
		e, err := Element(f, r)
		if err != nil {
			return field.Zero, err
		}
		if e != field.Zero {
			return e, nil
		}
	}
	return field.Zero, fmt.Errorf("sample nonzero: %d consecutive zero draws", maxRejections)
}

// DistinctPoints reads n pairwise distinct elements of f, suitable as
// interpolation points.
func DistinctPoints(f *field.Field, r io.Reader, n int) ([]field.Elem, error) {
	seen := make(map[field.Elem]struct{}, n)
	out := make([]field.Elem, 0, n)
	for len(out) < n {
		var e field.Elem
		var err error
		fresh := false
		for i := 0; i < maxRejections; i++ {
			if e, err = Element(f, r); err != nil {
				return nil, err
			}
			if _, dup := seen[e]; !dup {
				fresh = true
				break
			}
		}
		if !fresh {
			return nil, fmt.Errorf("sample point %d: %d consecutive duplicates", len(out), maxRejections)
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}
