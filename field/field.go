// Package field implements arithmetic in the binary extension fields
// GF(2^32), GF(2^40) and GF(2^48) used by the Banquet proof system.
//
// A Field is an explicit, immutable context selected by the security
// parameter λ (the element byte size). Elements are plain values of type
// Elem; they carry no width tag, so all elements combined in one operation
// must come from the same Field.
package field

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"banquet-field/internal/clmul"
)

// Elem is a GF(2^(8λ)) element. Bit i is the coefficient of x^i. Values
// produced by a Field are always fully reduced.
type Elem uint64

const (
	Zero Elem = 0
	One  Elem = 1
)

// DefaultLambda selects GF(2^32), the field of the L1 parameter sets.
const DefaultLambda = 4

// Width tags the reduction variant of a field.
type Width int

const (
	Width32 Width = 32
	Width40 Width = 40
	Width48 Width = 48
)

// Field describes GF(2)[x]/(P(x)) for one of the supported pentanomials P.
type Field struct {
	lambda   int
	width    Width
	byteSize int
	mask     uint64
	modulus  uint64
	mul      clmul.Multiplier
	lift     [256]Elem
}

// New returns the field for λ ∈ {4, 5, 6} using the fastest carry-less
// multiplication backend available on this CPU.
func New(lambda int) (*Field, error) {
	return newField(lambda, clmul.Detect())
}

// NewWithBackend is New with an explicit carry-less multiplication backend
// ("portable", "pclmulqdq" or "auto"). Results are identical for every backend.
func NewWithBackend(lambda int, backend string) (*Field, error) {
	m, err := clmul.ByName(backend)
	if err != nil {
		return nil, err
	}
	return newField(lambda, m)
}

func newField(lambda int, m clmul.Multiplier) (*Field, error) {
	f := &Field{lambda: lambda, mul: m}
	switch lambda {
	case 4:
		f.width, f.modulus = Width32, modulus32
	case 5:
		f.width, f.modulus = Width40, modulus40
	case 6:
		f.width, f.modulus = Width48, modulus48
	default:
		return nil, fmt.Errorf("%w: lambda=%d", ErrUnsupportedFieldSize, lambda)
	}
	f.byteSize = lambda
	f.mask = 1<<uint(f.width) - 1
	f.initLifting()
	return f, nil
}

// Lambda returns the security parameter λ the field was built for.
func (f *Field) Lambda() int { return f.lambda }

// ByteSize returns the encoded size of one element.
func (f *Field) ByteSize() int { return f.byteSize }

// Bits returns the extension degree n of GF(2^n).
func (f *Field) Bits() int { return int(f.width) }

// Width returns the reduction variant tag.
func (f *Field) Width() Width { return f.width }

// Modulus returns the irreducible modulus with its x^n term set.
func (f *Field) Modulus() uint64 { return f.modulus }

// Backend names the carry-less multiplication backend in use.
func (f *Field) Backend() string { return f.mul.Name() }

// FromUint64 returns the element whose coefficient bits are v.
func (f *Field) FromUint64(v uint64) (Elem, error) {
	if v&^f.mask != 0 {
		return 0, fmt.Errorf("%w: %#x exceeds %d bits", ErrOutOfRange, v, f.width)
	}
	return Elem(v), nil
}

// Monomial returns x^i for 0 <= i < Bits().
func (f *Field) Monomial(i int) (Elem, error) {
	if i < 0 || i >= int(f.width) {
		return 0, fmt.Errorf("%w: x^%d in GF(2^%d)", ErrOutOfRange, i, f.width)
	}
	return Elem(1) << uint(i), nil
}

// Add returns a + b. Subtraction is the same operation in characteristic 2.
func (f *Field) Add(a, b Elem) Elem { return a ^ b }

// Sub returns a - b.
func (f *Field) Sub(a, b Elem) Elem { return a ^ b }

// Mul returns a * b mod P.
func (f *Field) Mul(a, b Elem) Elem {
	lo, hi := f.mul.Mul(uint64(a), uint64(b))
	return f.reduce(lo, hi)
}

// Square returns a * a.
func (f *Field) Square(a Elem) Elem { return f.Mul(a, a) }

// Pow returns a^e by square-and-multiply. Pow(a, 0) is One, including for a = 0.
func (f *Field) Pow(a Elem, e uint64) Elem {
	res := One
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		res = f.Square(res)
		if (e>>uint(i))&1 == 1 {
			res = f.Mul(res, a)
		}
	}
	return res
}

// Inv returns the multiplicative inverse a^(2^n - 2).
func (f *Field) Inv(a Elem) (Elem, error) {
	if a == 0 {
		return 0, ErrNotInvertible
	}
	// t = a^(2^k - 1) for k = 1 .. n-1, then one final squaring.
	t := a
	for k := 1; k < int(f.width)-1; k++ {
		t = f.Mul(f.Square(t), a)
	}
	return f.Square(t), nil
}

// Div returns a / b.
func (f *Field) Div(a, b Elem) (Elem, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

// Bytes encodes a as ByteSize() little-endian bytes.
func (f *Field) Bytes(a Elem) []byte {
	out := make([]byte, f.byteSize)
	f.PutBytes(out, a)
	return out
}

// PutBytes writes the ByteSize()-byte encoding of a into dst, which must be
// at least that long.
func (f *Field) PutBytes(dst []byte, a Elem) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(a))
	copy(dst[:f.byteSize], buf[:f.byteSize])
}

// FromBytes decodes exactly ByteSize() little-endian bytes.
func (f *Field) FromBytes(b []byte) (Elem, error) {
	if len(b) != f.byteSize {
		return 0, fmt.Errorf("%w: got %d bytes want %d", ErrInvalidEncoding, len(b), f.byteSize)
	}
	var buf [8]byte
	copy(buf[:], b)
	return Elem(binary.LittleEndian.Uint64(buf[:])), nil
}

// FirstN returns x, x^2, ..., x^n with x the element 2. These are the
// canonical nonzero, pairwise distinct evaluation points of the protocol.
func (f *Field) FirstN(n int) []Elem {
	if n <= 0 {
		return nil
	}
	out := make([]Elem, n)
	x := Elem(2)
	gen := x
	for i := range out {
		out[i] = gen
		gen = f.Mul(gen, x)
	}
	return out
}

// String formats an element as a fixed-width hex string.
func (a Elem) String() string {
	return fmt.Sprintf("%#012x", uint64(a))
}
