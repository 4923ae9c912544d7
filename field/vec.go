package field

import "fmt"

// AddVec returns the elementwise sum a + b.
func (f *Field) AddVec(a, b []Elem) ([]Elem, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: adding vectors of length %d and %d", ErrSizeMismatch, len(a), len(b))
	}
	out := make([]Elem, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// AddAssignVec sets dst[i] += src[i].
func (f *Field) AddAssignVec(dst, src []Elem) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: adding vectors of length %d and %d", ErrSizeMismatch, len(dst), len(src))
	}
	for i := range src {
		dst[i] ^= src[i]
	}
	return nil
}

// ScaleVec returns a copy of a with every entry multiplied by s.
func (f *Field) ScaleVec(a []Elem, s Elem) []Elem {
	out := make([]Elem, len(a))
	for i := range a {
		out[i] = f.Mul(a[i], s)
	}
	return out
}

// ScaleAssignVec multiplies every entry of a by s in place.
func (f *Field) ScaleAssignVec(a []Elem, s Elem) {
	for i := range a {
		a[i] = f.Mul(a[i], s)
	}
}

// Dot returns sum_i a[i]*b[i] with a single reduction at the end.
func (f *Field) Dot(a, b []Elem) (Elem, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: dot product of length %d and %d", ErrSizeMismatch, len(a), len(b))
	}
	acc := f.NewAccumulator()
	for i := range a {
		acc.MulAdd(a[i], b[i])
	}
	return acc.Reduce(), nil
}

// Accumulator sums unreduced double-width products. Reduction is GF(2)-linear,
// so reducing the XOR of the products equals the sum of reduced products.
type Accumulator struct {
	f      *Field
	lo, hi uint64
}

// NewAccumulator returns an empty accumulator for f.
func (f *Field) NewAccumulator() *Accumulator {
	return &Accumulator{f: f}
}

// MulAdd adds a*b to the running sum without reducing.
func (acc *Accumulator) MulAdd(a, b Elem) {
	lo, hi := acc.f.mul.Mul(uint64(a), uint64(b))
	acc.lo ^= lo
	acc.hi ^= hi
}

// Add adds an already reduced element.
func (acc *Accumulator) Add(a Elem) {
	acc.lo ^= uint64(a)
}

// Reduce returns the reduced sum. The accumulator keeps its state.
func (acc *Accumulator) Reduce() Elem {
	return acc.f.reduce(acc.lo, acc.hi)
}

// Reset clears the running sum.
func (acc *Accumulator) Reset() {
	acc.lo, acc.hi = 0, 0
}
