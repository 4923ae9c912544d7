// Package poly provides dense univariate polynomials over a field.Field and
// Lagrange interpolation on fixed point sets.
//
// A polynomial is a []field.Elem where index i holds the coefficient of X^i.
// Results are freshly allocated and never alias their inputs.
package poly

import (
	"errors"

	"banquet-field/field"
)

var (
	// ErrInvalidInterpolationSet reports duplicate interpolation points.
	ErrInvalidInterpolationSet = errors.New("poly: invalid interpolation set")
	// ErrInvalidSizes reports empty or inconsistently sized interpolation input.
	ErrInvalidSizes = errors.New("poly: invalid sizes")
)

// FromRoots returns the monic polynomial Π (X - r) over the given roots, of
// length len(roots)+1. Repeated roots are allowed. No roots yields the
// constant 1.
func FromRoots(f *field.Field, roots []field.Elem) []field.Elem {
	out := make([]field.Elem, len(roots)+1)
	out[0] = field.One
	for k, r := range roots {
		// multiply the degree-k prefix by (X - r), highest coefficient first
		out[k+1] = out[k]
		for j := k; j > 0; j-- {
			out[j] = f.Sub(out[j-1], f.Mul(r, out[j]))
		}
		out[0] = f.Mul(r, out[0])
	}
	return out
}

// Eval evaluates p at x by Horner's rule. The empty polynomial is zero.
func Eval(f *field.Field, p []field.Elem, x field.Elem) field.Elem {
	acc := field.Zero
	for i := len(p) - 1; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), p[i])
	}
	return acc
}

// EvalMany evaluates p at every point of xs.
func EvalMany(f *field.Field, p, xs []field.Elem) []field.Elem {
	out := make([]field.Elem, len(xs))
	for i, x := range xs {
		out[i] = Eval(f, p, x)
	}
	return out
}

// Mul returns the schoolbook product of a and b, of length len(a)+len(b)-1.
// Trailing zero coefficients are kept. If either input is empty the result
// is empty.
func Mul(f *field.Field, a, b []field.Elem) []field.Elem {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]field.Elem, len(a)+len(b)-1)
	acc := f.NewAccumulator()
	for k := range out {
		acc.Reset()
		lo := 0
		if k >= len(b) {
			lo = k - len(b) + 1
		}
		for i := lo; i < len(a) && i <= k; i++ {
			acc.MulAdd(a[i], b[k-i])
		}
		out[k] = acc.Reduce()
	}
	return out
}

// Add returns a + b. The result has the length of the longer input.
func Add(a, b []field.Elem) []field.Elem {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]field.Elem, len(a))
	copy(out, a)
	for i := range b {
		out[i] ^= b[i]
	}
	return out
}

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func Degree(p []field.Elem) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != field.Zero {
			return i
		}
	}
	return -1
}
