package poly

import (
	"fmt"
	"time"

	"banquet-field/field"
	"banquet-field/prof"
)

// PrecomputeLagrange returns, for every point xs[k], the basis polynomial
// L_k with L_k(xs[k]) = 1 and L_k(xs[j]) = 0 for j != k. Each L_k has
// len(xs) coefficients.
func PrecomputeLagrange(f *field.Field, xs []field.Elem) ([][]field.Elem, error) {
	defer prof.Track(time.Now(), "PrecomputeLagrange")

	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no interpolation points", ErrInvalidSizes)
	}
	others := make([]field.Elem, 0, len(xs)-1)
	basis := make([][]field.Elem, len(xs))
	for k, xk := range xs {
		others = others[:0]
		denom := field.One
		for j, xj := range xs {
			if j == k {
				continue
			}
			others = append(others, xj)
			denom = f.Mul(denom, f.Sub(xk, xj))
		}
		inv, err := f.Inv(denom)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d (%v) repeats: %w", ErrInvalidInterpolationSet, k, xk, err)
		}
		num := FromRoots(f, others)
		f.ScaleAssignVec(num, inv)
		basis[k] = num
	}
	return basis, nil
}

// Interpolate returns Σ ys[k]·basis[k], the polynomial of degree < len(ys)
// through (x_k, ys[k]) for the points basis was computed on.
func Interpolate(f *field.Field, basis [][]field.Elem, ys []field.Elem) ([]field.Elem, error) {
	if len(ys) == 0 || len(basis) != len(ys) {
		return nil, fmt.Errorf("%w: %d basis polynomials for %d values", ErrInvalidSizes, len(basis), len(ys))
	}
	n := len(basis[0])
	for k, b := range basis {
		if len(b) != n {
			return nil, fmt.Errorf("%w: basis polynomial %d has %d coefficients, want %d", ErrInvalidSizes, k, len(b), n)
		}
	}
	out := make([]field.Elem, n)
	acc := f.NewAccumulator()
	for i := range out {
		acc.Reset()
		for k, y := range ys {
			acc.MulAdd(y, basis[k][i])
		}
		out[i] = acc.Reduce()
	}
	return out, nil
}

// InterpolatePoints precomputes the basis for xs and interpolates ys in one
// call. Use a Domain when the same points are reused.
func InterpolatePoints(f *field.Field, xs, ys []field.Elem) ([]field.Elem, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d points for %d values", ErrInvalidSizes, len(xs), len(ys))
	}
	basis, err := PrecomputeLagrange(f, xs)
	if err != nil {
		return nil, err
	}
	return Interpolate(f, basis, ys)
}
