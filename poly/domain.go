package poly

import (
	"fmt"

	"banquet-field/field"
)

// Domain is a fixed set of interpolation points with its Lagrange basis.
// It is read-only after construction and safe for concurrent use.
type Domain struct {
	f      *field.Field
	points []field.Elem
	basis  [][]field.Elem
}

// NewDomain precomputes the Lagrange basis for points.
func NewDomain(f *field.Field, points []field.Elem) (*Domain, error) {
	basis, err := PrecomputeLagrange(f, points)
	if err != nil {
		return nil, err
	}
	pts := make([]field.Elem, len(points))
	copy(pts, points)
	return &Domain{f: f, points: pts, basis: basis}, nil
}

// NewStandardDomain builds the domain over the first n field elements
// (X, X^2, ..., X^n), the point sets used by the proof protocol.
func NewStandardDomain(f *field.Field, n int) (*Domain, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: domain size %d", ErrInvalidSizes, n)
	}
	return NewDomain(f, f.FirstN(n))
}

// Size returns the number of points.
func (d *Domain) Size() int { return len(d.points) }

// Field returns the field the domain lives in.
func (d *Domain) Field() *field.Field { return d.f }

// Points returns a copy of the interpolation points.
func (d *Domain) Points() []field.Elem {
	out := make([]field.Elem, len(d.points))
	copy(out, d.points)
	return out
}

// Basis returns the k-th Lagrange basis polynomial. The caller must not
// modify it.
func (d *Domain) Basis(k int) []field.Elem { return d.basis[k] }

// Interpolate returns the polynomial through (points[k], ys[k]).
func (d *Domain) Interpolate(ys []field.Elem) ([]field.Elem, error) {
	return Interpolate(d.f, d.basis, ys)
}

// Evaluate returns p evaluated at every point of the domain.
func (d *Domain) Evaluate(p []field.Elem) []field.Elem {
	return EvalMany(d.f, p, d.points)
}
