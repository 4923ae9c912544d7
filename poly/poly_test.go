package poly

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"

	"banquet-field/field"
)

func fields(t testing.TB) []*field.Field {
	t.Helper()
	var out []*field.Field
	for _, lambda := range []int{4, 5, 6} {
		f, err := field.New(lambda)
		if err != nil {
			t.Fatalf("field.New(%d): %v", lambda, err)
		}
		out = append(out, f)
	}
	return out
}

func randElems(t testing.TB, f *field.Field, seed string, n int) []field.Elem {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(seed))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	mask := uint64(1)<<uint(f.Bits()) - 1
	buf := make([]byte, 8)
	out := make([]field.Elem, n)
	for i := range out {
		if _, err := io.ReadFull(prng, buf); err != nil {
			t.Fatalf("prng read: %v", err)
		}
		out[i] = field.Elem(binary.LittleEndian.Uint64(buf) & mask)
	}
	return out
}

func equal(a, b []field.Elem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromRootsVanishes(t *testing.T) {
	for _, f := range fields(t) {
		for _, k := range []int{1, 2, 5, 21} {
			roots := randElems(t, f, "roots", k)
			p := FromRoots(f, roots)
			if len(p) != k+1 {
				t.Fatalf("λ=%d: len=%d want %d", f.Lambda(), len(p), k+1)
			}
			if p[k] != field.One {
				t.Fatalf("λ=%d: leading coefficient %v", f.Lambda(), p[k])
			}
			for _, r := range roots {
				if v := Eval(f, p, r); v != field.Zero {
					t.Fatalf("λ=%d: p(%v)=%v", f.Lambda(), r, v)
				}
			}
		}
	}
}

func TestFromRootsSmall(t *testing.T) {
	f, _ := field.New(4)
	if p := FromRoots(f, nil); !equal(p, []field.Elem{1}) {
		t.Fatalf("no roots: %v", p)
	}
	// (X + 2)(X + 4) = X^2 + 6X + 8
	if p := FromRoots(f, []field.Elem{2, 4}); !equal(p, []field.Elem{8, 6, 1}) {
		t.Fatalf("roots {2,4}: %v", p)
	}
	// a repeated root squares the factor: (X + 3)^2 = X^2 + 5
	if p := FromRoots(f, []field.Elem{3, 3}); !equal(p, []field.Elem{5, 0, 1}) {
		t.Fatalf("roots {3,3}: %v", p)
	}
}

func TestFromRootsMatchesMul(t *testing.T) {
	for _, f := range fields(t) {
		roots := randElems(t, f, "factor", 8)
		want := []field.Elem{field.One}
		for _, r := range roots {
			want = Mul(f, want, []field.Elem{r, field.One})
		}
		if got := FromRoots(f, roots); !equal(got, want) {
			t.Fatalf("λ=%d: FromRoots=%v want %v", f.Lambda(), got, want)
		}
	}
}

func TestEval(t *testing.T) {
	f, _ := field.New(5)
	if Eval(f, nil, 7) != field.Zero {
		t.Fatalf("empty polynomial is not zero")
	}
	// 1 + X + X^2 at X = 2 is 1 ^ 2 ^ 4
	if v := Eval(f, []field.Elem{1, 1, 1}, 2); v != 7 {
		t.Fatalf("eval=%v want 7", v)
	}
	p := randElems(t, f, "eval-p", 9)
	x := randElems(t, f, "eval-x", 1)[0]
	want, pow := field.Zero, field.One
	for _, c := range p {
		want = f.Add(want, f.Mul(c, pow))
		pow = f.Mul(pow, x)
	}
	if got := Eval(f, p, x); got != want {
		t.Fatalf("Horner=%v want %v", got, want)
	}
	if got := EvalMany(f, p, []field.Elem{x, x}); got[0] != want || got[1] != want {
		t.Fatalf("EvalMany=%v", got)
	}
}

func TestMulLength(t *testing.T) {
	for _, f := range fields(t) {
		a := randElems(t, f, "mul-a", 4)
		b := randElems(t, f, "mul-b", 7)
		b[6] = field.Zero
		c := Mul(f, a, b)
		if len(c) != len(a)+len(b)-1 {
			t.Fatalf("λ=%d: len=%d want %d", f.Lambda(), len(c), len(a)+len(b)-1)
		}
		x := randElems(t, f, "mul-x", 1)[0]
		if Eval(f, c, x) != f.Mul(Eval(f, a, x), Eval(f, b, x)) {
			t.Fatalf("λ=%d: product does not evaluate to product", f.Lambda())
		}
		if !equal(Mul(f, a, b), Mul(f, b, a)) {
			t.Fatalf("λ=%d: Mul not commutative", f.Lambda())
		}
	}
	f, _ := field.New(4)
	if Mul(f, nil, []field.Elem{1}) != nil {
		t.Fatalf("empty operand should give empty product")
	}
}

func TestAddDegree(t *testing.T) {
	a := []field.Elem{1, 2, 3}
	b := []field.Elem{1, 2}
	s := Add(a, b)
	if !equal(s, []field.Elem{0, 0, 3}) {
		t.Fatalf("Add=%v", s)
	}
	if Degree(s) != 2 || Degree([]field.Elem{0, 0}) != -1 || Degree(nil) != -1 {
		t.Fatalf("Degree wrong")
	}
	if !equal(Add(b, a), s) {
		t.Fatalf("Add not symmetric")
	}
}

func TestLagrangeBasis(t *testing.T) {
	for _, f := range fields(t) {
		xs := f.FirstN(6)
		basis, err := PrecomputeLagrange(f, xs)
		if err != nil {
			t.Fatalf("PrecomputeLagrange: %v", err)
		}
		for k, l := range basis {
			if len(l) != len(xs) {
				t.Fatalf("λ=%d: basis %d has %d coefficients", f.Lambda(), k, len(l))
			}
			for j, x := range xs {
				want := field.Zero
				if j == k {
					want = field.One
				}
				if v := Eval(f, l, x); v != want {
					t.Fatalf("λ=%d: L_%d(x_%d)=%v want %v", f.Lambda(), k, j, v, want)
				}
			}
		}
	}
}

func TestInterpolate(t *testing.T) {
	for _, f := range fields(t) {
		for _, m := range []int{1, 2, 11, 21, 41} {
			xs := randElems(t, f, "interp-x", m)
			ys := randElems(t, f, "interp-y", m)
			p, err := InterpolatePoints(f, xs, ys)
			if err != nil {
				t.Fatalf("λ=%d m=%d: %v", f.Lambda(), m, err)
			}
			if len(p) != m {
				t.Fatalf("λ=%d: len=%d want %d", f.Lambda(), len(p), m)
			}
			for k := range xs {
				if v := Eval(f, p, xs[k]); v != ys[k] {
					t.Fatalf("λ=%d m=%d: p(x_%d)=%v want %v", f.Lambda(), m, k, v, ys[k])
				}
			}
		}
	}
}

func TestInterpolateRecoversPolynomial(t *testing.T) {
	f, _ := field.New(6)
	want := randElems(t, f, "recover", 8)
	d, err := NewStandardDomain(f, len(want))
	if err != nil {
		t.Fatalf("NewStandardDomain: %v", err)
	}
	got, err := d.Interpolate(d.Evaluate(want))
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !equal(got, want) {
		t.Fatalf("recovered %v want %v", got, want)
	}
}

func TestLagrangeDuplicatePoints(t *testing.T) {
	f, _ := field.New(4)
	_, err := PrecomputeLagrange(f, []field.Elem{2, 4, 2})
	if !errors.Is(err, ErrInvalidInterpolationSet) {
		t.Fatalf("err=%v want ErrInvalidInterpolationSet", err)
	}
	if !errors.Is(err, field.ErrNotInvertible) {
		t.Fatalf("err=%v should wrap field.ErrNotInvertible", err)
	}
	if _, err := NewDomain(f, []field.Elem{5, 5}); !errors.Is(err, ErrInvalidInterpolationSet) {
		t.Fatalf("NewDomain err=%v", err)
	}
}

func TestInterpolateSizeErrors(t *testing.T) {
	f, _ := field.New(4)
	basis, err := PrecomputeLagrange(f, f.FirstN(3))
	if err != nil {
		t.Fatalf("PrecomputeLagrange: %v", err)
	}
	cases := []struct {
		name  string
		basis [][]field.Elem
		ys    []field.Elem
	}{
		{"empty values", basis[:0], nil},
		{"too few values", basis, []field.Elem{1, 2}},
		{"too many values", basis, []field.Elem{1, 2, 3, 4}},
		{"ragged basis", [][]field.Elem{{1, 2}, {1}}, []field.Elem{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Interpolate(f, tc.basis, tc.ys); !errors.Is(err, ErrInvalidSizes) {
				t.Fatalf("err=%v want ErrInvalidSizes", err)
			}
		})
	}
	if _, err := PrecomputeLagrange(f, nil); !errors.Is(err, ErrInvalidSizes) {
		t.Fatalf("no points: err=%v", err)
	}
	if _, err := InterpolatePoints(f, f.FirstN(2), []field.Elem{1}); !errors.Is(err, ErrInvalidSizes) {
		t.Fatalf("InterpolatePoints err=%v", err)
	}
	if _, err := NewStandardDomain(f, 0); !errors.Is(err, ErrInvalidSizes) {
		t.Fatalf("NewStandardDomain(0) err=%v", err)
	}
}

func TestDomainAccessors(t *testing.T) {
	f, _ := field.New(4)
	d, err := NewStandardDomain(f, 3)
	if err != nil {
		t.Fatal(err)
	}
	pts := d.Points()
	if d.Size() != 3 || !equal(pts, []field.Elem{2, 4, 8}) || d.Field() != f {
		t.Fatalf("domain %v size %d", pts, d.Size())
	}
	pts[0] = 99
	if d.Points()[0] != 2 {
		t.Fatalf("Points leaked internal slice")
	}
	if v := Eval(f, d.Basis(1), 4); v != field.One {
		t.Fatalf("L_1(4)=%v", v)
	}
}

func BenchmarkPrecomputeLagrange(b *testing.B) {
	f, _ := field.New(field.DefaultLambda)
	xs := f.FirstN(41)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PrecomputeLagrange(f, xs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolate(b *testing.B) {
	f, _ := field.New(field.DefaultLambda)
	d, err := NewStandardDomain(f, 41)
	if err != nil {
		b.Fatal(err)
	}
	ys := randElems(b, f, "bench", 41)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Interpolate(ys); err != nil {
			b.Fatal(err)
		}
	}
}
