package field

// Irreducible pentanomials, x^n term included.
const (
	modulus32 = 1<<32 | 1<<7 | 1<<3 | 1<<2 | 1 // x^32 + x^7 + x^3 + x^2 + 1
	modulus40 = 1<<40 | 1<<5 | 1<<4 | 1<<3 | 1 // x^40 + x^5 + x^4 + x^3 + 1
	modulus48 = 1<<48 | 1<<5 | 1<<3 | 1<<2 | 1 // x^48 + x^5 + x^3 + x^2 + 1
)

// Barrett constants. For these pentanomials the low part of P has degree
// below n/2, so the quotient estimate floor(H*P / x^n) only misses terms that
// the second fold absorbs, and mu can be P itself.
const (
	mu32 = modulus32
	mu40 = modulus40
	mu48 = modulus48
)

const (
	mask32 = 1<<32 - 1
	mask40 = 1<<40 - 1
	mask48 = 1<<48 - 1
)

// reduce maps a double-width carry-less product (or an XOR of several) to
// its residue modulo P. Inputs must have degree < 2n - 1.
func (f *Field) reduce(lo, hi uint64) Elem {
	switch f.width {
	case Width32:
		return f.reduce32(lo)
	case Width40:
		return f.reduce40(lo, hi)
	default:
		return f.reduce48(lo, hi)
	}
}

// reduce32 handles products of degree <= 62, which fit entirely in lo.
func (f *Field) reduce32(lo uint64) Elem {
	t1, _ := f.mul.Mul(lo>>32, mu32)
	t2, _ := f.mul.Mul(t1>>32, modulus32)
	return Elem((lo ^ t2) & mask32)
}

func (f *Field) reduce40(lo, hi uint64) Elem {
	const upper = 0xFFFF
	h := (hi&upper)<<24 | lo>>40
	t1Lo, t1Hi := f.mul.Mul(h, mu40)
	q := (t1Hi&upper)<<24 | t1Lo>>40
	t2, _ := f.mul.Mul(q, modulus40)
	return Elem((lo ^ t2) & mask40)
}

func (f *Field) reduce48(lo, hi uint64) Elem {
	const upper = 0xFFFFFFFF
	h := (hi&upper)<<16 | lo>>48
	t1Lo, t1Hi := f.mul.Mul(h, mu48)
	q := (t1Hi&upper)<<16 | t1Lo>>48
	t2, _ := f.mul.Mul(q, modulus48)
	return Elem((lo ^ t2) & mask48)
}
