package field

// Images of the GF(2^8) generator x (AES modulus x^8 + x^4 + x^3 + x + 1)
// under the fixed ring morphisms into the proof fields.
const (
	// y^30 + y^23 + y^21 + y^18 + y^14 + y^13 + y^11 + y^9 + y^7 + y^6 + y^5 + y^4 + y^3 + y
	liftGenerator32 = 0x40a46afa
	// y^31 + y^30 + y^27 + y^25 + y^22 + y^21 + y^20 + y^18 + y^15 + y^9 + y^6 + y^4 + y^2
	liftGenerator40 = 0xca748254
	// y^45 + y^43 + y^40 + y^37 + y^36 + y^35 + y^34 + y^33 + y^31 + y^30 + y^29 + y^28 +
	// y^24 + y^21 + y^20 + y^19 + y^16 + y^14 + y^13 + y^11 + y^10 + y^7 + y^3 + y^2
	liftGenerator48 = 0x293ef1396c8c
)

// LiftGenerator returns the image of the AES field generator in f.
func (f *Field) LiftGenerator() Elem {
	switch f.width {
	case Width32:
		return liftGenerator32
	case Width40:
		return liftGenerator40
	default:
		return liftGenerator48
	}
}

// initLifting fills the table by doubling: the upper half of each block of
// 2^k entries is the lower half plus gen^k. The result is additive,
// lift(a ^ b) == lift(a) + lift(b).
func (f *Field) initLifting() {
	gen := f.LiftGenerator()
	f.lift[0] = Zero
	f.lift[1] = One
	pow := gen
	for bit := 1; bit < 8; bit++ {
		start := 1 << uint(bit)
		for i := 0; i < start; i++ {
			f.lift[start+i] = f.lift[i] ^ pow
		}
		pow = f.Mul(pow, gen)
	}
}

// Lift embeds an AES byte into the field. The map is a ring homomorphism:
// Lift(a)*Lift(b) equals Lift of the GF(2^8) product of a and b.
func (f *Field) Lift(b byte) Elem {
	return f.lift[b]
}

// LiftBytes lifts every byte of src.
func (f *Field) LiftBytes(src []byte) []Elem {
	out := make([]Elem, len(src))
	for i, b := range src {
		out[i] = f.lift[b]
	}
	return out
}
