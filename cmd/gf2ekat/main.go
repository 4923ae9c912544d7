// Command gf2ekat prints known-answer fingerprints of the field engine for
// every supported λ and checks that all clmul backends agree on them.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zeebo/blake3"

	"banquet-field/field"
	"banquet-field/internal/clmul"
	"banquet-field/poly"
)

type kat struct {
	lambda    int
	backend   string
	liftHash  string
	chainHash string
	firstN    []field.Elem
	inv2      field.Elem
}

func main() {
	chain := flag.Int("chain", 1<<12, "length of the multiply/lift chain")
	points := flag.Int("points", 8, "number of first field elements to print")
	flag.Parse()

	backends := []string{clmul.NamePortable}
	if clmul.HasHardware() {
		backends = append(backends, clmul.NamePCLMUL)
	}

	failed := false
	for _, lambda := range []int{4, 5, 6} {
		var ref *kat
		for _, b := range backends {
			f, err := field.NewWithBackend(lambda, b)
			if err != nil {
				log.Fatalf("field λ=%d: %v", lambda, err)
			}
			k, err := compute(f, *chain, *points)
			if err != nil {
				log.Fatalf("λ=%d %s: %v", lambda, b, err)
			}
			if ref == nil {
				ref = k
				report(f, k)
				continue
			}
			if k.liftHash != ref.liftHash || k.chainHash != ref.chainHash || k.inv2 != ref.inv2 {
				log.Printf("MISMATCH λ=%d: %s disagrees with %s", lambda, b, ref.backend)
				failed = true
			}
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("backends:", backends, "agree")
}

// compute hashes the lifting table and a chain x_{i+1} = x_i^2 * lift(i) + x_i
// seeded with the lifting generator, then interpolates the first points
// through the chain as a consistency check of the polynomial layer.
func compute(f *field.Field, chain, points int) (*kat, error) {
	k := &kat{lambda: f.Lambda(), backend: f.Backend()}

	h := blake3.New()
	buf := make([]byte, f.ByteSize())
	for b := 0; b < 256; b++ {
		f.PutBytes(buf, f.Lift(byte(b)))
		h.Write(buf)
	}
	k.liftHash = hex.EncodeToString(h.Sum(nil))

	h.Reset()
	x := f.LiftGenerator()
	trace := make([]field.Elem, 0, points)
	for i := 0; i < chain; i++ {
		x = f.Add(f.Mul(f.Square(x), f.Lift(byte(i))), x)
		f.PutBytes(buf, x)
		h.Write(buf)
		if len(trace) < points {
			trace = append(trace, x)
		}
	}
	k.chainHash = hex.EncodeToString(h.Sum(nil))

	k.firstN = f.FirstN(points)
	if len(trace) == len(k.firstN) && len(trace) > 0 {
		p, err := poly.InterpolatePoints(f, k.firstN, trace)
		if err != nil {
			return nil, err
		}
		for i, x := range k.firstN {
			if poly.Eval(f, p, x) != trace[i] {
				return nil, fmt.Errorf("interpolation mismatch at point %d", i)
			}
		}
	}

	inv, err := f.Inv(2)
	if err != nil {
		return nil, err
	}
	k.inv2 = inv
	return k, nil
}

func report(f *field.Field, k *kat) {
	fmt.Printf("λ=%d  GF(2^%d)  modulus=%#x  generator=%v\n", k.lambda, f.Bits(), f.Modulus(), f.LiftGenerator())
	fmt.Printf("  lift  blake3=%s\n", k.liftHash)
	fmt.Printf("  chain blake3=%s\n", k.chainHash)
	fmt.Printf("  inv(2)=%v\n", k.inv2)
	fmt.Printf("  first %d:", len(k.firstN))
	for _, x := range k.firstN {
		fmt.Printf(" %v", x)
	}
	fmt.Println()
}
