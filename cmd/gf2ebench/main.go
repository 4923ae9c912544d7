// Command gf2ebench times the field engine on Banquet parameter sets and
// writes a JSON report for benchplot.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/tuneinsight/lattigo/v4/utils"

	"banquet-field/field"
	"banquet-field/internal/benchreport"
	"banquet-field/params"
	"banquet-field/poly"
	"banquet-field/prof"
	"banquet-field/sample"
)

// batch is the number of operations timed together in one sample.
const batch = 1024

type bench struct {
	set     params.Instance
	f       *field.Field
	samples int
	xs, ys  []field.Elem
}

func main() {
	setsFlag := flag.String("sets", "all", "comma-separated parameter sets, or all")
	backendsFlag := flag.String("backends", "portable,auto", "comma-separated clmul backends")
	samples := flag.Int("samples", 200, "timing samples per operation")
	seed := flag.String("seed", "gf2ebench", "PRNG key for operands")
	out := flag.String("out", "gf2e_bench.json", "output report path")
	flag.Parse()

	if *samples < 2 {
		log.Fatalf("samples must be >= 2, got %d", *samples)
	}
	sets, err := selectSets(*setsFlag)
	if err != nil {
		log.Fatalf("sets: %v", err)
	}
	rep := &benchreport.Report{Generated: time.Now().UTC(), CPU: cpuid.CPU.BrandName}
	seen := map[string]bool{}
	for _, set := range sets {
		for _, backend := range strings.Split(*backendsFlag, ",") {
			backend = strings.TrimSpace(backend)
			f, err := field.NewWithBackend(set.Lambda, backend)
			if err != nil {
				log.Fatalf("%s: %v", set.Name, err)
			}
			// the auto backend may resolve to portable; skip the repeat
			key := fmt.Sprintf("%s/%s", set.Name, f.Backend())
			if seen[key] {
				continue
			}
			seen[key] = true

			prng, err := utils.NewKeyedPRNG([]byte(*seed + "/" + string(set.Name)))
			if err != nil {
				log.Fatalf("prng: %v", err)
			}
			_, n := set.DomainSizes()
			xs, err := sample.Elements(f, prng, batch)
			if err != nil {
				log.Fatalf("operands: %v", err)
			}
			ys, err := sample.Elements(f, prng, batch)
			if err != nil {
				log.Fatalf("operands: %v", err)
			}
			b := bench{set: set, f: f, samples: *samples, xs: xs, ys: ys}
			log.Printf("[gf2ebench] %s λ=%d backend=%s", set.Name, set.Lambda, f.Backend())
			rows, err := b.run(n)
			if err != nil {
				log.Fatalf("%s: %v", set.Name, err)
			}
			rep.Rows = append(rep.Rows, rows...)
		}
	}

	for _, s := range prof.Summarize(prof.SnapshotAndReset()) {
		log.Printf("[prof] %-20s calls=%-6d total=%v mean=%v max=%v", s.Label, s.Count, s.Total, s.Mean(), s.Max)
	}
	if err := benchreport.Save(*out, rep); err != nil {
		log.Fatalf("save report: %v", err)
	}
	printTable(rep)
	fmt.Println("Report:", *out)
}

func selectSets(list string) ([]params.Instance, error) {
	if list == "" || list == "all" {
		return params.All(), nil
	}
	var out []params.Instance
	for _, name := range strings.Split(list, ",") {
		p, err := params.Get(params.ID(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (b *bench) row(op string, size int, samples []float64) (benchreport.Row, error) {
	r := benchreport.Row{
		Set:     string(b.set.Name),
		Lambda:  b.set.Lambda,
		Backend: b.f.Backend(),
		Op:      op,
		Size:    size,
	}
	return r, r.Summarize(samples)
}

// measure runs fn samples times and returns ns per op for each sample.
func (b *bench) measure(opsPerCall int, fn func() error) ([]float64, error) {
	out := make([]float64, b.samples)
	for i := range out {
		start := time.Now()
		if err := fn(); err != nil {
			return nil, err
		}
		out[i] = float64(time.Since(start).Nanoseconds()) / float64(opsPerCall)
	}
	return out, nil
}

var sink field.Elem

func (b *bench) run(domainSize int) ([]benchreport.Row, error) {
	f := b.f
	var rows []benchreport.Row
	add := func(op string, size int, samples []float64, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		r, err := b.row(op, size, samples)
		if err != nil {
			return err
		}
		rows = append(rows, r)
		return nil
	}

	s, err := b.measure(batch, func() error {
		for i := range b.xs {
			sink ^= f.Mul(b.xs[i], b.ys[i])
		}
		return nil
	})
	if err := add("mul", 1, s, err); err != nil {
		return nil, err
	}

	s, err = b.measure(1, func() error {
		v, err := f.Dot(b.xs[:domainSize], b.ys[:domainSize])
		sink ^= v
		return err
	})
	if err := add("dot", domainSize, s, err); err != nil {
		return nil, err
	}

	s, err = b.measure(batch/8, func() error {
		for i := 0; i < batch/8; i++ {
			v, err := f.Inv(b.xs[i] | 1)
			if err != nil {
				return err
			}
			sink ^= v
		}
		return nil
	})
	if err := add("inv", 1, s, err); err != nil {
		return nil, err
	}

	pts := f.FirstN(domainSize)
	var basis [][]field.Elem
	s, err = b.measure(1, func() error {
		var err error
		basis, err = poly.PrecomputeLagrange(f, pts)
		return err
	})
	if err := add("lagrange", domainSize, s, err); err != nil {
		return nil, err
	}

	s, err = b.measure(1, func() error {
		p, err := poly.Interpolate(f, basis, b.ys[:domainSize])
		if err == nil {
			sink ^= p[0]
		}
		return err
	})
	if err := add("interpolate", domainSize, s, err); err != nil {
		return nil, err
	}
	return rows, nil
}

func printTable(rep *benchreport.Report) {
	fmt.Printf("%-11s %-10s %-12s %6s %12s %12s %12s\n", "set", "backend", "op", "size", "mean(ns)", "median(ns)", "std(ns)")
	for _, r := range rep.Rows {
		fmt.Printf("%-11s %-10s %-12s %6d %12.1f %12.1f %12.1f\n", r.Set, r.Backend, r.Op, r.Size, r.Mean, r.Median, r.Std)
	}
}
