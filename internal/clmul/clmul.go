// Package clmul provides 64x64 -> 128-bit carry-less multiplication.
//
// Two backends exist: a portable bit-sliced implementation that runs
// everywhere, and an amd64 implementation built on PCLMULQDQ. Both return
// identical results; Detect picks the fastest one the running CPU supports.
package clmul

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// Multiplier computes the full carry-less product of two 64-bit words.
type Multiplier interface {
	// Mul returns a*b over GF(2)[x] as a (lo, hi) pair of 64-bit words.
	Mul(a, b uint64) (lo, hi uint64)
	// Name identifies the backend in reports.
	Name() string
}

const (
	NamePortable = "portable"
	NamePCLMUL   = "pclmulqdq"
)

// Portable is the bit-sliced software backend.
type Portable struct{}

func (Portable) Name() string { return NamePortable }

// Mul multiplies a and b without branching on operand bits: every partial
// product is masked in, so the running time does not depend on b.
func (Portable) Mul(a, b uint64) (lo, hi uint64) {
	return mulPortable(a, b)
}

func mulPortable(a, b uint64) (lo, hi uint64) {
	for i := uint(0); i < 64; i++ {
		mask := -((b >> i) & 1)
		lo ^= (a << i) & mask
		// a >> 64 is 0 in Go, which is exactly the i == 0 case.
		hi ^= (a >> (64 - i)) & mask
	}
	return lo, hi
}

// Hardware is the PCLMULQDQ backend. Only valid when HasHardware reports true.
type Hardware struct{}

func (Hardware) Name() string { return NamePCLMUL }

func (Hardware) Mul(a, b uint64) (lo, hi uint64) {
	return mulHardware(a, b)
}

// HasHardware reports whether the PCLMULQDQ backend is compiled in and the
// CPU advertises the instruction.
func HasHardware() bool {
	return hardwareCompiled && cpuid.CPU.Supports(cpuid.CLMUL, cpuid.SSE2)
}

// Detect returns the hardware backend when available and the portable one
// otherwise.
func Detect() Multiplier {
	if HasHardware() {
		return Hardware{}
	}
	return Portable{}
}

// ByName resolves a backend by its report name. "auto" or "" is Detect.
func ByName(name string) (Multiplier, error) {
	switch name {
	case "", "auto":
		return Detect(), nil
	case NamePortable:
		return Portable{}, nil
	case NamePCLMUL:
		if !HasHardware() {
			return nil, fmt.Errorf("clmul: backend %q not supported on this CPU", name)
		}
		return Hardware{}, nil
	default:
		return nil, fmt.Errorf("clmul: unknown backend %q", name)
	}
}
