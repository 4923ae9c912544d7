// Package params holds the Banquet parameter sets and derives the field and
// interpolation domains each one uses.
package params

import (
	"errors"
	"fmt"
	"sort"

	"banquet-field/field"
	"banquet-field/poly"
)

// ErrInvalidParameterSet is returned for unknown or inconsistent parameter sets.
var ErrInvalidParameterSet = errors.New("params: invalid parameter set")

// ID names a parameter set.
type ID string

const (
	L1Param1  ID = "L1-Param1"
	L1Param2  ID = "L1-Param2"
	L1Param3  ID = "L1-Param3"
	L1Param4  ID = "L1-Param4"
	L1Param5  ID = "L1-Param5"
	L1Param6  ID = "L1-Param6"
	L1Param7  ID = "L1-Param7"
	L1Param8  ID = "L1-Param8"
	L1Param9  ID = "L1-Param9"
	L1Param10 ID = "L1-Param10"
	L3Param1  ID = "L3-Param1"
	L5Param1  ID = "L5-Param1"
)

// AES describes the AES instance whose evaluation is proven.
type AES struct {
	KeySize   int `json:"key_size"`
	BlockSize int `json:"block_size"`
	NumBlocks int `json:"num_blocks"`
	NumSboxes int `json:"num_sboxes"`
}

var (
	aes128 = AES{KeySize: 16, BlockSize: 16, NumBlocks: 1, NumSboxes: 200}
	aes192 = AES{KeySize: 24, BlockSize: 16, NumBlocks: 2, NumSboxes: 416}
	aes256 = AES{KeySize: 32, BlockSize: 16, NumBlocks: 2, NumSboxes: 500}
)

// Instance is one Banquet parameter set. Only Lambda is interpreted by the
// field engine; m1 and m2 size the interpolation domains.
type Instance struct {
	Name       ID  `json:"name"`
	AES        AES `json:"aes"`
	DigestSize int `json:"digest_size"`
	SeedSize   int `json:"seed_size"`
	T          int `json:"num_rounds"`  // parallel repetitions
	N          int `json:"num_parties"` // MPC parties
	M1         int `json:"m1"`
	M2         int `json:"m2"`
	Lambda     int `json:"lambda"` // field byte size
}

var instances = map[ID]Instance{
	L1Param1:  {L1Param1, aes128, 32, 16, 31, 64, 10, 20, 4},
	L1Param2:  {L1Param2, aes128, 32, 16, 31, 64, 20, 10, 4},
	L1Param3:  {L1Param3, aes128, 32, 16, 29, 64, 10, 20, 5},
	L1Param4:  {L1Param4, aes128, 32, 16, 27, 64, 10, 20, 6},
	L1Param5:  {L1Param5, aes128, 32, 16, 28, 128, 10, 20, 4},
	L1Param6:  {L1Param6, aes128, 32, 16, 26, 128, 10, 20, 5},
	L1Param7:  {L1Param7, aes128, 32, 16, 24, 128, 10, 20, 6},
	L1Param8:  {L1Param8, aes128, 32, 16, 25, 256, 10, 20, 4},
	L1Param9:  {L1Param9, aes128, 32, 16, 23, 256, 10, 20, 5},
	L1Param10: {L1Param10, aes128, 32, 16, 21, 256, 10, 20, 6},
	L3Param1:  {L3Param1, aes192, 48, 24, 38, 64, 16, 26, 4},
	L5Param1:  {L5Param1, aes256, 64, 32, 50, 64, 20, 25, 4},
}

// Get returns the named parameter set.
func Get(id ID) (Instance, error) {
	p, ok := instances[id]
	if !ok {
		return Instance{}, fmt.Errorf("%w: unknown name %q", ErrInvalidParameterSet, id)
	}
	return p, nil
}

// All returns every built-in parameter set ordered by security level then
// set number.
func All() []Instance {
	out := make([]Instance, 0, len(instances))
	for _, p := range instances {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

func (p Instance) less(q Instance) bool {
	if p.AES.KeySize != q.AES.KeySize {
		return p.AES.KeySize < q.AES.KeySize
	}
	if len(p.Name) != len(q.Name) {
		return len(p.Name) < len(q.Name)
	}
	return p.Name < q.Name
}

// Validate performs basic consistency checks on the parameter set.
func (p *Instance) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil instance", ErrInvalidParameterSet)
	}
	switch p.Lambda {
	case 4, 5, 6:
	default:
		return fmt.Errorf("%w: %s: lambda=%d not in {4,5,6}", ErrInvalidParameterSet, p.Name, p.Lambda)
	}
	if p.DigestSize <= 0 || p.SeedSize <= 0 {
		return fmt.Errorf("%w: %s: digest/seed size must be >0", ErrInvalidParameterSet, p.Name)
	}
	if p.T <= 0 || p.N <= 1 {
		return fmt.Errorf("%w: %s: need T>0 and N>1, got T=%d N=%d", ErrInvalidParameterSet, p.Name, p.T, p.N)
	}
	a := p.AES
	if a.KeySize <= 0 || a.BlockSize <= 0 || a.NumBlocks <= 0 || a.NumSboxes <= 0 {
		return fmt.Errorf("%w: %s: AES sizes must be >0", ErrInvalidParameterSet, p.Name)
	}
	if p.M1 <= 0 || p.M2 <= 0 {
		return fmt.Errorf("%w: %s: m1/m2 must be >0", ErrInvalidParameterSet, p.Name)
	}
	if p.M1*p.M2 != a.NumSboxes {
		return fmt.Errorf("%w: %s: m1*m2=%d want num_sboxes=%d", ErrInvalidParameterSet, p.Name, p.M1*p.M2, a.NumSboxes)
	}
	return nil
}

// Field returns the extension field selected by the set's λ.
func (p *Instance) Field() (*field.Field, error) {
	return field.New(p.Lambda)
}

// DomainSizes returns the sizes of the two interpolation domains: m2+1 points
// for the S-box input/output polynomials and 2*m2+1 for their product.
func (p *Instance) DomainSizes() (small, large int) {
	return p.M2 + 1, 2*p.M2 + 1
}

// Domains builds both interpolation domains over the first field elements.
func (p *Instance) Domains(f *field.Field) (small, large *poly.Domain, err error) {
	if f.Lambda() != p.Lambda {
		return nil, nil, fmt.Errorf("%w: %s: field λ=%d, set needs λ=%d", ErrInvalidParameterSet, p.Name, f.Lambda(), p.Lambda)
	}
	ns, nl := p.DomainSizes()
	if small, err = poly.NewStandardDomain(f, ns); err != nil {
		return nil, nil, fmt.Errorf("%s: small domain: %w", p.Name, err)
	}
	if large, err = poly.NewStandardDomain(f, nl); err != nil {
		return nil, nil, fmt.Errorf("%s: large domain: %w", p.Name, err)
	}
	return small, large, nil
}
