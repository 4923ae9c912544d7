//go:build amd64 && !purego

package clmul

const hardwareCompiled = true

func mulAsm(a, b uint64) (lo, hi uint64)

func mulHardware(a, b uint64) (lo, hi uint64) {
	return mulAsm(a, b)
}
