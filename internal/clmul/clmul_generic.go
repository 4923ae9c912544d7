//go:build !amd64 || purego

package clmul

const hardwareCompiled = false

func mulHardware(a, b uint64) (lo, hi uint64) {
	return mulPortable(a, b)
}
