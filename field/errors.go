package field

import "errors"

var (
	// ErrUnsupportedFieldSize is returned for λ outside {4, 5, 6}.
	ErrUnsupportedFieldSize = errors.New("field: unsupported field size")
	// ErrSizeMismatch is returned by vector operations on sequences of differing lengths.
	ErrSizeMismatch = errors.New("field: size mismatch")
	// ErrNotInvertible is returned when inverting zero.
	ErrNotInvertible = errors.New("field: element not invertible")
	// ErrOutOfRange is returned for raw integers that do not fit the active field width.
	ErrOutOfRange = errors.New("field: value out of range")
	// ErrInvalidEncoding is returned for byte buffers of the wrong length.
	ErrInvalidEncoding = errors.New("field: invalid encoding")
)
