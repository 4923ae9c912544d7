package field

import "sync/atomic"

var active atomic.Pointer[Field]

// Configure installs the process-wide default field for λ. Code that passes
// an explicit *Field never depends on it.
func Configure(lambda int) error {
	f, err := New(lambda)
	if err != nil {
		return err
	}
	active.Store(f)
	return nil
}

// Active returns the process-wide default field, GF(2^32) until Configure
// is called.
func Active() *Field {
	if f := active.Load(); f != nil {
		return f
	}
	f, err := New(DefaultLambda)
	if err != nil {
		panic(err)
	}
	active.CompareAndSwap(nil, f)
	return active.Load()
}
