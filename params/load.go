package params

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// LoadInstances decodes a JSON array of parameter sets and validates each.
func LoadInstances(r io.Reader) ([]Instance, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var ps []Instance
	if err := dec.Decode(&ps); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range ps {
		if err := ps[i].Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return ps, nil
}

// LoadInstancesFromFile opens path and decodes it with LoadInstances.
func LoadInstancesFromFile(path string) ([]Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open params file: %w", err)
	}
	defer f.Close()
	return LoadInstances(f)
}

// LoadDefaultInstances loads banquet_params.json from the params package directory.
func LoadDefaultInstances() ([]Instance, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("runtime.Caller failed")
	}
	return LoadInstancesFromFile(filepath.Join(filepath.Dir(file), "banquet_params.json"))
}

// WriteInstances encodes ps as an indented JSON array.
func WriteInstances(w io.Writer, ps []Instance) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ps)
}
