// Package benchreport is the JSON report shared by the gf2ebench and
// benchplot tools.
package benchreport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// Row holds the timing distribution of one operation on one parameter set
// and backend. Durations are nanoseconds per operation.
type Row struct {
	Set     string  `json:"set"`
	Lambda  int     `json:"lambda"`
	Backend string  `json:"backend"`
	Op      string  `json:"op"`
	Size    int     `json:"size"`
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean_ns"`
	Median  float64 `json:"median_ns"`
	Std     float64 `json:"std_ns"`
	P95     float64 `json:"p95_ns"`
	Min     float64 `json:"min_ns"`
	Max     float64 `json:"max_ns"`
}

// Report is a full benchmark run.
type Report struct {
	Generated time.Time `json:"generated"`
	CPU       string    `json:"cpu"`
	Rows      []Row     `json:"rows"`
}

// Summarize fills the distribution fields of r from per-op samples in ns.
func (r *Row) Summarize(samples []float64) error {
	if len(samples) == 0 {
		return fmt.Errorf("%s/%s: no samples", r.Set, r.Op)
	}
	var err error
	r.Samples = len(samples)
	if r.Mean, err = stats.Mean(samples); err != nil {
		return err
	}
	if r.Median, err = stats.Median(samples); err != nil {
		return err
	}
	if r.Std, err = stats.StandardDeviation(samples); err != nil {
		return err
	}
	if r.P95, err = stats.Percentile(samples, 95); err != nil {
		return err
	}
	if r.Min, err = stats.Min(samples); err != nil {
		return err
	}
	r.Max, err = stats.Max(samples)
	return err
}

// Ops returns the distinct operations in first-seen order.
func (rep *Report) Ops() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rep.Rows {
		if !seen[r.Op] {
			seen[r.Op] = true
			out = append(out, r.Op)
		}
	}
	return out
}

// Backends returns the distinct backends, sorted.
func (rep *Report) Backends() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rep.Rows {
		if !seen[r.Backend] {
			seen[r.Backend] = true
			out = append(out, r.Backend)
		}
	}
	sort.Strings(out)
	return out
}

// Sets returns the distinct parameter sets in first-seen order.
func (rep *Report) Sets() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rep.Rows {
		if !seen[r.Set] {
			seen[r.Set] = true
			out = append(out, r.Set)
		}
	}
	return out
}

// Lookup returns the row for (set, backend, op).
func (rep *Report) Lookup(set, backend, op string) (Row, bool) {
	for _, r := range rep.Rows {
		if r.Set == set && r.Backend == backend && r.Op == op {
			return r, true
		}
	}
	return Row{}, false
}

// Write encodes rep as indented JSON.
func Write(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// Read decodes a report.
func Read(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}

// Save writes rep to path.
func Save(path string, rep *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a report from path.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()
	return Read(f)
}
