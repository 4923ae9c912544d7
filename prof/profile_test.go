package prof

import (
	"testing"
	"time"
)

func TestTrackSnapshot(t *testing.T) {
	SnapshotAndReset()
	Track(time.Now().Add(-time.Millisecond), "a")
	Track(time.Now(), "b")
	got := SnapshotAndReset()
	if len(got) != 2 || got[0].Label != "a" || got[1].Label != "b" {
		t.Fatalf("entries=%v", got)
	}
	if got[0].Dur < time.Millisecond {
		t.Fatalf("duration %v below 1ms", got[0].Dur)
	}
	if rest := SnapshotAndReset(); len(rest) != 0 {
		t.Fatalf("not reset: %v", rest)
	}
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{"interp", 2 * time.Microsecond},
		{"lagrange", 10 * time.Microsecond},
		{"interp", 4 * time.Microsecond},
	}
	sums := Summarize(entries)
	if len(sums) != 2 {
		t.Fatalf("summaries=%v", sums)
	}
	if sums[0].Label != "lagrange" || sums[0].Count != 1 {
		t.Fatalf("first=%+v", sums[0])
	}
	s := sums[1]
	if s.Label != "interp" || s.Count != 2 || s.Total != 6*time.Microsecond || s.Max != 4*time.Microsecond {
		t.Fatalf("interp=%+v", s)
	}
	if s.Mean() != 3*time.Microsecond || (Summary{}).Mean() != 0 {
		t.Fatalf("mean=%v", s.Mean())
	}
}
