package pipeline

import (
	"testing"
	"time"
)

func TestRunStatsEmpty(t *testing.T) {
	s := NewRunStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected empty snapshot, got count %d", snap.Count)
	}
}

func TestRunStatsPercentiles(t *testing.T) {
	s := NewRunStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400, 500} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected 5 samples, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Errorf("expected min 100 max 500, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Errorf("expected avg 300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Errorf("expected p50 300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Errorf("expected p95 480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Errorf("expected p99 496, got %f", snap.P99Ms)
	}
}

func TestRunStatsPrunesOldSamples(t *testing.T) {
	s := NewRunStats(50 * time.Millisecond)
	s.Record(100)
	time.Sleep(80 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected the aged-out sample pruned, got count %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected only the recent sample, got min %d", snap.MinMs)
	}
}

func TestRunStatsClampsNegativeDurations(t *testing.T) {
	s := NewRunStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap.MinMs)
	}
}
