package authlink

import "testing"

func TestMetricsEnabled(t *testing.T) {
	m := newMetrics(true)

	m.Inc(MetricRequests)
	m.Inc(MetricRequests)
	m.Inc(MetricCacheHits)

	if got := m.Get(MetricRequests); got != 2 {
		t.Fatalf("requests = %d, want 2", got)
	}
	if got := m.Get(MetricCacheHits); got != 1 {
		t.Fatalf("cache hits = %d, want 1", got)
	}
	if got := m.Get(MetricCacheMisses); got != 0 {
		t.Fatalf("cache misses = %d, want 0", got)
	}

	snap := m.Snapshot()
	if snap[MetricRequests] != 2 || snap[MetricCacheHits] != 1 {
		t.Fatalf("snapshot = %v", snap)
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := newMetrics(false)
	m.Inc(MetricRequests)
	if got := m.Get(MetricRequests); got != 0 {
		t.Fatalf("disabled metrics counted: %d", got)
	}
	if snap := m.Snapshot(); len(snap) != 0 {
		t.Fatalf("disabled snapshot = %v, want empty", snap)
	}
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.Inc(MetricRequests)
	if got := m.Get(MetricRequests); got != 0 {
		t.Fatalf("nil metrics counted: %d", got)
	}
	if snap := m.Snapshot(); len(snap) != 0 {
		t.Fatalf("nil snapshot = %v, want empty", snap)
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := newMetrics(true)
	m.Inc(metricIDCount + 1)
	if got := m.Get(metricIDCount + 1); got != 0 {
		t.Fatalf("out-of-range counter = %d", got)
	}
}
