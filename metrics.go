package authlink

import "sync/atomic"

// MetricID identifies one counter in the client's in-process metrics.
type MetricID uint16

const (
	// MetricRequests counts outbound requests actually issued.
	MetricRequests MetricID = iota
	// MetricConnectionErrors counts requests normalized to
	// connection_error.
	MetricConnectionErrors
	// MetricCacheHits counts SessionInfo calls answered from the cache.
	MetricCacheHits
	// MetricCacheMisses counts cache lookups that fell through to the
	// server.
	MetricCacheMisses
	// MetricCacheWrites counts entries stored after successful responses.
	MetricCacheWrites
	// MetricCacheDeletes counts entries removed on refresh or invalidate.
	MetricCacheDeletes
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds atomic counters for the client. A nil or disabled Metrics
// is a no-op on every method.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

func newMetrics(enabled bool) *Metrics {
	return &Metrics{enabled: enabled}
}

// Inc adds one to the counter identified by id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Get returns the current value of the counter identified by id.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() map[MetricID]uint64 {
	out := make(map[MetricID]uint64, metricIDCount)
	if m == nil || !m.enabled {
		return out
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		out[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return out
}
