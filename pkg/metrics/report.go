package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records instrumentation for report snapshot builds.
type ReportMetrics struct {
	buildDuration  *prometheus.HistogramVec
	sourceFallback *prometheus.CounterVec
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
}

// NewReportMetrics registers the report metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	buildDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_build_duration_seconds",
		Help:    "Duration of report snapshot builds in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"period"})
	sourceFallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_source_fallback_total",
		Help: "Report input fetches that degraded to their fallback value.",
	}, []string{"source"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Report snapshots served from cache.",
	})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_misses_total",
		Help: "Report snapshots rebuilt on cache miss.",
	})
	reg.MustRegister(buildDuration, sourceFallback, cacheHits, cacheMisses)
	return &ReportMetrics{
		buildDuration:  buildDuration,
		sourceFallback: sourceFallback,
		cacheHits:      cacheHits,
		cacheMisses:    cacheMisses,
	}
}

// ObserveBuild records the duration of one snapshot build.
func (m *ReportMetrics) ObserveBuild(period string, duration time.Duration) {
	if m == nil || m.buildDuration == nil {
		return
	}
	m.buildDuration.WithLabelValues(normalizeLabel(period)).Observe(duration.Seconds())
}

// IncSourceFallback counts a fetch that fell back to its empty value.
func (m *ReportMetrics) IncSourceFallback(source string) {
	if m == nil || m.sourceFallback == nil {
		return
	}
	m.sourceFallback.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncCacheHit counts a snapshot served from cache.
func (m *ReportMetrics) IncCacheHit() {
	if m == nil || m.cacheHits == nil {
		return
	}
	m.cacheHits.Inc()
}

// IncCacheMiss counts a snapshot rebuilt after a cache miss.
func (m *ReportMetrics) IncCacheMiss() {
	if m == nil || m.cacheMisses == nil {
		return
	}
	m.cacheMisses.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
