// Package metrics exposes Prometheus instrumentation for the decoding run:
// characters produced per decoder, fragment timings, memoization cache
// effectiveness, and verification outcomes. Twelve characters deserve
// observability too.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for one application run. A nil
// *Metrics is valid and turns every method into a no-op, so callers never
// need to branch on whether metrics are enabled.
type Metrics struct {
	registry *prometheus.Registry

	charactersDecoded *prometheus.CounterVec
	fragmentSeconds   *prometheus.SummaryVec
	cacheHits         prometheus.Gauge
	cacheMisses       prometheus.Gauge
	messagesVerified  prometheus.Counter
	verifyFailures    prometheus.Counter
}

// New creates a Metrics instance backed by its own registry.
//
// Returns:
//   - *Metrics: The metrics instance.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		charactersDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fancyhello_characters_decoded_total",
			Help: "Characters produced, labelled by the decoder that produced them.",
		}, []string{"decoder"}),
		fragmentSeconds: factory.NewSummaryVec(prometheus.SummaryOpts{
			Name: "fancyhello_fragment_duration_seconds",
			Help: "Wall time spent decoding each fragment.",
		}, []string{"fragment"}),
		cacheHits: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fancyhello_fibonacci_cache_hits",
			Help: "Fibonacci memoization cache hits for the run.",
		}),
		cacheMisses: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fancyhello_fibonacci_cache_misses",
			Help: "Fibonacci memoization cache misses for the run.",
		}),
		messagesVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "fancyhello_messages_verified_total",
			Help: "Messages that passed the final integrity assertion.",
		}),
		verifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fancyhello_verification_failures_total",
			Help: "Messages that failed assembly or the final assertion.",
		}),
	}
}

// Registry returns the underlying registry for serving /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncCharacter records one decoded character for the named decoder.
func (m *Metrics) IncCharacter(decoder string) {
	if m == nil {
		return
	}
	m.charactersDecoded.WithLabelValues(decoder).Inc()
}

// ObserveFragment records the wall time of one fragment decode.
func (m *Metrics) ObserveFragment(fragment string, seconds float64) {
	if m == nil {
		return
	}
	m.fragmentSeconds.WithLabelValues(fragment).Observe(seconds)
}

// SetCacheStats records the memoization cache counters.
func (m *Metrics) SetCacheStats(hits, misses uint64) {
	if m == nil {
		return
	}
	m.cacheHits.Set(float64(hits))
	m.cacheMisses.Set(float64(misses))
}

// IncVerified records a message that passed the final assertion.
func (m *Metrics) IncVerified() {
	if m == nil {
		return
	}
	m.messagesVerified.Inc()
}

// IncVerifyFailure records a failed assembly or assertion.
func (m *Metrics) IncVerifyFailure() {
	if m == nil {
		return
	}
	m.verifyFailures.Inc()
}
