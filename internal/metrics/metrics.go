// Package metrics defines the Prometheus collectors for the soundpost daemon.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "soundpost"

var (
	// synthesisDuration is a histogram of upstream synthesis call duration.
	synthesisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "synthesis_duration_seconds",
			Help:      "Duration of upstream synthesis calls in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "voice"},
	)

	// synthesisTotal is a counter of synthesis calls.
	synthesisTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synthesis_requests_total",
			Help:      "Total number of upstream synthesis calls",
		},
		[]string{"provider", "voice", "status"}, // status: success, error
	)

	// synthesisBytes is a histogram of synthesized audio sizes.
	synthesisBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "synthesis_audio_bytes",
			Help:      "Size of synthesized audio payloads in bytes",
			Buckets:   prometheus.ExponentialBuckets(4096, 4, 8),
		},
	)

	// playbackTotal is a counter of local playback attempts.
	playbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "playback_requests_total",
			Help:      "Total number of local playback attempts",
		},
		[]string{"status"}, // status: success, error
	)

	// allMetrics is a list of all metrics for registration.
	allMetrics = []prometheus.Collector{
		synthesisDuration,
		synthesisTotal,
		synthesisBytes,
		playbackTotal,
	}
)

// Registry builds a registry holding the soundpost collectors plus the Go
// runtime and process collectors.
func Registry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	for _, collector := range allMetrics {
		reg.MustRegister(collector)
	}
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// RecordSynthesis records one upstream synthesis call.
func RecordSynthesis(provider, voice string, err error, duration time.Duration, audioBytes int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	synthesisTotal.WithLabelValues(provider, voice, status).Inc()
	synthesisDuration.WithLabelValues(provider, voice).Observe(duration.Seconds())
	if err == nil && audioBytes > 0 {
		synthesisBytes.Observe(float64(audioBytes))
	}
}

// RecordPlayback records one local playback attempt.
func RecordPlayback(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	playbackTotal.WithLabelValues(status).Inc()
}
