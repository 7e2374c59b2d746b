package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess       = "success"
	resultMissingSource = "missing_source"
	resultFailure       = "failure"
)

type runMetrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	writes      *prometheus.CounterVec
	duration    prometheus.Histogram
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logoconv_conversions_total",
			Help: "Conversion runs by result.",
		}, []string{"result"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logoconv_destination_writes_total",
			Help: "Destination files written.",
		}, []string{"destination"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logoconv_conversion_duration_seconds",
			Help:    "Time spent decoding and writing both destinations.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
	}
	m.registry.MustRegister(m.conversions, m.writes, m.duration)
	return m
}

// writeTextfile dumps the registry in the node_exporter textfile format.
func (m *runMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
