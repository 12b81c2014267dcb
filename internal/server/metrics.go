package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	filterDuration *prometheus.HistogramVec
	recordsLoaded  prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "capbrowse",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		filterDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "capbrowse",
			Name:      "filter_duration_seconds",
			Help:      "Time spent filtering and paginating the record set.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"field"}),
		recordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "capbrowse",
			Name:      "records_loaded",
			Help:      "Records in the loaded catalog.",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.filterDuration,
		m.recordsLoaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
