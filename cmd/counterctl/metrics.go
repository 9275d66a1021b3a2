package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labkit/go-counter/ks53230"
)

// serveMetrics exposes the driver's atomic metrics as prometheus counters.
func serveMetrics(addr string, m *ks53230.Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "counter_commands_sent_total",
			Help: "Number of commands written to the device.",
		}, func() float64 { return float64(m.CmdSendCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "counter_queries_sent_total",
			Help: "Number of queries sent to the device.",
		}, func() float64 { return float64(m.QuerySendCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "counter_samples_received_total",
			Help: "Number of samples appended to result sinks.",
		}, func() float64 { return float64(m.SampleRecvCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "counter_status_polls_total",
			Help: "Number of operation-complete status polls.",
		}, func() float64 { return float64(m.StatusPollCount.Load()) }),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Error("metrics server stopped", "error", err)
	}
}
