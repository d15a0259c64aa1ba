package providers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: ServerName,
		Name:      "requests_total",
		Help:      "JSON-RPC requests by method.",
	}, []string{"method"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ServerName,
		Name:      "request_duration_seconds",
		Help:      "JSON-RPC request latency by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: ServerName,
		Name:      "events_total",
		Help:      "UI events received from the client.",
	}, []string{"event"})

	viewDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: ServerName,
		Name:      "view_duration_seconds",
		Help:      "Time to recompute a full view.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})
)

// observeRequest counts the request and returns a func that records its latency.
func observeRequest(method string) func() {
	start := time.Now()
	requestsTotal.WithLabelValues(method).Inc()

	return func() {
		requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}

func observeEvent(event string) {
	eventsTotal.WithLabelValues(event).Inc()
}

func MetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// StartMetrics serves the metrics router in the background.
func StartMetrics(addr string) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           MetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("metrics on %s", addr)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("metrics: %s", err.Error())
		}
	}()

	return srv
}
