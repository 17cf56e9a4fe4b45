// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ReportCommitCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "fieldstone_report_commit_total",
		Help: "Total number of committed communication reports",
	},
)

var EntityMutationCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fieldstone_entity_mutation_total",
		Help: "Total number of entity create/update/delete operations",
	},
	[]string{"entity", "operation"},
)

var RequestDurationHistogram = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "fieldstone_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)

func init() {
	prometheus.MustRegister(ReportCommitCounter)
	prometheus.MustRegister(EntityMutationCounter)
	prometheus.MustRegister(RequestDurationHistogram)
}

// Handler exposes the registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request durations per method and status code.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		RequestDurationHistogram.
			WithLabelValues(r.Method, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
