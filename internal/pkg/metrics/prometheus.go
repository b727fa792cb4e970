package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aegisflow"

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Scan simulator metrics
	scanRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "runs_total",
			Help:      "Deep scans by outcome",
		},
		[]string{"outcome"},
	)

	scanProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "progress_percent",
			Help:      "Progress of the running deep scan",
		},
	)

	scanDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "discovered_resources_total",
			Help:      "Resources appended by completed deep scans",
		},
	)

	// Waste metrics, set when the resource service starts and after every store mutation
	wasteLeakage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "waste",
			Name:      "monthly_leakage_dollars",
			Help:      "Monthly cost of resources with a waste score above 60",
		},
	)

	wasteZombies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "waste",
			Name:      "zombie_resources",
			Help:      "Resources in zombie status",
		},
	)

	wasteRightsizing = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "waste",
			Name:      "rightsizing_candidates",
			Help:      "Resources with a waste score in (30, 60]",
		},
	)

	resourcesTerminated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resource",
			Name:      "terminated_total",
			Help:      "Resources removed from the audit store",
		},
		[]string{"provider"},
	)

	// Assistant metrics
	assistantQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "queries_total",
			Help:      "Assistant queries by outcome (ok, empty, error)",
		},
		[]string{"backend", "outcome"},
	)

	assistantQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "query_duration_seconds",
			Help:      "Round-trip time of assistant queries",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"backend"},
	)

	// Approval metrics
	approvalDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "approval",
			Name:      "decisions_total",
			Help:      "Approval decisions by type and outcome",
		},
		[]string{"type", "decision"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordScanRun records the outcome of a deep scan: completed, cancelled or failed
func RecordScanRun(outcome string) {
	scanRunsTotal.WithLabelValues(outcome).Inc()
}

// SetScanProgress sets the progress gauge of the running scan
func SetScanProgress(progress float64) {
	scanProgress.Set(progress)
}

// AddDiscoveredResources counts resources appended by a completed scan
func AddDiscoveredResources(n int) {
	scanDiscovered.Add(float64(n))
}

// SetWasteSummary publishes the latest waste classifier output
func SetWasteSummary(leakage float64, zombies, rightsizing int) {
	wasteLeakage.Set(leakage)
	wasteZombies.Set(float64(zombies))
	wasteRightsizing.Set(float64(rightsizing))
}

// RecordTermination counts a terminated resource
func RecordTermination(provider string) {
	resourcesTerminated.WithLabelValues(provider).Inc()
}

// RecordAssistantQuery records one assistant round trip
func RecordAssistantQuery(backend, outcome string, duration time.Duration) {
	assistantQueriesTotal.WithLabelValues(backend, outcome).Inc()
	assistantQueryDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordApprovalDecision counts an approval decision
func RecordApprovalDecision(requestType, decision string) {
	approvalDecisionsTotal.WithLabelValues(requestType, decision).Inc()
}
