package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	agentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_requests_total",
			Help: "Total agent questions handled, by intent and outcome.",
		},
		[]string{"intent", "outcome"},
	)
	agentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_handle_duration_seconds",
			Help:    "Time spent answering a question.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"intent"},
	)
	storeRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "risk_store_rows",
		Help: "Rows held by the in-memory risk store.",
	})
	storeQuarantined = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "risk_store_quarantined_rows",
		Help: "Rows rejected while loading the risk store.",
	})
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveAgentRequest records one handled question.
func ObserveAgentRequest(intent, outcome string, elapsed time.Duration) {
	agentRequests.WithLabelValues(intent, outcome).Inc()
	agentDuration.WithLabelValues(intent).Observe(elapsed.Seconds())
}

// SetStoreRows publishes the load result of the risk store.
func SetStoreRows(accepted, quarantined int) {
	storeRows.Set(float64(accepted))
	storeQuarantined.Set(float64(quarantined))
}

// ObserveHTTPRequest counts a served request.
func ObserveHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
