package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PurchaseAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "purchase_attempts_total",
	Help:      "STK push attempts by outcome.",
}, []string{"status", "reason"})

var SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "portal",
	Name:      "sessions_created_total",
	Help:      "Browsing sessions opened.",
})

var httpResponseTimeMetric = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "portal",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 10},
}, []string{"route", "method", "code"})

// GinMiddleware records the duration of every routed request.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			httpResponseTimeMetric.
				WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
				Observe(v)
		}))
		defer timer.ObserveDuration()
		c.Next()
	}
}
