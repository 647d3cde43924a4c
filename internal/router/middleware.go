package router

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smart-budget/backend/internal/httputil"
)

// URLMiddleware stores the external base URL of the API, without trailing
// slash, so that handlers can build absolute links.
func URLMiddleware(base *url.URL) gin.HandlerFunc {
	baseURL := strings.TrimSuffix(base.String(), "/")

	return func(c *gin.Context) {
		c.Set(httputil.ContextURL, baseURL)
		c.Next()
	}
}

// unmatchedRoute is the route label for requests no handler matched.
const unmatchedRoute = "unmatched"

// requestMetrics are the HTTP metrics of one router.
type requestMetrics struct {
	count    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newRequestMetrics() requestMetrics {
	labels := []string{"code", "method", "route"}

	return requestMetrics{
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "requests_total",
			Help: "HTTP requests processed, partitioned by status code, method and route.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

func (m requestMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.count, m.duration}
}

// register adds the metrics to the default registry. If one of them
// cannot be registered, none stay registered.
func (m requestMetrics) register() error {
	var registered []prometheus.Collector
	for _, c := range m.collectors() {
		if err := prometheus.Register(c); err != nil {
			for _, r := range registered {
				prometheus.Unregister(r)
			}
			return errors.Join(errors.New("could not register Prometheus metrics"), err)
		}
		registered = append(registered, c)
	}

	return nil
}

// unregister removes the metrics from the default registry.
func (m requestMetrics) unregister() error {
	for _, c := range m.collectors() {
		if !prometheus.Unregister(c) {
			return errors.New("could not unregister Prometheus metrics")
		}
	}

	return nil
}

// middleware records every request. The route template is used as label
// so that resource IDs and months do not create new series.
func (m requestMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"route":  route,
		}

		m.duration.With(labels).Observe(time.Since(start).Seconds())
		m.count.With(labels).Inc()
	}
}
