package observability

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIMetrics counts requests served by the lookup API.
type APIMetrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
}

func NewAPIMetrics() *APIMetrics {
	m := &APIMetrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_requests_total",
				Help: "Requests served by route and status code",
			},
			[]string{"route", "status"},
		),
	}
	m.Registry.MustRegister(m.Requests)
	return m
}

// Middleware records every request once the handler chain has finished.
func (m *APIMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the registry for scraping.
func (m *APIMetrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
