package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "desa_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "desa_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	submissionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "desa_service_submissions_created_total",
		Help: "Number of public service submissions accepted",
	})

	blacklistCleanup = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "desa_token_blacklist_cleanup_total",
		Help: "Token blacklist cleanup runs by result",
	}, []string{"result"})
)

func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncSubmissionsCreated() { submissionsCreated.Inc() }

func ObserveBlacklistCleanup(result string) {
	blacklistCleanup.WithLabelValues(result).Inc()
}

// Middleware memberi label path berdasarkan pola route (bukan URL mentah) agar kardinalitas tetap kecil.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			path = r.Path
		}
		ObserveHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
