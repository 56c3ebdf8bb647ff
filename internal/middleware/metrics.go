package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures, labeled by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "linkora_redis_errors_total",
		Help: "Total number of Redis command errors.",
	},
	[]string{"command"},
)

// OTPIssued counts one-time passwords generated during registration.
var OTPIssued = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "linkora_otp_issued_total",
		Help: "Total number of verification codes issued.",
	},
)

// EmailSendFailures counts verification emails that failed to send.
var EmailSendFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "linkora_email_send_failures_total",
		Help: "Total number of verification emails that could not be delivered.",
	},
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records per-route HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
