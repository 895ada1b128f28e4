package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. The cache
// package increments it from a go-redis hook.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis command errors.",
	},
	[]string{"command"},
)

// NotificationsEmitted counts notifications appended by the engagement
// engine, labeled by verb.
var NotificationsEmitted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ripple_notifications_emitted_total",
		Help: "Total number of notifications appended, by verb.",
	},
	[]string{"verb"},
)

// WebSocketDrops counts realtime messages dropped on the way to a client,
// labeled by reason ("full" or "closed").
var WebSocketDrops = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ripple_websocket_dropped_messages_total",
		Help: "Total number of websocket messages dropped due to backpressure.",
	},
	[]string{"reason"},
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The instance is shared; the underlying collectors can only be registered once.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware returns the request-instrumentation handler for the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
