package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heliconnect_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"route", "status"})

	ExpiredRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heliconnect_expired_flight_requests_total",
		Help: "Flight requests expired by the worker sweep.",
	})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heliconnect_notifications_total",
		Help: "Notification events published, by entity and action.",
	}, []string{"entity", "action"})
)

// Handler exposes the prometheus registry; mounted on /metrics.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
