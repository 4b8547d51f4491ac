package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/api"
	"github.com/heliconnect/client-api/config"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/metrics"
)

// Handlers groups everything the HTTP surface mounts.
type Handlers struct {
	Auth          *api.AuthHandler
	Flights       *api.FlightHandler
	Alerts        *api.AlertHandler
	Requests      *api.RequestHandler
	Bookings      *api.BookingHandler
	Invoices      *api.InvoiceHandler
	Subscriptions *api.SubscriptionHandler
	Profile       *api.ProfileHandler
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, authSvc auth.AuthUseCase, h Handlers) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, authSvc, h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, authSvc auth.AuthUseCase, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), countRequests())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")
	h.Auth.Register(v1.Group("/auth"))

	protected := v1.Group("/", auth.RequireClient(authSvc, cfg.Session.CookieName))
	h.Auth.RegisterProtected(protected.Group("/auth"))
	h.Flights.Register(protected.Group("/flights"))
	h.Alerts.Register(protected.Group("/alerts"))
	h.Requests.Register(protected.Group("/requests"))
	h.Bookings.Register(protected.Group("/bookings"))
	h.Invoices.Register(protected.Group("/invoices"))
	h.Subscriptions.Register(protected.Group("/subscription"))
	h.Profile.Register(protected.Group("/profile"))

	return router
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
