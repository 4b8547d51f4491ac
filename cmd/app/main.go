package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heliconnect/client-api/api"
	"github.com/heliconnect/client-api/config"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/bootstrap"
	"github.com/heliconnect/client-api/internal/cache"
	"github.com/heliconnect/client-api/internal/kafka"
	"github.com/heliconnect/client-api/internal/repository"
	"github.com/heliconnect/client-api/internal/service/alerts"
	"github.com/heliconnect/client-api/internal/service/bookings"
	"github.com/heliconnect/client-api/internal/service/invoices"
	"github.com/heliconnect/client-api/internal/service/profiles"
	"github.com/heliconnect/client-api/internal/service/requests"
	"github.com/heliconnect/client-api/internal/service/search"
	"github.com/heliconnect/client-api/internal/service/subscriptions"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second, sessionTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	profileRepo := repository.NewProfileRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)

	authService := auth.NewService(profileRepo, redisCache, sessionTTL)
	flightService := search.NewFlightService(flightRepo, redisCache)
	alertService := alerts.NewAlertService(alertRepo, producer, cfg.Kafka.NotificationsTopic)
	requestService := requests.NewRequestService(requestRepo, producer, cfg.Kafka.NotificationsTopic)
	bookingService := bookings.NewBookingService(bookingRepo, producer, cfg.Kafka.NotificationsTopic)
	invoiceService := invoices.NewInvoiceService(invoiceRepo)
	subscriptionService := subscriptions.NewSubscriptionService(subscriptionRepo)
	profileService := profiles.NewProfileService(profileRepo)

	handlers := bootstrap.Handlers{
		Auth:          api.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.TTLHours*3600, cfg.Session.CookieSecure),
		Flights:       api.NewFlightHandler(flightService),
		Alerts:        api.NewAlertHandler(alertService),
		Requests:      api.NewRequestHandler(requestService),
		Bookings:      api.NewBookingHandler(bookingService),
		Invoices:      api.NewInvoiceHandler(invoiceService),
		Subscriptions: api.NewSubscriptionHandler(subscriptionService),
		Profile:       api.NewProfileHandler(profileService),
	}

	if err := bootstrap.Run(ctx, cfg, authService, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
