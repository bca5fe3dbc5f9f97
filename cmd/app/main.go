package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mlipatova/airgate/api"
	"github.com/mlipatova/airgate/config"
	"github.com/mlipatova/airgate/internal/bootstrap"
	"github.com/mlipatova/airgate/internal/kafka"
	"github.com/mlipatova/airgate/internal/observability"
	"github.com/mlipatova/airgate/internal/repository"
	"github.com/mlipatova/airgate/internal/service/admin"
	"github.com/mlipatova/airgate/internal/service/auth"
	"github.com/mlipatova/airgate/internal/service/booking"
	"github.com/mlipatova/airgate/internal/service/flights"
	"github.com/mlipatova/airgate/internal/session"
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

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewSeededStore()
	if err != nil {
		logger.Fatal("seed store", zap.Error(err))
	}

	var registry session.Registry
	switch cfg.Auth.SessionBackend {
	case "redis":
		registry = session.NewRedisRegistry(cfg.Redis, cfg.Auth.SessionTTL())
	default:
		memRegistry := session.NewMemoryRegistry(cfg.Auth.SessionTTL())
		if cfg.Worker.SessionSweepMinutes > 0 {
			go sweepSessions(ctx, memRegistry, time.Duration(cfg.Worker.SessionSweepMinutes)*time.Minute, logger)
		}
		registry = memRegistry
	}

	bookingOpts := []booking.BookingServiceOption{}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}

	authService := auth.NewAuthService(store.Users(), registry)
	flightService := flights.NewFlightService(store.Flights())
	bookingService := booking.NewBookingService(store.Bookings(), store.Flights(), logger, bookingOpts...)
	configService := admin.NewConfigService(store.Configs())

	router := api.NewRouter(cfg, logger, authService, flightService, bookingService, configService)

	if err := bootstrap.Run(ctx, cfg, router, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// sweepSessions periodically evicts expired sessions so an idle registry
// does not hold dead entries until their next access.
func sweepSessions(ctx context.Context, registry *session.MemoryRegistry, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := registry.Sweep(); removed > 0 {
				logger.Info("swept expired sessions", zap.Int("removed", removed))
			}
		case <-ctx.Done():
			return
		}
	}
}
