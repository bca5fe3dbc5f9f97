package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mlipatova/airgate/config"
	adminsvc "github.com/mlipatova/airgate/internal/service/admin"
	authsvc "github.com/mlipatova/airgate/internal/service/auth"
	bookingsvc "github.com/mlipatova/airgate/internal/service/booking"
	flightsvc "github.com/mlipatova/airgate/internal/service/flights"
)

// NewRouter wires all handlers and middleware into a gin engine.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authService authsvc.AuthUseCase,
	flightService flightsvc.FlightUseCase,
	bookingService bookingsvc.BookingUseCase,
	configService adminsvc.ConfigUseCase,
) *gin.Engine {
	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	authMW := NewAuthMiddleware(authService)

	api := r.Group("/api")
	api.Use(Metadata(), authMW.Resolve)

	NewAuthHandler(authService, cfg.Auth.CookieSecure).
		Register(api.Group("/auth"))
	NewFlightHandler(flightService).
		Register(api.Group("/flights"))
	NewBookingHandler(bookingService).
		Register(api.Group("/bookings", RequireAuth()))
	NewAdminHandler(configService).
		Register(api.Group("/admin", RequireAdmin()))

	return r
}
