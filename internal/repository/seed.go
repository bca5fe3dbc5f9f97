package repository

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlipatova/airgate/internal/domain"
)

// DemoPassword is the single password every seeded account accepts. This is
// demo data; real credential storage is out of scope.
const DemoPassword = "password123"

// NewSeededStore builds the in-memory store with the demo data set: two
// users, five flights, two historical bookings and three API config records.
func NewSeededStore() (*MemoryStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	users := []domain.User{
		{ID: "1", Email: "admin@airline.com", Name: "Admin User", Role: domain.RoleAdmin, PasswordHash: string(hash)},
		{ID: "2", Email: "user@airline.com", Name: "Regular User", Role: domain.RoleUser, PasswordHash: string(hash)},
	}

	flights := []domain.Flight{
		{
			ID:             "FL001",
			FlightNumber:   "AA101",
			Origin:         "JFK",
			Destination:    "LAX",
			DepartureTime:  time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 10, 20, 11, 30, 0, 0, time.UTC),
			Price:          350,
			AvailableSeats: 45,
			Status:         domain.FlightStatusScheduled,
		},
		{
			ID:             "FL002",
			FlightNumber:   "AA202",
			Origin:         "LAX",
			Destination:    "ORD",
			DepartureTime:  time.Date(2025, 10, 20, 14, 0, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 10, 20, 20, 0, 0, 0, time.UTC),
			Price:          280,
			AvailableSeats: 32,
			Status:         domain.FlightStatusScheduled,
		},
		{
			ID:             "FL003",
			FlightNumber:   "AA303",
			Origin:         "ORD",
			Destination:    "MIA",
			DepartureTime:  time.Date(2025, 10, 20, 9, 30, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 10, 20, 13, 45, 0, 0, time.UTC),
			Price:          220,
			AvailableSeats: 18,
			Status:         domain.FlightStatusBoarding,
		},
		{
			ID:             "FL004",
			FlightNumber:   "AA404",
			Origin:         "MIA",
			Destination:    "JFK",
			DepartureTime:  time.Date(2025, 10, 20, 16, 0, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 10, 20, 19, 15, 0, 0, time.UTC),
			Price:          310,
			AvailableSeats: 0,
			Status:         domain.FlightStatusDeparted,
		},
		{
			ID:             "FL005",
			FlightNumber:   "AA505",
			Origin:         "SFO",
			Destination:    "SEA",
			DepartureTime:  time.Date(2025, 10, 20, 11, 0, 0, 0, time.UTC),
			ArrivalTime:    time.Date(2025, 10, 20, 13, 30, 0, 0, time.UTC),
			Price:          180,
			AvailableSeats: 56,
			Status:         domain.FlightStatusDelayed,
		},
	}

	bookings := []domain.Booking{
		{
			ID:             "BK001",
			FlightID:       "FL001",
			PassengerID:    "P001",
			PassengerName:  "John Doe",
			PassengerEmail: "john@example.com",
			Status:         domain.BookingStatusConfirmed,
			BookingDate:    time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
			SeatNumber:     "12A",
		},
		{
			ID:             "BK002",
			FlightID:       "FL002",
			PassengerID:    "P002",
			PassengerName:  "Jane Smith",
			PassengerEmail: "jane@example.com",
			Status:         domain.BookingStatusConfirmed,
			BookingDate:    time.Date(2025, 10, 14, 14, 20, 0, 0, time.UTC),
			SeatNumber:     "8C",
		},
	}

	configs := []domain.APIConfig{
		{
			ID:           "API001",
			APIName:      "Flight Booking API",
			EndpointURL:  "/api/bookings",
			RateLimit:    1000,
			AuthRequired: true,
			Enabled:      true,
			Description:  "Create and manage flight bookings",
		},
		{
			ID:           "API002",
			APIName:      "Flight Status API",
			EndpointURL:  "/api/flights/status",
			RateLimit:    5000,
			AuthRequired: false,
			Enabled:      true,
			Description:  "Query real-time flight status information",
		},
		{
			ID:           "API003",
			APIName:      "Admin Configuration API",
			EndpointURL:  "/api/admin/config",
			RateLimit:    100,
			AuthRequired: true,
			Enabled:      true,
			Description:  "Manage API configurations and settings",
		},
	}

	return NewMemoryStore(flights, bookings, users, configs), nil
}
