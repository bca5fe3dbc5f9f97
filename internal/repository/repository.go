package repository

import (
	"context"
	"errors"

	"github.com/mlipatova/airgate/internal/domain"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrNoSeats        = errors.New("no available seats")
	ErrUserNotFound   = errors.New("user not found")
	ErrConfigNotFound = errors.New("api config not found")
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	// Create assigns the booking id, appends the record and decrements the
	// flight's seat counter as one unit. Returns ErrFlightNotFound or
	// ErrNoSeats without mutating anything.
	Create(ctx context.Context, booking *domain.Booking) error
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type ConfigRepository interface {
	List(ctx context.Context) ([]domain.APIConfig, error)
	Update(ctx context.Context, id string, update domain.APIConfigUpdate) (*domain.APIConfig, error)
}
