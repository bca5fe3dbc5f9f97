package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mlipatova/airgate/internal/domain"
)

// MemoryStore holds every collection behind one mutex. The coarse lock is the
// serialization point that keeps the seat-decrement-and-append step of a
// booking indivisible with respect to concurrent requests.
type MemoryStore struct {
	mu       sync.Mutex
	flights  []domain.Flight
	bookings []domain.Booking
	users    []domain.User
	configs  []domain.APIConfig
}

func NewMemoryStore(flights []domain.Flight, bookings []domain.Booking, users []domain.User, configs []domain.APIConfig) *MemoryStore {
	return &MemoryStore{
		flights:  flights,
		bookings: bookings,
		users:    users,
		configs:  configs,
	}
}

func (s *MemoryStore) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out, nil
}

func (s *MemoryStore) GetFlightByID(ctx context.Context, id string) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.flights {
		if s.flights[i].ID == id {
			f := s.flights[i]
			return &f, nil
		}
	}
	return nil, ErrFlightNotFound
}

// CreateBooking validates and applies a booking atomically: the capacity
// check, the booking append and the seat decrement all happen under the store
// lock, so two concurrent requests can never both take the last seat.
func (s *MemoryStore) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var flight *domain.Flight
	for i := range s.flights {
		if s.flights[i].ID == booking.FlightID {
			flight = &s.flights[i]
			break
		}
	}
	if flight == nil {
		return ErrFlightNotFound
	}
	if flight.AvailableSeats <= 0 {
		return ErrNoSeats
	}

	booking.ID = fmt.Sprintf("BK%03d", len(s.bookings)+1)
	s.bookings = append(s.bookings, *booking)
	flight.AvailableSeats--
	return nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) ListConfigs(ctx context.Context) ([]domain.APIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.APIConfig, len(s.configs))
	copy(out, s.configs)
	return out, nil
}

func (s *MemoryStore) UpdateConfig(ctx context.Context, id string, update domain.APIConfigUpdate) (*domain.APIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.configs {
		if s.configs[i].ID != id {
			continue
		}
		cfg := &s.configs[i]
		if update.APIName != nil {
			cfg.APIName = *update.APIName
		}
		if update.EndpointURL != nil {
			cfg.EndpointURL = *update.EndpointURL
		}
		if update.RateLimit != nil {
			cfg.RateLimit = *update.RateLimit
		}
		if update.AuthRequired != nil {
			cfg.AuthRequired = *update.AuthRequired
		}
		if update.Enabled != nil {
			cfg.Enabled = *update.Enabled
		}
		if update.Description != nil {
			cfg.Description = *update.Description
		}
		out := *cfg
		return &out, nil
	}
	return nil, ErrConfigNotFound
}

// View types give each repository interface its own receiver so services
// depend only on the slice of the store they actually use.

type flightView struct{ store *MemoryStore }

func (v flightView) List(ctx context.Context) ([]domain.Flight, error) {
	return v.store.ListFlights(ctx)
}

func (v flightView) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return v.store.GetFlightByID(ctx, id)
}

type bookingView struct{ store *MemoryStore }

func (v bookingView) List(ctx context.Context) ([]domain.Booking, error) {
	return v.store.ListBookings(ctx)
}

func (v bookingView) Create(ctx context.Context, booking *domain.Booking) error {
	return v.store.CreateBooking(ctx, booking)
}

type userView struct{ store *MemoryStore }

func (v userView) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return v.store.GetUserByEmail(ctx, email)
}

func (v userView) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return v.store.GetUserByID(ctx, id)
}

type configView struct{ store *MemoryStore }

func (v configView) List(ctx context.Context) ([]domain.APIConfig, error) {
	return v.store.ListConfigs(ctx)
}

func (v configView) Update(ctx context.Context, id string, update domain.APIConfigUpdate) (*domain.APIConfig, error) {
	return v.store.UpdateConfig(ctx, id, update)
}

func (s *MemoryStore) Flights() FlightRepository   { return flightView{s} }
func (s *MemoryStore) Bookings() BookingRepository { return bookingView{s} }
func (s *MemoryStore) Users() UserRepository       { return userView{s} }
func (s *MemoryStore) Configs() ConfigRepository   { return configView{s} }

var (
	_ FlightRepository  = flightView{}
	_ BookingRepository = bookingView{}
	_ UserRepository    = userView{}
	_ ConfigRepository  = configView{}
)
