package flights

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	StatusView(ctx context.Context, flightNumber string) ([]domain.FlightStatusView, error)
}

// Rand is the randomness source for gate/terminal synthesis, injectable so
// tests can pin the display fields.
type Rand interface {
	Intn(n int) int
}

// lockedRand draws from math/rand's package-level source, whose internal
// lock makes Intn safe across handler goroutines. A private rand.New source
// has no such lock.
type lockedRand struct{}

func (lockedRand) Intn(n int) int { return rand.Intn(n) }

type FlightService struct {
	repo repository.FlightRepository
	rnd  Rand
}

type FlightServiceOption func(*FlightService)

func WithRand(rnd Rand) FlightServiceOption {
	return func(s *FlightService) {
		s.rnd = rnd
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		repo: repo,
		rnd:  lockedRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search filters by case-insensitive substring on origin and destination.
// Empty filters match everything; store order is preserved.
func (s *FlightService) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	origin = strings.ToLower(origin)
	destination = strings.ToLower(destination)

	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if origin != "" && !strings.Contains(strings.ToLower(f.Origin), origin) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(f.Destination), destination) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, apperr.NotFound("flight")
		}
		return nil, err
	}
	return flight, nil
}

// StatusView returns all flights with gate and terminal synthesized for the
// ones currently boarding or departed. The fields are display-only, drawn
// fresh on every call and never written back to the store.
func (s *FlightService) StatusView(ctx context.Context, flightNumber string) ([]domain.FlightStatusView, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	flightNumber = strings.ToLower(flightNumber)

	out := make([]domain.FlightStatusView, 0, len(flights))
	for _, f := range flights {
		if flightNumber != "" && !strings.Contains(strings.ToLower(f.FlightNumber), flightNumber) {
			continue
		}
		view := domain.FlightStatusView{Flight: f}
		if f.Status == domain.FlightStatusBoarding || f.Status == domain.FlightStatusDeparted {
			view.Gate = strconv.Itoa(s.rnd.Intn(50) + 1)
			view.Terminal = string(rune('A' + s.rnd.Intn(4)))
		}
		out = append(out, view)
	}
	return out, nil
}

var _ FlightUseCase = (*FlightService)(nil)
