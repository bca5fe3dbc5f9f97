package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/kafka"
	"github.com/mlipatova/airgate/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// Rand is the randomness source for seat assignment, injectable so tests can
// pin the generated seat.
type Rand interface {
	Intn(n int) int
}

// lockedRand draws from math/rand's package-level source, whose internal
// lock makes Intn safe across handler goroutines. A private rand.New source
// has no such lock.
type lockedRand struct{}

func (lockedRand) Intn(n int) int { return rand.Intn(n) }

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	producer Producer
	topic    string
	rnd      Rand
	logger   *zap.Logger
}

type CreateBookingInput struct {
	FlightID        string `json:"flightId"`
	PassengerName   string `json:"passengerName"`
	PassengerEmail  string `json:"passengerEmail"`
	SeatNumber      string `json:"seatNumber"`
	RequesterUserID string `json:"-"`
}

type BookingServiceOption func(*BookingService)

// WithProducer wires booking event publishing; without it events are skipped.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

// WithRand overrides the seat randomness source.
func WithRand(rnd Rand) BookingServiceOption {
	return func(s *BookingService) {
		s.rnd = rnd
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		rnd:      lockedRand{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, apperr.NotFound("flight")
		}
		return nil, err
	}
	if flight.AvailableSeats == 0 {
		return nil, apperr.CapacityExceeded("no available seats")
	}
	if input.PassengerName == "" || input.PassengerEmail == "" {
		return nil, apperr.InvalidInput("missing required fields")
	}

	seat := input.SeatNumber
	if seat == "" {
		seat = s.randomSeat()
	}

	booking := &domain.Booking{
		FlightID:       input.FlightID,
		PassengerID:    input.RequesterUserID,
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
		Status:         domain.BookingStatusConfirmed,
		BookingDate:    time.Now().UTC(),
		SeatNumber:     seat,
	}

	// The store re-checks capacity under its lock; the precheck above only
	// decides which error a sequential caller sees first.
	if err := s.bookings.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrFlightNotFound):
			return nil, apperr.NotFound("flight")
		case errors.Is(err, repository.ErrNoSeats):
			return nil, apperr.CapacityExceeded("no available seats")
		default:
			return nil, err
		}
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// randomSeat picks a row 1-30 and a letter A-F.
func (s *BookingService) randomSeat() string {
	return fmt.Sprintf("%d%c", s.rnd.Intn(30)+1, rune('A'+s.rnd.Intn(6)))
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		FlightID:       booking.FlightID,
		SeatNumber:     booking.SeatNumber,
		PassengerName:  booking.PassengerName,
		PassengerEmail: booking.PassengerEmail,
		BookingDate:    booking.BookingDate,
	}
	return s.producer.Publish(ctx, s.topic, booking.ID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
