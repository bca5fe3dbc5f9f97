package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

// fakeRand feeds a fixed sequence into seat assignment.
type fakeRand struct {
	values []int
	i      int
}

func (f *fakeRand) Intn(n int) int {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v % n
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		FlightID:        "FL001",
		PassengerName:   "John Doe",
		PassengerEmail:  "john@example.com",
		RequesterUserID: "2",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID:             "FL001",
		FlightNumber:   "AA101",
		Origin:         "JFK",
		Destination:    "LAX",
		AvailableSeats: 3,
		Status:         domain.FlightStatusScheduled,
	}}, nil, nil, nil)

	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop())

	ctx := context.Background()
	input := validInput()
	input.SeatNumber = "12A"

	result, err := service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "BK001", result.ID)
	assert.Equal(t, "FL001", result.FlightID)
	assert.Equal(t, "2", result.PassengerID)
	assert.Equal(t, "12A", result.SeatNumber)
	assert.Equal(t, domain.BookingStatusConfirmed, result.Status)
	assert.False(t, result.BookingDate.IsZero())

	flight, err := store.GetFlightByID(ctx, "FL001")
	require.NoError(t, err)
	assert.Equal(t, 2, flight.AvailableSeats)

	bookings, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingService_Create_RandomSeat(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID: "FL001", AvailableSeats: 1, Status: domain.FlightStatusScheduled,
	}}, nil, nil, nil)

	// Intn(30) -> 14, Intn(6) -> 2: row 15, letter C
	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop(),
		WithRand(&fakeRand{values: []int{14, 2}}))

	result, err := service.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "15C", result.SeatNumber)
}

func TestBookingService_Create_FlightNotFound(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewBookingService(mockBookings, mockFlights, zap.NewNop())

	ctx := context.Background()
	mockFlights.On("GetByID", ctx, "FL999").Return(nil, repository.ErrFlightNotFound).Once()

	input := validInput()
	input.FlightID = "FL999"
	result, err := service.Create(ctx, input)

	assert.Nil(t, result)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	mockBookings.AssertNotCalled(t, "Create")
	mockFlights.AssertExpectations(t)
}

func TestBookingService_Create_NoSeats(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewBookingService(mockBookings, mockFlights, zap.NewNop())

	ctx := context.Background()
	mockFlights.On("GetByID", ctx, "FL001").
		Return(&domain.Flight{ID: "FL001", AvailableSeats: 0}, nil).Once()

	result, err := service.Create(ctx, validInput())

	assert.Nil(t, result)
	assert.True(t, apperr.IsKind(err, apperr.KindCapacityExceeded))
	mockBookings.AssertNotCalled(t, "Create")
	mockFlights.AssertExpectations(t)
}

func TestBookingService_Create_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input func() CreateBookingInput
	}{
		{
			name: "empty passenger name",
			input: func() CreateBookingInput {
				in := validInput()
				in.PassengerName = ""
				return in
			},
		},
		{
			name: "empty passenger email",
			input: func() CreateBookingInput {
				in := validInput()
				in.PassengerEmail = ""
				return in
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBookings := &MockBookingRepository{}
			mockFlights := &MockFlightRepository{}
			service := NewBookingService(mockBookings, mockFlights, zap.NewNop())

			ctx := context.Background()
			mockFlights.On("GetByID", ctx, "FL001").
				Return(&domain.Flight{ID: "FL001", AvailableSeats: 5}, nil).Once()

			result, err := service.Create(ctx, tc.input())

			assert.Nil(t, result)
			assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
			mockBookings.AssertNotCalled(t, "Create")
		})
	}
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID: "FL001", AvailableSeats: 1, Status: domain.FlightStatusScheduled,
	}}, nil, nil, nil)
	mockProducer := &MockProducer{}

	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop(),
		WithProducer(mockProducer, "booking_events"))

	ctx := context.Background()
	mockProducer.On("Publish", ctx, "booking_events", "BK001", mock.Anything).Return(nil).Once()

	input := validInput()
	input.SeatNumber = "1A"
	_, err := service.Create(ctx, input)

	require.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

// Event publishing is best-effort; a broker failure must not fail the booking.
func TestBookingService_Create_PublishFailureIsNonFatal(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID: "FL001", AvailableSeats: 1, Status: domain.FlightStatusScheduled,
	}}, nil, nil, nil)
	mockProducer := &MockProducer{}

	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop(),
		WithProducer(mockProducer, "booking_events"))

	ctx := context.Background()
	mockProducer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()

	result, err := service.Create(ctx, validInput())

	require.NoError(t, err)
	require.NotNil(t, result)
}

// Two concurrent requests for the last seat on FL001: exactly one wins, the
// other gets CapacityExceeded, and the counter lands on zero.
func TestBookingService_Create_ConcurrentLastSeat(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID: "FL001", AvailableSeats: 1, Status: domain.FlightStatusScheduled,
	}}, nil, nil, nil)
	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop())

	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Create(ctx, validInput())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, apperr.IsKind(err, apperr.KindCapacityExceeded))
		}
	}
	assert.Equal(t, 1, winners)

	flight, err := store.GetFlightByID(ctx, "FL001")
	require.NoError(t, err)
	assert.Equal(t, 0, flight.AvailableSeats)

	bookings, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

// Seat assignment shares one randomness source across request goroutines;
// concurrent bookings without a requested seat must stay well-formed under
// the race detector.
func TestBookingService_Create_ConcurrentRandomSeats(t *testing.T) {
	store := repository.NewMemoryStore([]domain.Flight{{
		ID: "FL001", AvailableSeats: 16, Status: domain.FlightStatusScheduled,
	}}, nil, nil, nil)
	service := NewBookingService(store.Bookings(), store.Flights(), zap.NewNop())

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.Create(ctx, validInput())
			if assert.NoError(t, err) {
				assert.Regexp(t, `^([1-9]|[12][0-9]|30)[A-F]$`, result.SeatNumber)
			}
		}()
	}
	wg.Wait()

	flight, err := store.GetFlightByID(ctx, "FL001")
	require.NoError(t, err)
	assert.Equal(t, 0, flight.AvailableSeats)
}

func TestBookingService_List(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockFlights := &MockFlightRepository{}
	service := NewBookingService(mockBookings, mockFlights, zap.NewNop())

	ctx := context.Background()
	stored := []domain.Booking{{ID: "BK001"}, {ID: "BK002"}}
	mockBookings.On("List", ctx).Return(stored, nil).Once()

	result, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, result)
	mockBookings.AssertExpectations(t)
}
