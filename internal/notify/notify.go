package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/mlipatova/airgate/internal/kafka"
)

// Sender turns booking events into passenger notifications. The demo sink
// only logs the confirmation that a real mailer would send.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info("sending booking notification",
		zap.String("type", event.Type),
		zap.String("booking_id", event.BookingID),
		zap.String("flight_id", event.FlightID),
		zap.String("seat", event.SeatNumber),
		zap.String("email", event.PassengerEmail),
	)
	return nil
}
