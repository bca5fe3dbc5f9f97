package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             string        `json:"id"`
	FlightID       string        `json:"flightId"`
	PassengerID    string        `json:"passengerId"`
	PassengerName  string        `json:"passengerName"`
	PassengerEmail string        `json:"passengerEmail"`
	Status         BookingStatus `json:"status"`
	BookingDate    time.Time     `json:"bookingDate"`
	SeatNumber     string        `json:"seatNumber"`
}
