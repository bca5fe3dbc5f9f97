package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusArrived   FlightStatus = "arrived"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

type Flight struct {
	ID             string       `json:"id"`
	FlightNumber   string       `json:"flightNumber"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	DepartureTime  time.Time    `json:"departureTime"`
	ArrivalTime    time.Time    `json:"arrivalTime"`
	Price          float64      `json:"price"`
	AvailableSeats int          `json:"availableSeats"`
	Status         FlightStatus `json:"status"`
}

// FlightStatusView is a Flight plus display-only fields synthesized per
// request for flights currently boarding or departed. Gate and terminal are
// never stored and change between successive reads.
type FlightStatusView struct {
	Flight
	Gate     string `json:"gate,omitempty"`
	Terminal string `json:"terminal,omitempty"`
}
