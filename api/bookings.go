package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID       string `json:"flightId"`
	PassengerName  string `json:"passengerName"`
	PassengerEmail string `json:"passengerEmail"`
	SeatNumber     string `json:"seatNumber"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

// list returns every booking. Scoping to the requesting user is a known
// gap carried over from the original behavior.
func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) create(c *gin.Context) {
	user, ok := CurrentUserFromContext(c)
	if !ok {
		writeError(c, apperr.Unauthenticated("unauthorized"))
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.InvalidInput("invalid request body"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		FlightID:        req.FlightID,
		PassengerName:   req.PassengerName,
		PassengerEmail:  req.PassengerEmail,
		SeatNumber:      req.SeatNumber,
		RequesterUserID: user.ID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": result,
		"message": "Booking created successfully",
	})
}
