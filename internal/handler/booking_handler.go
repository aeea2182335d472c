package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"eventcraft/internal/model"
	"eventcraft/internal/service"
)

// BookingHandler handles ticket booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookResponse represents a successful booking.
type BookResponse struct {
	Success  bool                         `json:"success"`
	Message  string                       `json:"message"`
	TicketID string                       `json:"ticketId"`
	Booking  *service.BookingConfirmation `json:"booking"`
}

// TicketResponse wraps a resolved ticket with its event and user summaries.
type TicketResponse struct {
	ID       uint                `json:"id"`
	TicketID string              `json:"ticketId"`
	Status   model.BookingStatus `json:"status"`
	BookedAt string              `json:"bookedAt"`
	Event    interface{}         `json:"event"`
	User     interface{}         `json:"user"`
}

// Book godoc
// @Summary Book a ticket for an event
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} BookResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/book/{eventId} [post]
func (h *BookingHandler) Book(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	confirmation, err := h.bookingService.Book(c.Request().Context(), claims.UserID, c.Param("eventId"))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, BookResponse{
		Success:  true,
		Message:  "Ticket booked successfully",
		TicketID: confirmation.TicketID,
		Booking:  confirmation,
	})
}

// ListMy godoc
// @Summary List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Router /bookings/my [get]
func (h *BookingHandler) ListMy(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListMyBookings(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetTicket godoc
// @Summary Fetch one ticket by booking id or ticket id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID or ticket ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetTicket(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return err
	}

	booking, err := h.bookingService.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}

	resp := TicketResponse{
		ID:       booking.ID,
		TicketID: booking.TicketID,
		Status:   booking.Status,
		BookedAt: booking.BookedAt.Format(time.RFC3339),
	}
	if booking.Event != nil {
		resp.Event = booking.Event
	}
	if booking.User != nil {
		summary := booking.User.Summary()
		resp.User = summary
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    resp,
	})
}
