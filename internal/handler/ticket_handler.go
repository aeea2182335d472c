package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventcraft/internal/service"
)

// TicketHandler handles organizer-facing ticket listings.
type TicketHandler struct {
	bookingService service.BookingService
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(bookingService service.BookingService) *TicketHandler {
	return &TicketHandler{bookingService: bookingService}
}

// ListMy godoc
// @Summary List the caller's tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Router /tickets/my [get]
func (h *TicketHandler) ListMy(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	tickets, err := h.bookingService.ListMyBookings(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListForEvent godoc
// @Summary List every ticket for an event
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {array} model.Booking
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/event/{eventId} [get]
func (h *TicketHandler) ListForEvent(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	eventID, err := parseEventID(c.Param("eventId"))
	if err != nil {
		return mapError(err)
	}

	tickets, err := h.bookingService.ListEventTickets(c.Request().Context(), claims.UserID, claims.Role, eventID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, tickets)
}
