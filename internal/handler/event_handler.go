package handler

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"eventcraft/internal/model"
	"eventcraft/internal/service"
)

// EventHandler handles event registry endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// VenueRequest mirrors the venue block of an event payload.
type VenueRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity uint   `json:"capacity"`
}

// VendorRequest mirrors one vendor entry of an event payload.
type VendorRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Contact string `json:"contact"`
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date" validate:"required"`
	Category    string          `json:"category"`
	Venue       VenueRequest    `json:"venue"`
	Vendors     []VendorRequest `json:"vendors"`
}

// UpdateEventRequest represents a partial event update. Omitted fields keep
// their stored values.
type UpdateEventRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Category    string       `json:"category"`
	Venue       VenueRequest `json:"venue"`
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.ListAll(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("VALIDATION_ERROR", err.Error())
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Venue: model.Venue{
			Name:     req.Venue.Name,
			Address:  req.Venue.Address,
			Capacity: req.Venue.Capacity,
		},
	}
	for _, v := range req.Vendors {
		event.Vendors = append(event.Vendors, model.Vendor{
			Name:    v.Name,
			Service: v.Service,
			Contact: v.Contact,
		})
	}

	created, err := h.eventService.Create(c.Request().Context(), claims.UserID, claims.Role, event)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an owned event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body UpdateEventRequest true "Changed fields"
// @Success 200 {object} model.Event
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	eventID, err := parseEventID(c.Param("id"))
	if err != nil {
		return mapError(err)
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}

	updated, err := h.eventService.Update(c.Request().Context(), claims.UserID, eventID, service.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		VenueName:   req.Venue.Name,
		VenueAddr:   req.Venue.Address,
		VenueCap:    req.Venue.Capacity,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an owned event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	eventID, err := parseEventID(c.Param("id"))
	if err != nil {
		return mapError(err)
	}

	if err := h.eventService.Delete(c.Request().Context(), claims.UserID, eventID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// RSVP godoc
// @Summary RSVP to an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/rsvp/{eventId} [post]
func (h *EventHandler) RSVP(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	eventID, err := parseEventID(c.Param("eventId"))
	if err != nil {
		return mapError(err)
	}

	event, err := h.eventService.RSVP(c.Request().Context(), eventID, claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "RSVP successful",
		"event":   event,
	})
}

// ListMine godoc
// @Summary List the caller's own events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Router /events/mine [get]
func (h *EventHandler) ListMine(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	events, err := h.eventService.ListMine(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// ListMyRSVPs godoc
// @Summary List events the caller RSVPed to
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Router /events/my-rsvps [get]
func (h *EventHandler) ListMyRSVPs(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	events, err := h.eventService.ListMyRSVPs(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// DashboardStats godoc
// @Summary Aggregate the caller's own events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Router /events/dashboard-stats [get]
func (h *EventHandler) DashboardStats(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.eventService.DashboardStats(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ExportRSVPs godoc
// @Summary Export the caller's RSVPs as CSV
// @Tags events
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV body"
// @Router /events/export [get]
func (h *EventHandler) ExportRSVPs(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	rows, err := h.eventService.ExportRSVPs(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="rsvps.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return nil
}
