package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"eventcraft/internal/service"
)

// AdminHandler handles admin reporting and user management endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// DeleteUsersRequest carries the emails of users to remove.
type DeleteUsersRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

// Stats godoc
// @Summary System-wide counts of users, events and tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminStats
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListEvents godoc
// @Summary List all events
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Event
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/events [get]
func (h *AdminHandler) ListEvents(c echo.Context) error {
	events, err := h.adminService.ListEvents(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// DeleteUsers godoc
// @Summary Delete users by email
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteUsersRequest true "Emails to delete"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users [delete]
func (h *AdminHandler) DeleteUsers(c echo.Context) error {
	var req DeleteUsersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("INVALID_REQUEST", "emails must be a non-empty list of valid addresses")
	}

	deleted, err := h.adminService.DeleteUsersByEmail(c.Request().Context(), req.Emails)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      fmt.Sprintf("%d user(s) deleted successfully", deleted),
		"deletedCount": deleted,
	})
}
