package handler

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"eventcraft/internal/auth"
	"eventcraft/internal/errors"
)

// currentClaims extracts the authenticated identity the JWT middleware parked
// on the request context.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error:   "INVALID_TOKEN",
			Message: "invalid or missing token",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error:   "INVALID_TOKEN",
			Message: "invalid token claims",
		})
	}
	return claims, nil
}

// mapError converts a domain error into the JSON error envelope.
func mapError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(code, message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// parseEventID validates a path parameter as a well-formed event identifier.
func parseEventID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidEventID
	}
	return uint(id), nil
}
