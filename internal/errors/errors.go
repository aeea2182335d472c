package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrTicketNotFound is returned when a booking cannot be resolved by id or ticket id.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoUsersMatched is returned when a bulk delete matches no users.
	ErrNoUsersMatched = errors.New("no users found with the provided emails")
	// ErrEventExpired is returned when booking an event whose date has passed.
	ErrEventExpired = errors.New("cannot book past events")
	// ErrAlreadyRSVPed is returned on a repeated RSVP for the same event.
	ErrAlreadyRSVPed = errors.New("already RSVPed to this event")
	// ErrInvalidEventID is returned when an event id is not a well-formed identifier.
	ErrInvalidEventID = errors.New("invalid event id")
	// ErrForbidden is returned on a role or ownership mismatch.
	ErrForbidden = errors.New("not authorized to perform this operation")
	// ErrOrganizerOnly is returned when a non-organizer tries to create an event.
	ErrOrganizerOnly = errors.New("only organizers can create events")
	// ErrCurrentPasswordIncorrect is returned when a password change carries the wrong current password.
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)

// DuplicateBookingError is returned when a (user, event) pair already holds a
// booking. It carries the existing ticket id so the client can recover it.
type DuplicateBookingError struct {
	TicketID string
}

func (e *DuplicateBookingError) Error() string {
	return "you have already booked this event"
}

// ErrorResponse represents a standardized error response body. Error holds the
// machine-readable code, Message the human-readable explanation.
type ErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	TicketID string `json:"ticketId,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	TicketID   string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:    e.Code,
		Message:  e.Message,
		TicketID: e.TicketID,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var dup *DuplicateBookingError
	if errors.As(err, &dup) {
		httpErr := NewHTTPError(http.StatusBadRequest, dup.Error(), "DUPLICATE_BOOKING")
		httpErr.TicketID = dup.TicketID
		return httpErr
	}

	switch {
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrTicketNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TICKET_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNoUsersMatched):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USERS_NOT_FOUND")
	case errors.Is(err, ErrEventExpired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EVENT_EXPIRED")
	case errors.Is(err, ErrAlreadyRSVPed):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RSVPED")
	case errors.Is(err, ErrInvalidEventID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EVENT_ID")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrOrganizerOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrCurrentPasswordIncorrect):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CURRENT_PASSWORD_INCORRECT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
