package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{ErrEventNotFound, http.StatusNotFound, "EVENT_NOT_FOUND"},
		{ErrTicketNotFound, http.StatusNotFound, "TICKET_NOT_FOUND"},
		{ErrNoUsersMatched, http.StatusNotFound, "USERS_NOT_FOUND"},
		{ErrEventExpired, http.StatusBadRequest, "EVENT_EXPIRED"},
		{ErrAlreadyRSVPed, http.StatusConflict, "ALREADY_RSVPED"},
		{ErrInvalidEventID, http.StatusBadRequest, "INVALID_EVENT_ID"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrOrganizerOnly, http.StatusForbidden, "FORBIDDEN"},
		{ErrCurrentPasswordIncorrect, http.StatusBadRequest, "CURRENT_PASSWORD_INCORRECT"},
		{fmt.Errorf("driver: bad connection"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedCode, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_DuplicateBooking(t *testing.T) {
	wrapped := fmt.Errorf("book: %w", &DuplicateBookingError{TicketID: "a1b2c3d4e5f60718"})

	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "DUPLICATE_BOOKING", httpErr.Code)
	assert.Equal(t, "a1b2c3d4e5f60718", httpErr.TicketID)

	body := httpErr.ToErrorResponse()
	assert.Equal(t, "a1b2c3d4e5f60718", body.TicketID)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("dial tcp 10.0.0.5:3306: connect: connection refused"))
	assert.NotContains(t, httpErr.Message, "10.0.0.5")
}
