package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/model"
)

var ticketIDPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

func futureEvent(id uint) *model.Event {
	return &model.Event{
		ID:    id,
		Title: "Go Meetup",
		Date:  time.Now().Add(48 * time.Hour),
		Venue: model.Venue{Name: "Downtown Hub"},
	}
}

func TestBookingService_Book(t *testing.T) {
	t.Run("successful booking issues a hex ticket", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(1)).Return(futureEvent(1), nil)
		mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
		mockEvents.On("IncrementBookedCount", mock.Anything, uint(1)).Return(nil)

		service := NewBookingService(mockBookings, mockEvents)
		confirmation, err := service.Book(context.Background(), 7, "1")

		assert.NoError(t, err)
		assert.NotNil(t, confirmation)
		assert.Equal(t, "Go Meetup", confirmation.Event)
		assert.Equal(t, "Downtown Hub", confirmation.Location)
		assert.Regexp(t, ticketIDPattern, confirmation.TicketID)

		mockBookings.AssertExpectations(t)
		mockEvents.AssertExpectations(t)
	})

	t.Run("ticket ids differ across bookings", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(1)).Return(futureEvent(1), nil)
		mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
		mockEvents.On("IncrementBookedCount", mock.Anything, uint(1)).Return(nil)

		service := NewBookingService(mockBookings, mockEvents)
		first, err := service.Book(context.Background(), 7, "1")
		assert.NoError(t, err)
		second, err := service.Book(context.Background(), 8, "1")
		assert.NoError(t, err)
		assert.NotEqual(t, first.TicketID, second.TicketID)
	})

	t.Run("duplicate booking returns existing ticket id", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(1)).Return(futureEvent(1), nil)
		mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(gorm.ErrDuplicatedKey)
		mockBookings.On("FindByUserAndEvent", mock.Anything, uint(7), uint(1)).Return(&model.Booking{
			UserID:   7,
			EventID:  1,
			TicketID: "a1b2c3d4e5f60718",
		}, nil)

		service := NewBookingService(mockBookings, mockEvents)
		confirmation, err := service.Book(context.Background(), 7, "1")

		assert.Nil(t, confirmation)
		var dup *eerrors.DuplicateBookingError
		assert.ErrorAs(t, err, &dup)
		assert.Equal(t, "a1b2c3d4e5f60718", dup.TicketID)
		mockEvents.AssertNotCalled(t, "IncrementBookedCount", mock.Anything, mock.Anything)
	})

	t.Run("past event is rejected", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(1)).Return(&model.Event{
			ID:   1,
			Date: time.Now().Add(-time.Hour),
		}, nil)

		service := NewBookingService(mockBookings, mockEvents)
		confirmation, err := service.Book(context.Background(), 7, "1")

		assert.Nil(t, confirmation)
		assert.ErrorIs(t, err, eerrors.ErrEventExpired)
		mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown event", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewBookingService(mockBookings, mockEvents)
		_, err := service.Book(context.Background(), 7, "99")
		assert.ErrorIs(t, err, eerrors.ErrEventNotFound)
	})

	t.Run("malformed event id", func(t *testing.T) {
		service := NewBookingService(new(MockBookingRepository), new(MockEventRepository))

		for _, ref := range []string{"abc", "", "0", "-1", "1.5"} {
			_, err := service.Book(context.Background(), 7, ref)
			assert.ErrorIs(t, err, eerrors.ErrInvalidEventID, "ref %q", ref)
		}
	})

	t.Run("counter failure does not fail the booking", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)

		mockEvents.On("FindByID", mock.Anything, uint(1)).Return(futureEvent(1), nil)
		mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
		mockEvents.On("IncrementBookedCount", mock.Anything, uint(1)).Return(assert.AnError)

		service := NewBookingService(mockBookings, mockEvents)
		confirmation, err := service.Book(context.Background(), 7, "1")

		assert.NoError(t, err)
		assert.NotNil(t, confirmation)
	})
}

func TestBookingService_GetTicket(t *testing.T) {
	t.Run("found by reference", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByRef", mock.Anything, "a1b2c3d4e5f60718").Return(&model.Booking{
			ID:       3,
			TicketID: "a1b2c3d4e5f60718",
		}, nil)

		service := NewBookingService(mockBookings, new(MockEventRepository))
		booking, err := service.GetTicket(context.Background(), "a1b2c3d4e5f60718")
		assert.NoError(t, err)
		assert.Equal(t, uint(3), booking.ID)
	})

	t.Run("missing ticket", func(t *testing.T) {
		mockBookings := new(MockBookingRepository)
		mockBookings.On("FindByRef", mock.Anything, "deadbeefdeadbeef").Return(nil, gorm.ErrRecordNotFound)

		service := NewBookingService(mockBookings, new(MockEventRepository))
		_, err := service.GetTicket(context.Background(), "deadbeefdeadbeef")
		assert.ErrorIs(t, err, eerrors.ErrTicketNotFound)
	})
}

func TestBookingService_ListEventTickets(t *testing.T) {
	event := futureEvent(1)
	event.OrganizerID = 5

	tests := []struct {
		name          string
		callerID      uint
		callerRole    string
		expectedError error
	}{
		{name: "owning organizer", callerID: 5, callerRole: model.RoleOrganizer},
		{name: "admin", callerID: 42, callerRole: model.RoleAdmin},
		{name: "other organizer forbidden", callerID: 6, callerRole: model.RoleOrganizer, expectedError: eerrors.ErrForbidden},
		{name: "attendee forbidden", callerID: 7, callerRole: model.RoleAttendee, expectedError: eerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			mockEvents := new(MockEventRepository)
			mockEvents.On("FindByID", mock.Anything, uint(1)).Return(event, nil)
			if tt.expectedError == nil {
				mockBookings.On("ListByEvent", mock.Anything, uint(1)).Return([]model.Booking{}, nil)
			}

			service := NewBookingService(mockBookings, mockEvents)
			_, err := service.ListEventTickets(context.Background(), tt.callerID, tt.callerRole, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockBookings.AssertExpectations(t)
		})
	}
}
