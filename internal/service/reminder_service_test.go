package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventcraft/internal/model"
)

func TestReminderService_SendDueReminders(t *testing.T) {
	t.Run("mails every attendee of upcoming events", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockMailer := new(MockMailer)

		mockEvents.On("FindStartingBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Event{
			{
				ID:    1,
				Title: "Go Meetup",
				Date:  time.Now().Add(30 * time.Minute),
				Attendees: []model.User{
					{Email: "aaron@example.com"},
					{Email: "bella@example.com"},
				},
			},
		}, nil)
		mockMailer.On("Send", "aaron@example.com", "Event Reminder", mock.Anything).Return(nil)
		mockMailer.On("Send", "bella@example.com", "Event Reminder", mock.Anything).Return(nil)

		service := NewReminderService(mockEvents, mockMailer, time.Minute)
		assert.NoError(t, service.SendDueReminders(context.Background()))
		mockMailer.AssertExpectations(t)
	})

	t.Run("per-recipient failures do not abort the run", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockMailer := new(MockMailer)

		mockEvents.On("FindStartingBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Event{
			{
				ID:    1,
				Title: "Go Meetup",
				Date:  time.Now().Add(30 * time.Minute),
				Attendees: []model.User{
					{Email: "bouncing@example.com"},
					{Email: "bella@example.com"},
				},
			},
		}, nil)
		mockMailer.On("Send", "bouncing@example.com", "Event Reminder", mock.Anything).Return(assert.AnError)
		mockMailer.On("Send", "bella@example.com", "Event Reminder", mock.Anything).Return(nil)

		service := NewReminderService(mockEvents, mockMailer, time.Minute)
		assert.NoError(t, service.SendDueReminders(context.Background()))
		mockMailer.AssertExpectations(t)
	})

	t.Run("scan failure is reported", func(t *testing.T) {
		mockEvents := new(MockEventRepository)
		mockEvents.On("FindStartingBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		service := NewReminderService(mockEvents, new(MockMailer), time.Minute)
		assert.Error(t, service.SendDueReminders(context.Background()))
	})
}
