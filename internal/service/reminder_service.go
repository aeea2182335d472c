package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventcraft/internal/mail"
	"eventcraft/internal/repository"
)

// reminderWindow is how far ahead the scan looks for starting events.
const reminderWindow = time.Hour

// ReminderService periodically mails RSVPed attendees of events starting
// soon. Fire-and-forget: failures are logged and never retried.
type ReminderService struct {
	eventRepo repository.EventRepository
	mailer    mail.Mailer
	interval  time.Duration
}

// NewReminderService creates a new reminder service.
func NewReminderService(eventRepo repository.EventRepository, mailer mail.Mailer, interval time.Duration) *ReminderService {
	return &ReminderService{
		eventRepo: eventRepo,
		mailer:    mailer,
		interval:  interval,
	}
}

// Start runs the reminder loop until ctx is canceled.
func (s *ReminderService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.SendDueReminders(ctx); err != nil {
					log.Printf("reminder run: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendDueReminders mails every attendee of events starting within the next
// hour. Per-recipient failures are logged and the scan continues.
func (s *ReminderService) SendDueReminders(ctx context.Context) error {
	now := time.Now()
	events, err := s.eventRepo.FindStartingBetween(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return fmt.Errorf("scan upcoming events: %w", err)
	}

	for _, event := range events {
		body := fmt.Sprintf("Reminder: Your event %q starts at %s", event.Title, event.Date.Format(time.RFC1123))
		for _, attendee := range event.Attendees {
			if err := s.mailer.Send(attendee.Email, "Event Reminder", body); err != nil {
				log.Printf("reminder mail to %s for event %d: %v", attendee.Email, event.ID, err)
			}
		}
	}
	return nil
}
