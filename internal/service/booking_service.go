package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/model"
	"eventcraft/internal/repository"
)

// BookingConfirmation is the success payload of a booking.
type BookingConfirmation struct {
	BookingID uint      `json:"id"`
	TicketID  string    `json:"ticketId"`
	Event     string    `json:"event"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
}

// BookingService handles ticket issuance and lookup.
type BookingService interface {
	Book(ctx context.Context, userID uint, eventRef string) (*BookingConfirmation, error)
	GetTicket(ctx context.Context, ref string) (*model.Booking, error)
	ListMyBookings(ctx context.Context, userID uint) ([]model.Booking, error)
	ListEventTickets(ctx context.Context, callerID uint, callerRole string, eventID uint) ([]model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, eventRepo repository.EventRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

// Book issues a ticket for the caller on the given event. The insert rides the
// (user, event) unique index, so a concurrent duplicate request comes back as
// DuplicateBookingError rather than a second ticket.
func (s *bookingService) Book(ctx context.Context, userID uint, eventRef string) (*BookingConfirmation, error) {
	eventID, err := strconv.ParseUint(eventRef, 10, 32)
	if err != nil || eventID == 0 {
		return nil, eerrors.ErrInvalidEventID
	}

	event, err := s.eventRepo.FindByID(ctx, uint(eventID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eerrors.ErrEventNotFound
		}
		return nil, err
	}

	if event.Date.Before(time.Now()) {
		return nil, eerrors.ErrEventExpired
	}

	ticketID, err := newTicketID()
	if err != nil {
		return nil, fmt.Errorf("generate ticket id: %w", err)
	}

	booking := &model.Booking{
		UserID:   userID,
		EventID:  event.ID,
		TicketID: ticketID,
		Status:   model.BookingStatusConfirmed,
		BookedAt: time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.bookingRepo.FindByUserAndEvent(ctx, userID, event.ID)
			if findErr != nil {
				return nil, fmt.Errorf("resolve existing booking: %w", findErr)
			}
			return nil, &eerrors.DuplicateBookingError{TicketID: existing.TicketID}
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Denormalized counter; a failed increment never unwinds the booking.
	if err := s.eventRepo.IncrementBookedCount(ctx, event.ID); err != nil {
		log.Printf("increment booked count for event %d: %v", event.ID, err)
	}

	return &BookingConfirmation{
		BookingID: booking.ID,
		TicketID:  booking.TicketID,
		Event:     event.Title,
		Date:      event.Date,
		Location:  event.Venue.Name,
	}, nil
}

// GetTicket resolves a booking by primary id or ticket id, joined with its
// event and user.
func (s *bookingService) GetTicket(ctx context.Context, ref string) (*model.Booking, error) {
	booking, err := s.bookingRepo.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eerrors.ErrTicketNotFound
		}
		return nil, err
	}
	return booking, nil
}

// ListMyBookings returns the caller's bookings, newest first.
func (s *bookingService) ListMyBookings(ctx context.Context, userID uint) ([]model.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// ListEventTickets returns every ticket for an event. Only the owning
// organizer or an admin may look.
func (s *bookingService) ListEventTickets(ctx context.Context, callerID uint, callerRole string, eventID uint) ([]model.Booking, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eerrors.ErrEventNotFound
		}
		return nil, err
	}

	if event.OrganizerID != callerID && callerRole != model.RoleAdmin {
		return nil, eerrors.ErrForbidden
	}

	return s.bookingRepo.ListByEvent(ctx, eventID)
}

// newTicketID renders 8 random bytes as 16 lowercase hex characters.
func newTicketID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
