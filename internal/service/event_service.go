package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"eventcraft/internal/cache"
	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/model"
	"eventcraft/internal/repository"
)

const (
	eventListCacheKey = "events:all"
	eventListCacheTTL = time.Minute
)

// EventUpdate carries mutable event fields. Zero values leave the stored field
// unchanged.
type EventUpdate struct {
	Title       string
	Description string
	Date        time.Time
	Category    string
	VenueName   string
	VenueAddr   string
	VenueCap    uint
}

// DashboardStats aggregates an organizer's own events.
type DashboardStats struct {
	TotalEvents int64 `json:"totalEvents"`
	TotalRSVPs  int64 `json:"totalRSVPs"`
}

// EventService handles the event registry and RSVPs.
type EventService interface {
	Create(ctx context.Context, organizerID uint, organizerRole string, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, callerID, eventID uint, update EventUpdate) (*model.Event, error)
	Delete(ctx context.Context, callerID, eventID uint) error
	ListAll(ctx context.Context) ([]model.Event, error)
	ListMine(ctx context.Context, organizerID uint) ([]model.Event, error)
	ListMyRSVPs(ctx context.Context, userID uint) ([]model.Event, error)
	RSVP(ctx context.Context, eventID, userID uint) (*model.Event, error)
	DashboardStats(ctx context.Context, organizerID uint) (*DashboardStats, error)
	ExportRSVPs(ctx context.Context, organizerID uint) ([][]string, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

// Create persists an event owned by the caller. Only organizers may create.
func (s *eventService) Create(ctx context.Context, organizerID uint, organizerRole string, event *model.Event) (*model.Event, error) {
	if organizerRole != model.RoleOrganizer {
		return nil, eerrors.ErrOrganizerOnly
	}

	event.ID = 0
	event.OrganizerID = organizerID
	event.BookedCount = 0
	event.Attendees = nil

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

// Update applies the changed fields after an ownership check.
func (s *eventService) Update(ctx context.Context, callerID, eventID uint, update EventUpdate) (*model.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != callerID {
		return nil, eerrors.ErrForbidden
	}

	if update.Title != "" {
		event.Title = update.Title
	}
	if update.Description != "" {
		event.Description = update.Description
	}
	if !update.Date.IsZero() {
		event.Date = update.Date
	}
	if update.Category != "" {
		event.Category = update.Category
	}
	if update.VenueName != "" {
		event.Venue.Name = update.VenueName
	}
	if update.VenueAddr != "" {
		event.Venue.Address = update.VenueAddr
	}
	if update.VenueCap != 0 {
		event.Venue.Capacity = update.VenueCap
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

// Delete removes an event after an ownership check.
func (s *eventService) Delete(ctx context.Context, callerID, eventID uint) error {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != callerID {
		return eerrors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}

// ListAll returns every event, cached briefly since it backs the public
// landing page.
func (s *eventService) ListAll(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, eventListCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, eventListCacheKey, payload, eventListCacheTTL)
	}
	return events, nil
}

func (s *eventService) ListMine(ctx context.Context, organizerID uint) ([]model.Event, error) {
	return s.repo.ListByOrganizer(ctx, organizerID)
}

func (s *eventService) ListMyRSVPs(ctx context.Context, userID uint) ([]model.Event, error) {
	return s.repo.ListRSVPed(ctx, userID)
}

// RSVP appends the caller to the event's attendee list. The join table's
// composite key rejects a second RSVP for the same pair.
func (s *eventService) RSVP(ctx context.Context, eventID, userID uint) (*model.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddAttendee(ctx, eventID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, eerrors.ErrAlreadyRSVPed
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

func (s *eventService) DashboardStats(ctx context.Context, organizerID uint) (*DashboardStats, error) {
	events, err := s.repo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	rsvps, err := s.repo.CountRSVPs(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{TotalEvents: int64(len(events)), TotalRSVPs: rsvps}, nil
}

// ExportRSVPs flattens the organizer's events and their attendees into CSV
// rows, header first.
func (s *eventService) ExportRSVPs(ctx context.Context, organizerID uint) ([][]string, error) {
	events, err := s.repo.ListByOrganizerWithAttendees(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"EventTitle", "EventDate", "AttendeeName", "AttendeeEmail"}}
	for _, event := range events {
		for _, attendee := range event.Attendees {
			rows = append(rows, []string{
				event.Title,
				event.Date.UTC().Format(time.RFC3339),
				attendee.Name,
				attendee.Email,
			})
		}
	}
	return rows, nil
}

func (s *eventService) findEvent(ctx context.Context, eventID uint) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eerrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
