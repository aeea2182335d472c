package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"eventcraft/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uint) ([]model.Event, error)
	ListByOrganizerWithAttendees(ctx context.Context, organizerID uint) ([]model.Event, error)
	ListRSVPed(ctx context.Context, userID uint) ([]model.Event, error)
	AddAttendee(ctx context.Context, eventID, userID uint) error
	CountRSVPs(ctx context.Context, organizerID uint) (int64, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error)
	IncrementBookedCount(ctx context.Context, eventID uint) error
	Count(ctx context.Context) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes the event and its RSVP rows. Bookings referencing the event
// stay behind, matching the original system's non-cascading behavior.
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.EventAttendee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Vendor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, id).Error
	})
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Preload("Vendors").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Vendors").Preload("Organizer").
		Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Vendors").
		Where("organizer_id = ?", organizerID).
		Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByOrganizerWithAttendees(ctx context.Context, organizerID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Attendees").
		Where("organizer_id = ?", organizerID).
		Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListRSVPed(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Organizer").
		Joins("JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("event_attendees.user_id = ?", userID).
		Order("events.date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// AddAttendee records an RSVP. The join table's composite primary key turns a
// repeated RSVP into gorm.ErrDuplicatedKey.
func (r *eventRepository) AddAttendee(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Create(&model.EventAttendee{EventID: eventID, UserID: userID}).Error
}

func (r *eventRepository) CountRSVPs(ctx context.Context, organizerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EventAttendee{}).
		Joins("JOIN events ON events.id = event_attendees.event_id").
		Where("events.organizer_id = ?", organizerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *eventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("Attendees").
		Where("date BETWEEN ? AND ?", from, to).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// IncrementBookedCount bumps the denormalized ticket counter on the event row.
func (r *eventRepository) IncrementBookedCount(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", eventID).
		UpdateColumn("booked_count", gorm.Expr("booked_count + 1")).Error
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Event{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
