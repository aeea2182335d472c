package repository

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"eventcraft/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*model.Booking, error)
	FindByRef(ctx context.Context, ref string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	ListByEvent(ctx context.Context, eventID uint) ([]model.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking. The (user_id, event_id) unique index makes this
// the single atomic insert-if-absent step of the booking flow; a duplicate
// surfaces as gorm.ErrDuplicatedKey.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByUserAndEvent(ctx context.Context, userID, eventID uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByRef resolves a booking by either its primary id or its ticket id.
func (r *bookingRepository) FindByRef(ctx context.Context, ref string) (*model.Booking, error) {
	id, _ := strconv.ParseUint(ref, 10, 64)

	var booking model.Booking
	if err := r.db.WithContext(ctx).Preload("User").Preload("Event").
		Where("ticket_id = ? OR id = ?", ref, id).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("Event").
		Where("user_id = ?", userID).
		Order("booked_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByEvent(ctx context.Context, eventID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("User").Preload("Event").
		Where("event_id = ?", eventID).
		Order("booked_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Booking{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
