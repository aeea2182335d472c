package model

import "time"

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	// BookingStatusConfirmed is the only status a booking takes today.
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking is a confirmed admission record for one user at one event. The
// composite unique index on (user_id, event_id) enforces at most one booking
// per pair; concurrent duplicate requests lose at insert time instead of
// racing an application-side existence check.
type Booking struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	UserID   uint          `json:"user_id" gorm:"not null;uniqueIndex:idx_bookings_user_event"`
	EventID  uint          `json:"event_id" gorm:"not null;uniqueIndex:idx_bookings_user_event"`
	TicketID string        `json:"ticketId" gorm:"column:ticket_id;size:16;not null;uniqueIndex"`
	Status   BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed'"`
	BookedAt time.Time     `json:"bookedAt" gorm:"not null"`

	// Relations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}
