package model

import "time"

// Venue describes where an event takes place. Stored inline on the event row.
type Venue struct {
	Name     string `json:"name" gorm:"column:venue_name;size:255"`
	Address  string `json:"address" gorm:"column:venue_address;size:255"`
	Capacity uint   `json:"capacity" gorm:"column:venue_capacity"`
}

// Vendor is a service provider attached to an event.
type Vendor struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	EventID uint   `json:"-" gorm:"not null;index"`
	Name    string `json:"name" gorm:"size:255"`
	Service string `json:"service" gorm:"size:255"`
	Contact string `json:"contact" gorm:"size:255"`
}

// Event represents an event owned by an organizer. Attendees holds the users
// who RSVPed; confirmed tickets live in bookings.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Venue       Venue     `json:"venue" gorm:"embedded"`
	Vendors     []Vendor  `json:"vendors,omitempty" gorm:"foreignKey:EventID"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`
	Organizer   *User     `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`
	Attendees   []User    `json:"attendees,omitempty" gorm:"many2many:event_attendees"`
	BookedCount uint      `json:"booked_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventAttendee is the explicit join model behind Event.Attendees. The
// composite primary key makes a repeated RSVP a duplicate-key conflict at the
// storage layer rather than a racy application-side check.
type EventAttendee struct {
	EventID   uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"primaryKey"`
	CreatedAt time.Time
}

// Summary returns the reduced shape embedded in booking responses.
func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:    e.ID,
		Title: e.Title,
		Date:  e.Date,
		Venue: e.Venue,
	}
}

// EventSummary is the reduced projection of an event.
type EventSummary struct {
	ID    uint      `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Venue Venue     `json:"venue"`
}
