package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a patient booking occupying exactly one slot start
// time on one date for one offering. A partial unique index on
// (offering_id, booking_date, start_time) for non-cancelled rows is the
// final arbiter against double booking.
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	OfferingID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"offering_id"`
	BookingDate time.Time     `gorm:"type:date;not null;index" json:"booking_date"`
	StartTime   string        `gorm:"type:varchar(5);not null" json:"start_time"`
	BookingCode string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	Status      BookingStatus `gorm:"type:booking_status;not null;default:'pending';index" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Offering Offering `gorm:"foreignKey:OfferingID" json:"offering,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Confirm changes booking status to confirmed
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}

// Cancel changes booking status to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}
