package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.BookingFilter) ([]entity.Booking, error)
	// FindForOfferingDate returns every booking occupying a slot for one
	// offering on one calendar date, cancelled rows included; callers
	// filter via scheduling.BookedTimesFromBookings.
	FindForOfferingDate(db *gorm.DB, offeringID uuid.UUID, date time.Time) ([]entity.Booking, error)
	CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error)
	UpdateSlot(db *gorm.DB, id uuid.UUID, date time.Time, startTime string) (int64, error)
}
