package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
	domainRepo "github.com/kashfety/kashfety-api/internal/domain/repository"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Offering.Center").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.BookingFilter) ([]entity.Booking, error) {
	query := db.Preload("Offering.Center").
		Where("patient_id = ?", patientID)

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.StartAt != "" {
			query = query.Where("booking_date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("booking_date <= ?", filter.EndAt)
		}
		if filter.CenterName != "" {
			query = query.Joins("JOIN offerings ON offerings.id = bookings.offering_id").
				Joins("JOIN centers ON centers.id = offerings.center_id").
				Where("centers.name ILIKE ?", "%"+filter.CenterName+"%")
		}
	}

	var bookings []entity.Booking
	err := query.Order("booking_date DESC, start_time DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindForOfferingDate(db *gorm.DB, offeringID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("offering_id = ? AND booking_date = ?", offeringID, date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking atomically cancels a booking ONLY if it's not already cancelled.
// Returns affected rows: 1 = success, 0 = already cancelled (prevents double-cancel race).
func (r *bookingRepository) CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCancelled).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}

// UpdateSlot moves a non-cancelled booking to a new date and start time.
// The partial unique index on (offering_id, booking_date, start_time)
// rejects the write if another booking took the target slot meanwhile.
func (r *bookingRepository) UpdateSlot(db *gorm.DB, id uuid.UUID, date time.Time, startTime string) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCancelled).
		Updates(map[string]interface{}{
			"booking_date": date.Format("2006-01-02"),
			"start_time":   startTime,
		})
	return result.RowsAffected, result.Error
}
