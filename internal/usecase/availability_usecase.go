package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/repository"
	"github.com/kashfety/kashfety-api/internal/scheduling"
)

type AvailabilityUsecase interface {
	// GetAvailableSlots returns every slot of the offering's schedule for
	// the date's weekday, each marked available or not against existing
	// bookings and the break window. excludeBookingID lets a reschedule
	// treat its own slot as free.
	GetAvailableSlots(ctx context.Context, offeringID uuid.UUID, dateStr string, excludeBookingID *uuid.UUID) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	offeringRepo repository.OfferingRepository
	scheduleRepo repository.WeeklyScheduleRepository
	bookingRepo  repository.BookingRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	offeringRepo repository.OfferingRepository,
	scheduleRepo repository.WeeklyScheduleRepository,
	bookingRepo repository.BookingRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		offeringRepo: offeringRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
	}
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, offeringID uuid.UUID, dateStr string, excludeBookingID *uuid.UUID) (*dto.AvailabilityResponse, error) {
	if offeringID == uuid.Nil || dateStr == "" {
		return nil, scheduling.ErrMissingOfferingReference
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", scheduling.ErrInvalidScheduleInput, dateStr)
	}

	offering, err := u.offeringRepo.FindByID(u.db.WithContext(ctx), offeringID)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return nil, err
	}
	if offering == nil {
		return nil, scheduling.ErrMissingOfferingReference
	}

	dayOfWeek := int(date.Weekday())

	entry, err := u.scheduleRepo.FindByOfferingAndDay(u.db.WithContext(ctx), offeringID, dayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to load schedule entry: %+v", err)
		return nil, err
	}

	bookings, err := u.bookingRepo.FindForOfferingDate(u.db.WithContext(ctx), offeringID, date)
	if err != nil {
		u.log.Warnf("Failed to load bookings: %+v", err)
		return nil, err
	}

	booked := scheduling.BookedTimesFromBookings(bookings, excludeBookingID)
	slots := scheduling.ResolveAvailability(entry, booked)

	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			Time:        slot.Time,
			IsAvailable: slot.IsAvailable,
		}
	}

	return &dto.AvailabilityResponse{
		OfferingID: offeringID,
		Date:       dateStr,
		DayOfWeek:  dayOfWeek,
		Slots:      responses,
		Total:      len(responses),
	}, nil
}
