package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/converter"
	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/delivery/http/middleware"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
	"github.com/kashfety/kashfety-api/internal/domain/repository"
	"github.com/kashfety/kashfety-api/internal/scheduling"
	"github.com/kashfety/kashfety-api/internal/service"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingNotOwned         = errors.New("booking does not belong to you")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingPast             = errors.New("cannot book a past date")
	ErrSlotNotInSchedule       = errors.New("requested time is not a slot of the offering's schedule")
	ErrSlotTaken               = errors.New("requested slot is already booked")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
)

type BookingUsecase interface {
	GetMyBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error)
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	RescheduleBooking(ctx context.Context, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	offeringRepo    repository.OfferingRepository
	scheduleRepo    repository.WeeklyScheduleRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	offeringRepo repository.OfferingRepository,
	scheduleRepo repository.WeeklyScheduleRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		offeringRepo:    offeringRepo,
		scheduleRepo:    scheduleRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
	}
}

// GetMyBookings returns the logged-in patient's bookings, optionally
// narrowed by status, date range, or center name
func (u *bookingUsecase) GetMyBookings(ctx context.Context, filter *entity.BookingFilter) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByPatientID(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// CreateBooking books one slot with a Redis-first hold against concurrent
// requests for the same slot.
//
// Flow:
// 1. Validate the date and that the offering exists
// 2. Re-resolve availability and verify the requested time is a free slot
// 3. Acquire Redis slot hold (fast rejection of concurrent requests)
// 4. Insert booking; the partial unique index on non-cancelled rows is
//    the final arbiter
// 5. If DB insert fails -> compensate: release the hold
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrBookingPast
	}

	offering, err := u.offeringRepo.FindByID(u.db.WithContext(ctx), req.OfferingID)
	if err != nil {
		u.log.Warnf("Failed to find offering %s: %+v", req.OfferingID, err)
		return nil, err
	}
	if offering == nil {
		return nil, scheduling.ErrMissingOfferingReference
	}

	if err := u.verifySlotFree(ctx, req.OfferingID, date, req.Time, nil); err != nil {
		return nil, err
	}

	// Critical section: hold the slot so concurrent requests fail fast
	// before touching the database
	if err := u.slotHoldService.Acquire(ctx, req.OfferingID, date, req.Time, userID); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to acquire slot hold for offering %s: %+v", req.OfferingID, err)
		return nil, err
	}

	booking := &entity.Booking{
		PatientID:   userID,
		OfferingID:  req.OfferingID,
		BookingDate: date,
		StartTime:   req.Time,
		BookingCode: generateBookingCode(date),
		Status:      entity.BookingStatusPending,
		Notes:       req.Notes,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Errorf("Failed to insert booking to DB, releasing slot hold: %+v", err)
		u.releaseHold(req.OfferingID, date, req.Time, userID)

		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	// The unique index now protects the slot; drop the hold early instead
	// of waiting for its TTL
	u.releaseHold(req.OfferingID, date, req.Time, userID)

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), booking); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	// Reload booking with offering info for response
	fullBooking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || fullBooking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking created: id=%s, offering=%s, date=%s, time=%s, code=%s",
		booking.ID, req.OfferingID, req.Date, req.Time, booking.BookingCode)
	return converter.BookingToResponse(fullBooking), nil
}

// RescheduleBooking moves a booking to a new date and time. The booking's
// own slot is excluded from the availability check so moving within the
// same day works.
func (u *bookingUsecase) RescheduleBooking(ctx context.Context, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.PatientID != userID {
		return nil, ErrBookingNotOwned
	}
	if booking.IsCancelled() {
		return nil, ErrBookingAlreadyCancelled
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrBookingPast
	}

	if err := u.verifySlotFree(ctx, booking.OfferingID, date, req.Time, &bookingID); err != nil {
		return nil, err
	}

	if err := u.slotHoldService.Acquire(ctx, booking.OfferingID, date, req.Time, userID); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to acquire slot hold for offering %s: %+v", booking.OfferingID, err)
		return nil, err
	}

	rows, err := u.bookingRepo.UpdateSlot(u.db.WithContext(ctx), bookingID, date, req.Time)
	if err != nil {
		u.log.Errorf("Failed to reschedule booking, releasing slot hold: %+v", err)
		u.releaseHold(booking.OfferingID, date, req.Time, userID)

		if isDuplicateKeyError(err, "active_slot") {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	if rows == 0 {
		// Cancelled between the read above and the guarded update
		u.releaseHold(booking.OfferingID, date, req.Time, userID)
		return nil, ErrBookingAlreadyCancelled
	}

	u.releaseHold(booking.OfferingID, date, req.Time, userID)

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingReschedule, "booking", bookingID.String(), booking, req); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	fullBooking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil || fullBooking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		booking.BookingDate = date
		booking.StartTime = req.Time
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking rescheduled: id=%s, date=%s, time=%s", bookingID, req.Date, req.Time)
	return converter.BookingToResponse(fullBooking), nil
}

// CancelBooking cancels a booking, which frees its slot for other patients.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.PatientID != userID {
		return ErrBookingNotOwned
	}
	if booking.IsCancelled() {
		return ErrBookingAlreadyCancelled
	}

	rows, err := u.bookingRepo.CancelBooking(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if rows == 0 {
		return ErrBookingAlreadyCancelled
	}

	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionBookingCancel, "booking", bookingID.String(), booking, entity.BookingStatusCancelled); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
	}

	u.log.Infof("Booking cancelled: id=%s, offering=%s", bookingID, booking.OfferingID)
	return nil
}

// verifySlotFree re-resolves the offering's availability for the date and
// checks the requested time is a listed, free slot.
func (u *bookingUsecase) verifySlotFree(ctx context.Context, offeringID uuid.UUID, date time.Time, startTime string, excludeBookingID *uuid.UUID) error {
	entry, err := u.scheduleRepo.FindByOfferingAndDay(u.db.WithContext(ctx), offeringID, int(date.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to load schedule entry: %+v", err)
		return err
	}

	bookings, err := u.bookingRepo.FindForOfferingDate(u.db.WithContext(ctx), offeringID, date)
	if err != nil {
		u.log.Warnf("Failed to load bookings: %+v", err)
		return err
	}

	booked := scheduling.BookedTimesFromBookings(bookings, excludeBookingID)
	for _, slot := range scheduling.ResolveAvailability(entry, booked) {
		if slot.Time != startTime {
			continue
		}
		if !slot.IsAvailable {
			return ErrSlotTaken
		}
		return nil
	}

	return ErrSlotNotInSchedule
}

func (u *bookingUsecase) releaseHold(offeringID uuid.UUID, date time.Time, startTime string, ownerID uuid.UUID) {
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.slotHoldService.Release(releaseCtx, offeringID, date, startTime, ownerID); err != nil {
		// Non-fatal, the hold expires on its own TTL
		u.log.Warnf("Failed to release slot hold for offering %s: %+v", offeringID, err)
	}
}

// generateBookingCode generates a unique booking code: BK-YYYYMMDD-XXXXXX
func generateBookingCode(bookingDate time.Time) string {
	dateStr := bookingDate.Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	randomStr := fmt.Sprintf("%06X", randomBytes)
	return fmt.Sprintf("BK-%s-%s", dateStr, randomStr)
}
