package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/converter"
	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
	"github.com/kashfety/kashfety-api/internal/domain/repository"
	"github.com/kashfety/kashfety-api/internal/scheduling"
	"github.com/kashfety/kashfety-api/internal/service"
)

type ScheduleUsecase interface {
	GetWeeklySchedule(ctx context.Context, offeringID uuid.UUID) (*dto.ScheduleResponse, error)
	// SaveWeeklySchedule validates the proposed entries, rejects them as a
	// whole when any overlaps a sibling offering's windows, and otherwise
	// replaces the offering's entire weekly schedule transactionally.
	SaveWeeklySchedule(ctx context.Context, actorID uuid.UUID, offeringID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	offeringRepo repository.OfferingRepository
	scheduleRepo repository.WeeklyScheduleRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	offeringRepo repository.OfferingRepository,
	scheduleRepo repository.WeeklyScheduleRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		offeringRepo: offeringRepo,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *scheduleUsecase) GetWeeklySchedule(ctx context.Context, offeringID uuid.UUID) (*dto.ScheduleResponse, error) {
	offering, err := u.offeringRepo.FindByID(u.db.WithContext(ctx), offeringID)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return nil, err
	}
	if offering == nil {
		return nil, scheduling.ErrMissingOfferingReference
	}

	entries, err := u.scheduleRepo.FindByOfferingID(u.db.WithContext(ctx), offeringID)
	if err != nil {
		u.log.Warnf("Failed to load weekly schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleEntriesToResponse(offeringID, entries), nil
}

func (u *scheduleUsecase) SaveWeeklySchedule(ctx context.Context, actorID uuid.UUID, offeringID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	offering, err := u.offeringRepo.FindByID(u.db.WithContext(ctx), offeringID)
	if err != nil {
		u.log.Warnf("Failed to find offering: %+v", err)
		return nil, err
	}
	if offering == nil {
		return nil, scheduling.ErrMissingOfferingReference
	}

	// Validate every entry before touching the database
	entries := make([]entity.WeeklySchedule, 0, len(req.Entries))
	seenDays := make(map[int]bool, len(req.Entries))
	for i := range req.Entries {
		entry := converter.ScheduleEntryFromRequest(offeringID, &req.Entries[i])
		if err := scheduling.ValidateEntry(&entry); err != nil {
			return nil, err
		}
		if seenDays[entry.DayOfWeek] {
			return nil, fmt.Errorf("%w: duplicate entry for day_of_week %d",
				scheduling.ErrInvalidScheduleInput, entry.DayOfWeek)
		}
		seenDays[entry.DayOfWeek] = true
		entries = append(entries, entry)
	}

	// Check the proposed windows against every other offering at the center
	siblingEntries, err := u.scheduleRepo.FindSiblingsByCenter(u.db.WithContext(ctx), offering.CenterID, offeringID)
	if err != nil {
		u.log.Warnf("Failed to load sibling schedules: %+v", err)
		return nil, err
	}

	siblings := make(map[int][]scheduling.SiblingSchedule)
	for _, sibling := range siblingEntries {
		siblings[sibling.DayOfWeek] = append(siblings[sibling.DayOfWeek], scheduling.SiblingSchedule{
			OfferingName: sibling.Offering.Name,
			Entry:        sibling,
		})
	}

	if conflicts := scheduling.CheckConflicts(entries, siblings); len(conflicts) > 0 {
		u.log.Warnf("Schedule save rejected with %d conflict(s) for offering %s", len(conflicts), offeringID)
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, entity.AuditActionScheduleConflicted, "weekly_schedule", offeringID.String(), conflicts); err != nil {
			u.log.Warnf("Failed to write audit log: %+v", err)
		}
		return nil, &scheduling.ConflictError{Conflicts: conflicts}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.ReplaceForOffering(tx, offeringID, entries); err != nil {
		u.log.Warnf("Failed to replace weekly schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionScheduleSave, "weekly_schedule", offeringID.String(), nil, entries); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	saved, err := u.scheduleRepo.FindByOfferingID(u.db.WithContext(ctx), offeringID)
	if err != nil {
		u.log.Warnf("Failed to reload weekly schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleEntriesToResponse(offeringID, saved), nil
}
