package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

type WeeklyScheduleRepository interface {
	FindByOfferingID(db *gorm.DB, offeringID uuid.UUID) ([]entity.WeeklySchedule, error)
	FindByOfferingAndDay(db *gorm.DB, offeringID uuid.UUID, dayOfWeek int) (*entity.WeeklySchedule, error)
	// FindSiblingsByCenter returns the available schedule entries of every
	// other active offering at the center, with Offering preloaded for
	// conflict descriptions.
	FindSiblingsByCenter(db *gorm.DB, centerID uuid.UUID, excludeOfferingID uuid.UUID) ([]entity.WeeklySchedule, error)
	// ReplaceForOffering swaps the offering's whole weekly schedule in one
	// statement pair; callers run it inside a transaction so a failure
	// leaves the previous schedule intact.
	ReplaceForOffering(db *gorm.DB, offeringID uuid.UUID, entries []entity.WeeklySchedule) error
}
