package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
	domainRepo "github.com/kashfety/kashfety-api/internal/domain/repository"
)

type weeklyScheduleRepository struct{}

func NewWeeklyScheduleRepository() domainRepo.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{}
}

func (r *weeklyScheduleRepository) FindByOfferingID(db *gorm.DB, offeringID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var entries []entity.WeeklySchedule
	err := db.Where("offering_id = ?", offeringID).Order("day_of_week ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *weeklyScheduleRepository) FindByOfferingAndDay(db *gorm.DB, offeringID uuid.UUID, dayOfWeek int) (*entity.WeeklySchedule, error) {
	var entry entity.WeeklySchedule
	err := db.Where("offering_id = ? AND day_of_week = ?", offeringID, dayOfWeek).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// FindSiblingsByCenter returns available entries of every other active
// offering at the center, ordered so conflict reports come out stable.
func (r *weeklyScheduleRepository) FindSiblingsByCenter(db *gorm.DB, centerID uuid.UUID, excludeOfferingID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var entries []entity.WeeklySchedule
	err := db.
		Joins("JOIN offerings ON offerings.id = weekly_schedules.offering_id").
		Where("offerings.center_id = ?", centerID).
		Where("offerings.id != ?", excludeOfferingID).
		Where("offerings.is_active = ?", true).
		Where("weekly_schedules.is_available = ?", true).
		Preload("Offering").
		Order("weekly_schedules.day_of_week ASC, offerings.name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *weeklyScheduleRepository) ReplaceForOffering(db *gorm.DB, offeringID uuid.UUID, entries []entity.WeeklySchedule) error {
	if err := db.Where("offering_id = ?", offeringID).Delete(&entity.WeeklySchedule{}).Error; err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		entries[i].ID = 0
		entries[i].OfferingID = offeringID
	}
	return db.Create(&entries).Error
}
