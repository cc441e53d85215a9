package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
	domainRepo "github.com/kashfety/kashfety-api/internal/domain/repository"
)

type offeringRepository struct{}

func NewOfferingRepository() domainRepo.OfferingRepository {
	return &offeringRepository{}
}

func (r *offeringRepository) Create(db *gorm.DB, offering *entity.Offering) error {
	return db.Create(offering).Error
}

func (r *offeringRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Offering, error) {
	var offering entity.Offering
	err := db.Preload("Center").Preload("Doctor").Where("id = ?", id).First(&offering).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offering, nil
}

func (r *offeringRepository) FindByCenterID(db *gorm.DB, centerID uuid.UUID) ([]entity.Offering, error) {
	var offerings []entity.Offering
	err := db.Preload("Doctor").
		Where("center_id = ? AND is_active = ?", centerID, true).
		Order("name ASC").
		Find(&offerings).Error
	if err != nil {
		return nil, err
	}
	return offerings, nil
}

func (r *offeringRepository) Update(db *gorm.DB, offering *entity.Offering) error {
	return db.Omit("Center", "Doctor", "Schedules").Save(offering).Error
}

func (r *offeringRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Offering{})
	return affected.RowsAffected, affected.Error
}
