package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
	domainRepo "github.com/kashfety/kashfety-api/internal/domain/repository"
)

type centerRepository struct{}

func NewCenterRepository() domainRepo.CenterRepository {
	return &centerRepository{}
}

func (r *centerRepository) Create(db *gorm.DB, center *entity.Center) error {
	return db.Create(center).Error
}

func (r *centerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Center, error) {
	var center entity.Center
	err := db.Preload("Owner").Where("id = ?", id).First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *centerRepository) FindAll(db *gorm.DB) ([]entity.Center, error) {
	var centers []entity.Center
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *centerRepository) Update(db *gorm.DB, center *entity.Center) error {
	return db.Omit("Owner", "Offerings").Save(center).Error
}

func (r *centerRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Center{})
	return affected.RowsAffected, affected.Error
}
