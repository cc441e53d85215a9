package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

type OfferingRepository interface {
	Create(db *gorm.DB, offering *entity.Offering) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Offering, error)
	FindByCenterID(db *gorm.DB, centerID uuid.UUID) ([]entity.Offering, error)
	Update(db *gorm.DB, offering *entity.Offering) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
