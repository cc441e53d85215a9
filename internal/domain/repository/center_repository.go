package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

type CenterRepository interface {
	Create(db *gorm.DB, center *entity.Center) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Center, error)
	FindAll(db *gorm.DB) ([]entity.Center, error)
	Update(db *gorm.DB, center *entity.Center) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
