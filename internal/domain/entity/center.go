package entity

import (
	"time"

	"github.com/google/uuid"
)

// Center represents a medical center that hosts offerings
type Center struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Address   string     `gorm:"type:text" json:"address,omitempty"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	IsActive  *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner     *User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Offerings []Offering `gorm:"foreignKey:CenterID" json:"offerings,omitempty"`
}

func (Center) TableName() string {
	return "centers"
}
