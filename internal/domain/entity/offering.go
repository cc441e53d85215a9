package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferingKind distinguishes what kind of service an offering books
type OfferingKind string

const (
	OfferingKindDoctor  OfferingKind = "doctor"
	OfferingKindLabTest OfferingKind = "lab_test"
)

// Offering is a bookable service identity at a center: either a doctor's
// practice or a lab test type. Each offering owns one weekly schedule.
type Offering struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CenterID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"center_id"`
	Kind      OfferingKind `gorm:"type:offering_kind;not null" json:"kind"`
	DoctorID  *uuid.UUID   `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	TestType  string       `gorm:"type:varchar(100)" json:"test_type,omitempty"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  *bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Center    Center           `gorm:"foreignKey:CenterID" json:"center,omitempty"`
	Doctor    *User            `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Schedules []WeeklySchedule `gorm:"foreignKey:OfferingID" json:"schedules,omitempty"`
}

func (Offering) TableName() string {
	return "offerings"
}

// IsDoctor checks if the offering books a doctor's practice
func (o *Offering) IsDoctor() bool {
	return o.Kind == OfferingKindDoctor
}

// IsLabTest checks if the offering books a lab test type
func (o *Offering) IsLabTest() bool {
	return o.Kind == OfferingKindLabTest
}
