package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySchedule represents one recurring availability row for an offering
// on a single day of week (0 = Sunday .. 6 = Saturday). Times are local
// HH:MM strings; the optional break window is excluded at availability
// resolution time, never at slot generation time.
type WeeklySchedule struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OfferingID          uuid.UUID `gorm:"type:uuid;not null;index:idx_weekly_schedules_offering_day,unique" json:"offering_id"`
	DayOfWeek           int       `gorm:"not null;index:idx_weekly_schedules_offering_day,unique" json:"day_of_week"`
	IsAvailable         bool      `gorm:"not null;default:false" json:"is_available"`
	StartTime           string    `gorm:"type:varchar(5)" json:"start_time"`
	EndTime             string    `gorm:"type:varchar(5)" json:"end_time"`
	SlotDurationMinutes int       `gorm:"not null;default:30" json:"slot_duration_minutes"`
	BreakStart          *string   `gorm:"type:varchar(5)" json:"break_start,omitempty"`
	BreakEnd            *string   `gorm:"type:varchar(5)" json:"break_end,omitempty"`
	Notes               string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Offering Offering `gorm:"foreignKey:OfferingID" json:"offering,omitempty"`
}

func (WeeklySchedule) TableName() string {
	return "weekly_schedules"
}

// DayName returns the English weekday name for a 0-6 day index
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "unknown"
	}
	return time.Weekday(dayOfWeek).String()
}
