package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDSuperAdmin = 1
	RoleIDAdmin      = 2
	RoleIDCenter     = 3
	RoleIDDoctor     = 4
	RoleIDPatient    = 5
)

// RoleNames constants
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleCenter     = "center"
	RoleDoctor     = "doctor"
	RolePatient    = "patient"
)
