package models

import (
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleTrainer   UserRole = "trainer"
	RoleSuperUser UserRole = "super_user"
	RoleAdmin     UserRole = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleSuperUser, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	PK        uint     `json:"pk" gorm:"primaryKey"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string   `json:"-" gorm:"not null;size:255"`
	FirstName string   `json:"first_name" gorm:"not null;size:100"`
	LastName  string   `json:"last_name" gorm:"not null;size:100"`
	Role      UserRole `json:"role" gorm:"not null;size:20;default:user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
