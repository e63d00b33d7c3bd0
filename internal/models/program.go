package models

import (
	"time"
)

type Program struct {
	PK    uint   `json:"pk" gorm:"primaryKey"`
	Title string `json:"title" gorm:"not null;size:50"`

	Exercises []Exercise `json:"exercises" gorm:"many2many:programs_exercises;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Program) TableName() string {
	return "programs"
}
