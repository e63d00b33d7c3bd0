package models

import (
	"time"
)

// UserProgram records that a user saved a program to their personal list.
// The composite unique index is the final guard against duplicate saves;
// the service-level check is only best-effort under concurrency.
type UserProgram struct {
	PK        uint `json:"pk" gorm:"primaryKey"`
	UserPK    uint `json:"user_pk" gorm:"not null;uniqueIndex:idx_user_program"`
	ProgramPK uint `json:"program_pk" gorm:"not null;uniqueIndex:idx_user_program"`

	CreatedAt time.Time `json:"created_at"`
}

func (UserProgram) TableName() string {
	return "users_programs"
}
