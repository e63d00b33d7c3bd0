package models

import (
	"time"

	"gorm.io/datatypes"
)

// Exercise is authored by trainers. The media columns hold references to
// already uploaded assets; binary upload is handled outside this service.
type Exercise struct {
	PK             uint   `json:"pk" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"uniqueIndex;not null;size:50"`
	Description    string `json:"description" gorm:"not null"`
	PhotoTutorial  string `json:"photo_tutorial" gorm:"not null;size:500"`
	PhotoExtension string `json:"photo_extension" gorm:"not null;size:10"`
	Video          string `json:"video" gorm:"not null;size:500"`
	VideoExtension string `json:"video_extension" gorm:"not null;size:10"`
	Author         string `json:"author" gorm:"not null;size:201"`

	Tags datatypes.JSON `json:"tags,omitempty" gorm:"type:jsonb"` // []string, muscle groups

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}
