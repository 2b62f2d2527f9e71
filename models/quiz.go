package models

import (
	"time"
)

type Quiz struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Title        string      `json:"title" gorm:"not null"`
	Description  *string     `json:"description"`
	PhotosURL    StringArray `json:"photos_url" gorm:"type:jsonb"`
	PreviewPhoto *string     `json:"preview_photo"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
