package models

import (
	"time"
)

type Question struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	QuizID      uint        `json:"quiz_id" gorm:"index;not null"`
	Title       string      `json:"title" gorm:"not null"`
	Description *string     `json:"description"`
	PhotosURL   StringArray `json:"photos_url" gorm:"type:jsonb"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relationships
	Quiz    Quiz     `json:"-" gorm:"foreignKey:QuizID"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}
