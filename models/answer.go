package models

import (
	"time"
)

// Answer is one selectable option of a question. IsCorrect is three-valued:
// nil means the answer was never graded and it never counts as correct.
type Answer struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	QuestionID uint        `json:"question_id" gorm:"index;not null"`
	Title      string      `json:"title" gorm:"not null"`
	AfterTitle *string     `json:"after_title"`
	PhotosURL  StringArray `json:"photos_url" gorm:"type:jsonb"`
	IsCorrect  *bool       `json:"is_correct"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Relationships
	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
}

// Correct reports whether the answer is explicitly graded as correct.
func (a *Answer) Correct() bool {
	return a.IsCorrect != nil && *a.IsCorrect
}
