package models

import (
	"time"
)

// Stats is a user's score snapshot for a quiz, written exactly once when the
// last open question is answered. The unique index is the guard against a
// second snapshot slipping in under concurrent final submissions.
type Stats struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:255;not null;uniqueIndex:uq_user_quiz"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;uniqueIndex:uq_user_quiz"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	CorrectAnswers []Answer `json:"correct_answers,omitempty" gorm:"many2many:stats_answers"`
}
