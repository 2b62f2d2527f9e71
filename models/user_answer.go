package models

import (
	"time"
)

// UserAnswer records one user's choice for one question. QuizID and
// QuestionID are denormalized from the chosen answer so the one-answer-per-
// question rule is a real store constraint and completion checks are a
// single count.
type UserAnswer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"size:255;not null;uniqueIndex:uq_user_question"`
	QuizID     uint      `json:"quiz_id" gorm:"index;not null"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:uq_user_question"`
	AnswerID   uint      `json:"answer_id" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Answer Answer `json:"-" gorm:"foreignKey:AnswerID"`
}
