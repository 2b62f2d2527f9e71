package services

import (
	"errors"

	"quizbox/models"

	"gorm.io/gorm"
)

// AnswerService runs the submission state machine: record a single answer,
// detect quiz completion and write the one-shot score snapshot.
type AnswerService struct {
	db      *gorm.DB
	quizzes *QuizService
	hub     *Hub
}

func NewAnswerService(db *gorm.DB, quizzes *QuizService, hub *Hub) *AnswerService {
	return &AnswerService{db: db, quizzes: quizzes, hub: hub}
}

// AnswerEvent is pushed to websocket subscribers after each recorded answer.
type AnswerEvent struct {
	QuizID     uint `json:"quiz_id"`
	QuestionID uint `json:"question_id"`
	AnswerID   uint `json:"answer_id"`
	Completed  bool `json:"completed"`
}

// SubmitAnswer records the user's choice and returns the updated quiz view.
//
// The user may answer each question once. The existence pre-check gives a
// friendly error on the common path; the unique index on (user_id,
// question_id) is what actually prevents duplicates when two submissions
// race. A lost race surfaces as ErrAlreadyAnswered, never as a second row.
//
// When the recorded answer is the quiz's last open question, the score
// snapshot is written. If that write conflicts with a concurrent final
// submission the conflict is returned, but the answer itself stays recorded:
// each step commits on its own.
func (s *AnswerService) SubmitAnswer(answerID uint, userID string) (*QuizDetail, error) {
	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}

	var question models.Question
	if err := s.db.First(&question, answer.QuestionID).Error; err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.UserAnswer{}).
		Where("user_id = ? AND question_id = ?", userID, question.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyAnswered
	}

	userAnswer := models.UserAnswer{
		UserID:     userID,
		QuizID:     question.QuizID,
		QuestionID: question.ID,
		AnswerID:   answer.ID,
	}
	if err := s.db.Create(&userAnswer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAnswered
		}
		return nil, err
	}

	completed, err := s.finalizeIfComplete(question.QuizID, userID)

	s.hub.BroadcastToQuiz(question.QuizID, "answer_submitted", AnswerEvent{
		QuizID:     question.QuizID,
		QuestionID: question.ID,
		AnswerID:   answer.ID,
		Completed:  completed,
	})

	if err != nil {
		return nil, err
	}

	return s.quizzes.GetQuiz(question.QuizID, userID)
}

// finalizeIfComplete writes the Stats snapshot once the user has answered
// every question of the quiz. The snapshot holds the answers that are both
// graded correct and chosen by the user. The unique index on (user_id,
// quiz_id) makes the completion transition one-shot.
func (s *AnswerService) finalizeIfComplete(quizID uint, userID string) (bool, error) {
	var answered, total int64
	if err := s.db.Model(&models.UserAnswer{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&answered).Error; err != nil {
		return false, err
	}
	if err := s.db.Model(&models.Question{}).
		Where("quiz_id = ?", quizID).
		Count(&total).Error; err != nil {
		return false, err
	}
	if answered != total {
		return false, nil
	}

	var correctChosen []models.Answer
	if err := s.db.
		Joins("JOIN user_answers ON user_answers.answer_id = answers.id").
		Where("user_answers.user_id = ? AND user_answers.quiz_id = ? AND answers.is_correct = ?",
			userID, quizID, true).
		Find(&correctChosen).Error; err != nil {
		return true, err
	}

	stats := models.Stats{
		UserID:         userID,
		QuizID:         quizID,
		CorrectAnswers: correctChosen,
	}
	// Omit keeps gorm from touching the answer rows; only the snapshot and
	// its join rows are inserted.
	if err := s.db.Omit("CorrectAnswers.*").Create(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, ErrStatsExists
		}
		return true, err
	}

	return true, nil
}
