package services

import (
	"errors"

	"quizbox/models"

	"gorm.io/gorm"
)

// StatsService serves the post-completion view of a quiz: the requesting
// user's score plus the global tallies across all users.
type StatsService struct {
	db      *gorm.DB
	quizzes *QuizService
}

func NewStatsService(db *gorm.DB, quizzes *QuizService) *StatsService {
	return &StatsService{db: db, quizzes: quizzes}
}

type AnswerTally struct {
	AnswerID uint   `json:"answer_id"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
}

type QuestionStats struct {
	QuestionID     uint          `json:"question_id"`
	Title          string        `json:"title"`
	CorrectCount   int           `json:"correct_count"`
	IncorrectCount int           `json:"incorrect_count"`
	Answers        []AnswerTally `json:"answers"`
}

type QuizStats struct {
	QuizID    uint            `json:"quiz_id"`
	Score     int             `json:"score"`
	Total     int             `json:"total"`
	Questions []QuestionStats `json:"questions"`
}

// GetQuizStats fails with ErrStatsNotFound until the requesting user has
// completed the quiz. The user's snapshot only gates access; the tallies
// aggregate every user's answers.
func (s *StatsService) GetQuizStats(quizID uint, userID string) (*QuizStats, error) {
	var snapshot models.Stats
	err := s.db.Preload("CorrectAnswers").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}

	quiz, err := s.quizzes.loadQuizTree(quizID)
	if err != nil {
		return nil, err
	}

	var allAnswers []models.UserAnswer
	if err := s.db.Where("quiz_id = ?", quizID).Find(&allAnswers).Error; err != nil {
		return nil, err
	}
	selections := make(map[uint]int, len(allAnswers))
	for _, ua := range allAnswers {
		selections[ua.AnswerID]++
	}

	stats := &QuizStats{
		QuizID:    quizID,
		Score:     len(snapshot.CorrectAnswers),
		Total:     len(quiz.Questions),
		Questions: make([]QuestionStats, 0, len(quiz.Questions)),
	}

	for _, q := range quiz.Questions {
		qs := QuestionStats{
			QuestionID: q.ID,
			Title:      q.Title,
			Answers:    make([]AnswerTally, 0, len(q.Answers)),
		}
		for i := range q.Answers {
			a := &q.Answers[i]
			count := selections[a.ID]
			if a.Correct() {
				qs.CorrectCount += count
			} else {
				qs.IncorrectCount += count
			}
			qs.Answers = append(qs.Answers, AnswerTally{
				AnswerID: a.ID,
				Title:    a.Title,
				Count:    count,
			})
		}
		stats.Questions = append(stats.Questions, qs)
	}

	return stats, nil
}
