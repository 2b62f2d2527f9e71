package services

import (
	"errors"

	"quizbox/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db    *gorm.DB
	cache *QuizCache
}

func NewQuizService(db *gorm.DB, cache *QuizCache) *QuizService {
	return &QuizService{db: db, cache: cache}
}

type CreateAnswerRequest struct {
	Title      string   `json:"title" binding:"required"`
	AfterTitle *string  `json:"after_title"`
	PhotosURL  []string `json:"photos_url"`
	IsCorrect  *bool    `json:"is_correct"`
}

type CreateQuestionRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description *string               `json:"description"`
	PhotosURL   []string              `json:"photos_url"`
	Answers     []CreateAnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

type CreateQuizRequest struct {
	Title        string                  `json:"title" binding:"required"`
	Description  *string                 `json:"description"`
	PhotosURL    []string                `json:"photos_url"`
	PreviewPhoto *string                 `json:"preview_photo"`
	Questions    []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// ListQuizzes returns quiz summaries without nested detail, each annotated
// with the user's completion state: completed once the user's answer count
// matches the quiz's question count.
func (s *QuizService) ListQuizzes(userID string) ([]QuizSummary, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("id").Find(&quizzes).Error; err != nil {
		return nil, err
	}

	questionCounts, err := s.countByQuiz(s.db.Model(&models.Question{}))
	if err != nil {
		return nil, err
	}
	answeredCounts, err := s.countByQuiz(
		s.db.Model(&models.UserAnswer{}).Where("user_id = ?", userID))
	if err != nil {
		return nil, err
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, QuizSummary{
			ID:            quiz.ID,
			Title:         quiz.Title,
			Description:   quiz.Description,
			PhotosURL:     quiz.PhotosURL,
			PreviewPhoto:  quiz.PreviewPhoto,
			QuestionCount: questionCounts[quiz.ID],
			IsCompleted:   answeredCounts[quiz.ID] == questionCounts[quiz.ID],
		})
	}
	return summaries, nil
}

// GetQuiz returns the full nested quiz annotated with the user's state.
func (s *QuizService) GetQuiz(quizID uint, userID string) (*QuizDetail, error) {
	quiz, err := s.loadQuizTree(quizID)
	if err != nil {
		return nil, err
	}

	var userAnswers []models.UserAnswer
	if err := s.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Find(&userAnswers).Error; err != nil {
		return nil, err
	}

	return buildQuizDetail(quiz, userAnswers), nil
}

// CreateQuiz authors a quiz with its questions and answers in one
// transaction, so a failure partway through leaves nothing behind.
func (s *QuizService) CreateQuiz(userID string, req *CreateQuizRequest) (*QuizDetail, error) {
	if len(req.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, q := range req.Questions {
		if len(q.Answers) == 0 {
			return nil, ErrNoAnswers
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{
		Title:        req.Title,
		Description:  req.Description,
		PhotosURL:    req.PhotosURL,
		PreviewPhoto: req.PreviewPhoto,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, qReq := range req.Questions {
		question := models.Question{
			QuizID:      quiz.ID,
			Title:       qReq.Title,
			Description: qReq.Description,
			PhotosURL:   qReq.PhotosURL,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		for _, aReq := range qReq.Answers {
			answer := models.Answer{
				QuestionID: question.ID,
				Title:      aReq.Title,
				AfterTitle: aReq.AfterTitle,
				PhotosURL:  aReq.PhotosURL,
				IsCorrect:  aReq.IsCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(quiz.ID)

	return s.GetQuiz(quiz.ID, userID)
}

// loadQuizTree fetches the content tree, via the cache when one is wired.
func (s *QuizService) loadQuizTree(quizID uint) (*models.Quiz, error) {
	return s.cache.GetOrLoad(quizID, func() (*models.Quiz, error) {
		var quiz models.Quiz
		err := s.db.
			Preload("Questions", func(db *gorm.DB) *gorm.DB {
				return db.Order("questions.id")
			}).
			Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
				return db.Order("answers.id")
			}).
			First(&quiz, quizID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrQuizNotFound
			}
			return nil, err
		}
		return &quiz, nil
	})
}

func (s *QuizService) countByQuiz(query *gorm.DB) (map[uint]int, error) {
	var rows []struct {
		QuizID uint
		N      int
	}
	if err := query.Select("quiz_id, count(*) as n").Group("quiz_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.QuizID] = row.N
	}
	return counts, nil
}
