package services

import (
	"quizbox/models"
)

// Correctness is the disclosure state of an answer's grading in a per-user
// view. It stays hidden until the user has answered the owning question, so
// clients cannot read the key before submitting.
const (
	CorrectnessHidden    = "hidden"
	CorrectnessCorrect   = "correct"
	CorrectnessIncorrect = "incorrect"
)

type AnswerView struct {
	ID          uint     `json:"id"`
	QuestionID  uint     `json:"question_id"`
	Title       string   `json:"title"`
	AfterTitle  *string  `json:"after_title"`
	PhotosURL   []string `json:"photos_url"`
	IsChosen    bool     `json:"is_chosen"`
	Correctness string   `json:"correctness"`
}

type QuestionView struct {
	ID          uint         `json:"id"`
	QuizID      uint         `json:"quiz_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	PhotosURL   []string     `json:"photos_url"`
	IsAnswered  bool         `json:"is_answered"`
	Answers     []AnswerView `json:"answers"`
}

type QuizSummary struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	PhotosURL     []string `json:"photos_url"`
	PreviewPhoto  *string  `json:"preview_photo"`
	QuestionCount int      `json:"question_count"`
	IsCompleted   bool     `json:"is_completed"`
}

type QuizDetail struct {
	QuizSummary
	Questions []QuestionView `json:"questions"`
}

// buildQuizDetail annotates a quiz content tree with one user's state:
// chosen answers, answered questions, disclosure and completion.
func buildQuizDetail(quiz *models.Quiz, userAnswers []models.UserAnswer) *QuizDetail {
	chosen := make(map[uint]bool, len(userAnswers))
	answered := make(map[uint]bool, len(userAnswers))
	for _, ua := range userAnswers {
		chosen[ua.AnswerID] = true
		answered[ua.QuestionID] = true
	}

	detail := &QuizDetail{
		QuizSummary: QuizSummary{
			ID:            quiz.ID,
			Title:         quiz.Title,
			Description:   quiz.Description,
			PhotosURL:     quiz.PhotosURL,
			PreviewPhoto:  quiz.PreviewPhoto,
			QuestionCount: len(quiz.Questions),
			IsCompleted:   len(userAnswers) == len(quiz.Questions),
		},
		Questions: make([]QuestionView, 0, len(quiz.Questions)),
	}

	for _, q := range quiz.Questions {
		qv := QuestionView{
			ID:          q.ID,
			QuizID:      q.QuizID,
			Title:       q.Title,
			Description: q.Description,
			PhotosURL:   q.PhotosURL,
			IsAnswered:  answered[q.ID],
			Answers:     make([]AnswerView, 0, len(q.Answers)),
		}
		for i := range q.Answers {
			a := &q.Answers[i]
			av := AnswerView{
				ID:          a.ID,
				QuestionID:  a.QuestionID,
				Title:       a.Title,
				PhotosURL:   a.PhotosURL,
				IsChosen:    chosen[a.ID],
				Correctness: CorrectnessHidden,
			}
			// The after-text is only revealed on the answer the user picked.
			if av.IsChosen {
				av.AfterTitle = a.AfterTitle
			}
			if qv.IsAnswered {
				if a.Correct() {
					av.Correctness = CorrectnessCorrect
				} else {
					av.Correctness = CorrectnessIncorrect
				}
			}
			qv.Answers = append(qv.Answers, av)
		}
		detail.Questions = append(detail.Questions, qv)
	}

	return detail
}
