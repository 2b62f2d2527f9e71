package services

import (
	"errors"
	"testing"

	"quizbox/models"
)

func TestListQuizzesCompletion(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db)
	svc := NewQuizService(db, nil)

	summaries, err := svc.ListQuizzes("u1")
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].QuestionCount != 2 {
		t.Errorf("expected 2 questions, got %d", summaries[0].QuestionCount)
	}
	if summaries[0].IsCompleted {
		t.Error("expected quiz incomplete before any answers")
	}

	for _, q := range quiz.Questions {
		ua := models.UserAnswer{
			UserID:     "u1",
			QuizID:     quiz.ID,
			QuestionID: q.ID,
			AnswerID:   q.Answers[0].ID,
		}
		if err := db.Create(&ua).Error; err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}

	summaries, err = svc.ListQuizzes("u1")
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if !summaries[0].IsCompleted {
		t.Error("expected quiz completed after answering every question")
	}

	// A different user sees the same quiz untouched.
	summaries, err = svc.ListQuizzes("u2")
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if summaries[0].IsCompleted {
		t.Error("completion must be scoped per user")
	}
}

func TestGetQuizAnnotations(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db)
	svc := NewQuizService(db, nil)

	q1 := quiz.Questions[0]
	ua := models.UserAnswer{
		UserID:     "u1",
		QuizID:     quiz.ID,
		QuestionID: q1.ID,
		AnswerID:   q1.Answers[0].ID,
	}
	if err := db.Create(&ua).Error; err != nil {
		t.Fatalf("record answer: %v", err)
	}

	detail, err := svc.GetQuiz(quiz.ID, "u1")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}

	if detail.IsCompleted {
		t.Error("one answered question out of two must not complete the quiz")
	}

	answered := detail.Questions[0]
	if !answered.IsAnswered {
		t.Error("expected first question marked answered")
	}
	if !answered.Answers[0].IsChosen {
		t.Error("expected chosen answer marked chosen")
	}
	if answered.Answers[0].AfterTitle == nil {
		t.Error("expected after_title revealed on the chosen answer")
	}
	if answered.Answers[1].AfterTitle != nil {
		t.Error("after_title must stay hidden on answers the user did not pick")
	}
	if answered.Answers[0].Correctness != CorrectnessCorrect {
		t.Errorf("expected correctness %q, got %q", CorrectnessCorrect, answered.Answers[0].Correctness)
	}
	if answered.Answers[1].Correctness != CorrectnessIncorrect {
		t.Errorf("expected correctness %q, got %q", CorrectnessIncorrect, answered.Answers[1].Correctness)
	}

	open := detail.Questions[1]
	if open.IsAnswered {
		t.Error("second question must not be marked answered")
	}
	for _, a := range open.Answers {
		if a.Correctness != CorrectnessHidden {
			t.Errorf("correctness must stay hidden before the question is answered, got %q", a.Correctness)
		}
		if a.AfterTitle != nil {
			t.Error("after_title must stay hidden before the answer is chosen")
		}
	}
}

func TestGetQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db, nil)

	if _, err := svc.GetQuiz(42, "u1"); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestCreateQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db, nil)

	detail, err := svc.CreateQuiz("author", &CreateQuizRequest{
		Title: "Flags",
		Questions: []CreateQuestionRequest{
			{
				Title: "Which flag is tricolor?",
				Answers: []CreateAnswerRequest{
					{Title: "France", IsCorrect: boolPtr(true)},
					{Title: "Japan", IsCorrect: boolPtr(false)},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if detail.QuestionCount != 1 {
		t.Errorf("expected 1 question, got %d", detail.QuestionCount)
	}
	if len(detail.Questions[0].Answers) != 2 {
		t.Errorf("expected 2 answers, got %d", len(detail.Questions[0].Answers))
	}
	for _, a := range detail.Questions[0].Answers {
		if a.Correctness != CorrectnessHidden {
			t.Errorf("freshly authored answers must not disclose grading, got %q", a.Correctness)
		}
	}
}

func TestCreateQuizValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db, nil)

	if _, err := svc.CreateQuiz("author", &CreateQuizRequest{Title: "Empty"}); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}

	_, err := svc.CreateQuiz("author", &CreateQuizRequest{
		Title: "Half-baked",
		Questions: []CreateQuestionRequest{
			{Title: "No options here"},
		},
	})
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}

	// Authoring is one transaction: nothing may survive a rejected request.
	var count int64
	if err := db.Model(&models.Quiz{}).Count(&count).Error; err != nil {
		t.Fatalf("count quizzes: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no quiz rows after failed authoring, got %d", count)
	}
}
