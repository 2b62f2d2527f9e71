package services

import (
	"fmt"
	"testing"

	"quizbox/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database with the full schema,
// including the unique indexes the services rely on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
		&models.UserAnswer{},
		&models.Stats{},
		&models.Article{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

// seedQuiz inserts a quiz with two questions of two answers each; the first
// answer of every question is the correct one.
func seedQuiz(t *testing.T, db *gorm.DB) *models.Quiz {
	t.Helper()

	quiz := &models.Quiz{Title: "Capitals"}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	for i := 1; i <= 2; i++ {
		question := models.Question{
			QuizID: quiz.ID,
			Title:  fmt.Sprintf("Question %d", i),
		}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}

		answers := []models.Answer{
			{
				QuestionID: question.ID,
				Title:      fmt.Sprintf("Right %d", i),
				AfterTitle: strPtr(fmt.Sprintf("Well done %d", i)),
				IsCorrect:  boolPtr(true),
			},
			{
				QuestionID: question.ID,
				Title:      fmt.Sprintf("Wrong %d", i),
				AfterTitle: strPtr(fmt.Sprintf("Not quite %d", i)),
				IsCorrect:  boolPtr(false),
			},
		}
		if err := db.Create(&answers).Error; err != nil {
			t.Fatalf("seed answers: %v", err)
		}
	}

	err := db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.id") }).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id") }).
		First(quiz, quiz.ID).Error
	if err != nil {
		t.Fatalf("reload quiz: %v", err)
	}
	return quiz
}
