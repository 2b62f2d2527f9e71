package services

import "errors"

var (
	// ErrQuizNotFound is returned when a quiz id does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrAnswerNotFound is returned when a submitted answer id does not exist.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrArticleNotFound covers both missing and unpublished articles.
	ErrArticleNotFound = errors.New("article not found")
	// ErrStatsNotFound means the user has not completed the quiz yet.
	ErrStatsNotFound = errors.New("stats not found")
	// ErrAlreadyAnswered means the user already answered this question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrStatsExists means a score snapshot for (user, quiz) already exists.
	ErrStatsExists = errors.New("stats already recorded")
	// ErrNoQuestions rejects quiz authoring without questions.
	ErrNoQuestions = errors.New("quiz must have at least one question")
	// ErrNoAnswers rejects a question authored without answers.
	ErrNoAnswers = errors.New("question must have at least one answer")
	// ErrUploadFailed means the object store rejected a media upload.
	ErrUploadFailed = errors.New("media upload failed")
)
