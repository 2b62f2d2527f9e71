package handlers

import (
	"errors"
	"net/http"

	"quizbox/services"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrAnswerNotFound),
		errors.Is(err, services.ErrArticleNotFound),
		errors.Is(err, services.ErrStatsNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyAnswered),
		errors.Is(err, services.ErrStatsExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNoQuestions),
		errors.Is(err, services.ErrNoAnswers),
		errors.Is(err, services.ErrUploadFailed):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func userID(c *gin.Context) string {
	return c.GetString("user_id")
}
