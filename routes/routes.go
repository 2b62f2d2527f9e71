package routes

import (
	"log"
	"net/http"
	"strconv"

	"quizbox/handlers"
	"quizbox/middleware"
	"quizbox/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	answerHandler *handlers.AnswerHandler,
	statsHandler *handlers.StatsHandler,
	articleHandler *handlers.ArticleHandler,
	mediaHandler *handlers.MediaHandler,
	hub *services.Hub,
) {
	// Quiz and stats routes require a caller identity.
	identified := router.Group("/")
	identified.Use(middleware.Identify())
	{
		identified.GET("/quiz", quizHandler.GetQuizzes)
		identified.GET("/quiz/:id", quizHandler.GetQuizByID)
		identified.POST("/quiz", quizHandler.CreateQuiz)
		identified.GET("/quiz/:id/stats", statsHandler.GetQuizStats)
		identified.POST("/answer/:id", answerHandler.SubmitAnswer)
	}

	// Article and media routes are public.
	router.GET("/article", articleHandler.GetArticles)
	router.GET("/article/:id", articleHandler.GetArticleByID)
	router.POST("/article", articleHandler.CreateArticle)
	router.POST("/media", mediaHandler.UploadMedia)

	// WebSocket feed of answer-submission events for a quiz.
	router.GET("/ws/quiz/:id", func(c *gin.Context) {
		quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for quiz %d: %v", quizID, err)
			return
		}

		hub.RegisterClient(conn, uint(quizID))
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
