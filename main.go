package main

import (
	"log"
	"time"

	"quizbox/config"
	"quizbox/handlers"
	"quizbox/models"
	"quizbox/routes"
	"quizbox/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
		&models.UserAnswer{},
		&models.Stats{},
		&models.Article{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis-backed quiz content cache (optional)
	redisClient := config.InitRedis(cfg)
	quizCache := services.NewQuizCache(redisClient, 10*time.Minute)

	// Initialize object storage (optional)
	objectClient, err := config.InitObjectStore(cfg)
	if err != nil {
		log.Fatal("Failed to connect to object store:", err)
	}
	var blobStore services.BlobStore
	if objectClient != nil {
		blobStore = services.NewMinioStore(objectClient, cfg.S3Bucket, cfg.S3Endpoint)
	}

	// Initialize websocket hub
	hub := services.NewHub()

	// Initialize services
	quizService := services.NewQuizService(db, quizCache)
	answerService := services.NewAnswerService(db, quizService, hub)
	statsService := services.NewStatsService(db, quizService)
	articleService := services.NewArticleService(db)
	mediaService := services.NewMediaService(blobStore)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	articleHandler := handlers.NewArticleHandler(articleService)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Setup routes
	routes.SetupRoutes(router, quizHandler, answerHandler, statsHandler, articleHandler, mediaHandler, hub)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
