package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"learning-service/internal/bookmark"
	"learning-service/internal/catalog"
	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/progress"
	"learning-service/internal/repository"
	"learning-service/internal/seed"
	"learning-service/internal/service"
)

func main() {
	config.Load()
	if config.AppConfig.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(config.AppConfig.MongoURI)

	// RabbitMQ event publisher. Optional: a nil publisher drops events.
	var publisher *event.Publisher
	if config.AppConfig.RabbitURI != "" && config.AppConfig.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(config.AppConfig.RabbitURI, config.AppConfig.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(config.AppConfig.MongoDB)

	subjectRepo := repository.NewSubjectRepository(database)
	unitRepo := repository.NewUnitRepository(database)
	topicRepo := repository.NewTopicRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	userRepo := repository.NewUserRepository(database)
	resultRepo := repository.NewResultRepository(database)

	cat := catalog.New(subjectRepo, unitRepo, topicRepo, quizRepo)
	tracker := progress.NewTracker(cat, userRepo)
	bookmarks := bookmark.NewStore(cat, userRepo)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	resultService := service.NewResultService(resultRepo)
	attemptService := service.NewAttemptService(cat, resultRepo, tracker, publisher)
	seeder := seed.NewSeeder(subjectRepo, unitRepo, topicRepo, quizRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(cat)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	progressHandler := handlers.NewProgressHandler(tracker, cat, userService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarks)
	userHandler := handlers.NewUserHandler(userService)
	resultHandler := handlers.NewResultHandler(resultService)
	adminHandler := handlers.NewAdminHandler(seeder)

	// Public routes - auth and catalog browsing
	publicAuth := r.Group("/public/learning/auth")
	{
		publicAuth.POST("/signup", func(c *gin.Context) {
			authHandler.Signup(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("learning.user.signup", nil)
			}
		})
		publicAuth.POST("/login", authHandler.Login)
	}

	publicCatalog := r.Group("/public/learning")
	{
		publicCatalog.GET("/subjects", func(c *gin.Context) {
			catalogHandler.ListSubjects(c)
			if publisher != nil {
				publisher.Publish("learning.subject.list", nil)
			}
		})
		publicCatalog.GET("/subjects/:id", func(c *gin.Context) {
			catalogHandler.GetSubject(c)
			if publisher != nil {
				publisher.Publish("learning.subject.get", gin.H{"id": c.Param("id")})
			}
		})
		publicCatalog.GET("/units/:id", catalogHandler.GetUnit)
		publicCatalog.GET("/units/:id/quiz", catalogHandler.GetUnitQuiz)
		publicCatalog.GET("/topics/:id", catalogHandler.GetTopic)
	}

	setupProtectedRoutes(r, attemptHandler, progressHandler, bookmarkHandler, userHandler, resultHandler, adminHandler)

	r.Run(":" + config.AppConfig.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	attemptHandler *handlers.AttemptHandler,
	progressHandler *handlers.ProgressHandler,
	bookmarkHandler *handlers.BookmarkHandler,
	userHandler *handlers.UserHandler,
	resultHandler *handlers.ResultHandler,
	adminHandler *handlers.AdminHandler,
) {
	protected := r.Group("/protected/learning")
	protected.Use(handlers.AuthRequired())

	// Quiz attempts
	attempts := protected.Group("/attempts")
	{
		attempts.POST("/", attemptHandler.Start)
		attempts.POST("/:id/answer", attemptHandler.SelectAnswer)
		attempts.POST("/:id/next", attemptHandler.Advance)
		attempts.POST("/:id/previous", attemptHandler.Retreat)
		attempts.POST("/:id/submit", attemptHandler.Submit)
		attempts.DELETE("/:id", attemptHandler.Abandon)
		attempts.GET("/:id/status", attemptHandler.Status)
		attempts.GET("/:id/review", attemptHandler.Review)
		attempts.GET("/:id/review/:questionId", attemptHandler.ReviewQuestion)
	}

	// Topic progress
	progressRoutes := protected.Group("/progress")
	{
		progressRoutes.POST("/topics/:id/complete", progressHandler.MarkTopicComplete)
		progressRoutes.DELETE("/topics/:id/complete", progressHandler.UnmarkTopicComplete)
		progressRoutes.GET("/subjects/:id", progressHandler.GetSubjectProgress)
		progressRoutes.GET("/units/:id", progressHandler.GetUnitProgress)
		progressRoutes.GET("/", progressHandler.GetAllProgress)
	}

	// Bookmarks
	bookmarks := protected.Group("/bookmarks")
	{
		bookmarks.POST("/topics/:id", bookmarkHandler.Toggle)
		bookmarks.DELETE("/topics/:id", bookmarkHandler.Remove)
		bookmarks.GET("/topics/:id", bookmarkHandler.Check)
		bookmarks.GET("/", bookmarkHandler.List)
	}

	// Profile and results
	protected.GET("/me", userHandler.Me)
	protected.PUT("/me/theme", userHandler.UpdateTheme)
	protected.GET("/me/results", resultHandler.MyResults)

	// Admin
	admin := protected.Group("/admin")
	admin.Use(handlers.AdminRequired())
	{
		admin.POST("/seed", adminHandler.Seed)
		admin.POST("/users", adminHandler.CreateAdmin)
	}
}
