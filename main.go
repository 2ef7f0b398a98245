package main

import (
	"log"
	"net/http"
	"time"

	"reading-service/internal/config"
	"reading-service/internal/db"
	"reading-service/internal/event"
	"reading-service/internal/handlers"
	"reading-service/internal/narration"
	"reading-service/internal/repository"
	"reading-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, reading events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://evolvia.phrimp.io.vn"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Stories
	storyRepo := repository.NewStoryRepository(database)
	storyService := service.NewStoryService(storyRepo)
	storyHandler := handlers.NewStoryHandler(storyService)

	// Quizzes (authoring + delivery)
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Attempts
	attemptRepo := repository.NewAttemptRepository(database)
	attemptService := service.NewAttemptService(attemptRepo, quizRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Recommendations
	recRepo := repository.NewRecommendationRepository(database)
	recService := service.NewRecommendationService(recRepo)
	recHandler := handlers.NewRecommendationHandler(recService)

	// Narration
	engine := narration.NewEngine(narration.NewNullSynthesizer())
	engine.SetVoiceWait(cfg.VoiceWaitMS)
	narrationHandler := handlers.NewNarrationHandler(engine, storyService)

	// Public routes - Stories
	publicStory := r.Group("/public/reading/story")
	{
		publicStory.GET("/", func(c *gin.Context) {
			storyHandler.ListStories(c)
			if publisher != nil {
				publisher.Publish("story.list", nil)
			}
		})
		publicStory.GET("/:id", func(c *gin.Context) {
			storyHandler.GetStory(c)
			if publisher != nil {
				publisher.Publish("story.get", gin.H{"id": c.Param("id")})
			}
		})
		publicStory.GET("/:id/quiz", func(c *gin.Context) {
			quizHandler.DeliverQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.delivered", gin.H{"story_id": c.Param("id")})
			}
		})
	}

	// Public routes - Attempts (score + feedback lookup)
	publicAttempt := r.Group("/public/reading/attempt")
	{
		publicAttempt.GET("/:id", func(c *gin.Context) {
			attemptHandler.GetAttempt(c)
			if publisher != nil {
				publisher.Publish("attempt.viewed", gin.H{"id": c.Param("id")})
			}
		})
	}

	setupProtectedRoutes(r, quizHandler, attemptHandler, recHandler, narrationHandler, publisher)

	r.Run(":" + cfg.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	quizHandler *handlers.QuizHandler,
	attemptHandler *handlers.AttemptHandler,
	recHandler *handlers.RecommendationHandler,
	narrationHandler *handlers.NarrationHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/reading")

	// Gateway auth: every protected route requires the forwarded user id.
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// === QUIZ SUBMISSION ===
	protected.POST("/story/:id/attempt", func(c *gin.Context) {
		attemptHandler.SubmitAttempt(c)
		if publisher != nil {
			publisher.Publish("reading.attempt.submitted", gin.H{
				"story_id":  c.Param("id"),
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		}
	})

	protected.GET("/attempt/", func(c *gin.Context) {
		attemptHandler.ListAttempts(c)
		if publisher != nil {
			publisher.Publish("reading.attempt.listed", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		}
	})

	// === QUIZ AUTHORING ===
	protectedQuiz := protected.Group("/quiz")
	{
		protectedQuiz.GET("/sample", quizHandler.SampleForm)
		protectedQuiz.GET("/:storyId", quizHandler.GetForm)
		protectedQuiz.PUT("/:storyId", func(c *gin.Context) {
			quizHandler.SaveForm(c)
			if publisher != nil {
				publisher.Publish("reading.quiz.saved", gin.H{
					"story_id":  c.Param("storyId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === RECOMMENDATIONS ===
	protectedRec := protected.Group("/recommendation")
	{
		protectedRec.POST("/", func(c *gin.Context) {
			recHandler.CreateRecommendation(c)
			if publisher != nil {
				publisher.Publish("reading.recommendation.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedRec.GET("/", recHandler.ListRecommendations)
		protectedRec.DELETE("/:id", func(c *gin.Context) {
			recHandler.DeleteRecommendation(c)
			if publisher != nil {
				publisher.Publish("reading.recommendation.deleted", gin.H{
					"id":        c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === NARRATION ===
	protectedNarration := protected.Group("/narration")
	{
		protectedNarration.POST("/", func(c *gin.Context) {
			narrationHandler.StartNarration(c)
			if publisher != nil {
				publisher.Publish("reading.narration.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedNarration.POST("/:id/pause", func(c *gin.Context) {
			narrationHandler.PauseNarration(c)
			if publisher != nil {
				publisher.Publish("reading.narration.paused", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedNarration.POST("/:id/resume", func(c *gin.Context) {
			narrationHandler.ResumeNarration(c)
			if publisher != nil {
				publisher.Publish("reading.narration.resumed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedNarration.POST("/:id/stop", func(c *gin.Context) {
			narrationHandler.StopNarration(c)
			if publisher != nil {
				publisher.Publish("reading.narration.stopped", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedNarration.GET("/:id/status", narrationHandler.NarrationStatus)
	}
}
