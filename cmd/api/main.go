package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/auth"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/database"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/handlers"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/middleware"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/services"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/logger"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Deployed environments configure through real env vars.
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := database.InitDB()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database instance", zap.Error(err))
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := services.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	if err := services.InitStorage(); err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	authService := auth.NewService(
		auth.NewOTPStore(db),
		auth.NewIdentityProvider(db),
		auth.NewSessionIssuer(services.RedisClient),
		utils.NewSMSClient(),
		services.NewOTPRateLimiter(services.RedisClient),
	)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	r.Static("/uploads", "/app/uploads")

	api := r.Group("/api")
	{
		// Public routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/send-otp", handlers.SendOTP(authService))
			authRoutes.POST("/verify-otp", handlers.VerifyOTP(authService))
			authRoutes.POST("/login", handlers.Login(authService))
			authRoutes.POST("/refresh", handlers.RefreshSession(authService))
		}

		// Public quiz content
		api.GET("/classes", handlers.GetClasses(db))
		api.GET("/classes/:id/subjects", handlers.GetSubjects(db))
		api.GET("/subjects/:id/chapters", handlers.GetChapters(db))
		api.GET("/chapters/:id/questions", handlers.GetQuestions(db))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
			}

			// Content management
			admin := protected.Group("/")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/classes", handlers.CreateClass(db))
				admin.PUT("/classes/:id", handlers.UpdateClass(db))
				admin.DELETE("/classes/:id", handlers.DeleteClass(db))
				admin.POST("/subjects", handlers.CreateSubject(db))
				admin.PUT("/subjects/:id", handlers.UpdateSubject(db))
				admin.DELETE("/subjects/:id", handlers.DeleteSubject(db))
				admin.POST("/chapters", handlers.CreateChapter(db))
				admin.PUT("/chapters/:id", handlers.UpdateChapter(db))
				admin.DELETE("/chapters/:id", handlers.DeleteChapter(db))
				admin.POST("/chapters/:id/material", handlers.UploadChapterMaterial(db))
				admin.POST("/questions", handlers.CreateQuestion(db))
				admin.PUT("/questions/:id", handlers.UpdateQuestion(db))
				admin.DELETE("/questions/:id", handlers.DeleteQuestion(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
