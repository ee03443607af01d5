package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/andrei65t/EduPro/internal/config"
	"github.com/andrei65t/EduPro/internal/handlers"
	"github.com/andrei65t/EduPro/internal/middleware"
	"github.com/andrei65t/EduPro/internal/ocr"
	"github.com/andrei65t/EduPro/internal/services"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(60))

	router.Static("/uploads", "./uploads")

	ocrClient := ocr.NewClient(cfg.OCR)

	noteService := services.NewNoteService(db)
	categoryService := services.NewCategoryService(db)
	quizService := services.NewQuizService(cfg.Quiz.TokenSecret)
	accountService := services.NewAccountService(services.StaticProfileProvider{}, cfg.File.AvatarPath)
	courseCatalog := services.NewCourseCatalog()

	noteHandler := handlers.NewNoteHandler(noteService, categoryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	uploadHandler := handlers.NewUploadHandler(noteService, ocrClient, cfg.File.MaxUploadSize)
	askHandler := handlers.NewAskHandler(noteService, ocrClient)
	grammarHandler := handlers.NewGrammarHandler(noteService, ocrClient)
	quizHandler := handlers.NewQuizHandler(noteService, quizService, ocrClient)
	accountHandler := handlers.NewAccountHandler(accountService)
	courseHandler := handlers.NewCourseHandler(courseCatalog)

	api := router.Group("/api")
	{
		api.GET("/stats", noteHandler.GetStats)

		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.GetNotes)
			notes.POST("/upload", uploadHandler.Upload)

			notes.GET("/:id", noteHandler.GetNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
			notes.PUT("/:id/category", noteHandler.ChangeCategory)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.POST("/move", categoryHandler.MoveCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		api.POST("/ask", askHandler.Ask)
		api.POST("/grammar-check", grammarHandler.Check)

		quiz := api.Group("/quiz")
		{
			quiz.GET("/notes", quizHandler.Notes)
			quiz.POST("/generate", quizHandler.Generate)
			quiz.POST("/submit", quizHandler.Submit)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.GetCourses)
			courses.GET("/:slug", courseHandler.GetCourse)
		}

		account := api.Group("/account")
		{
			account.GET("", accountHandler.GetProfile)
			account.POST("", accountHandler.UpdateProfile)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "service running",
		})
	})

	return router
}
