package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"hxndev/resume-copilot/internal/config"
	"hxndev/resume-copilot/internal/handlers"
	"hxndev/resume-copilot/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	parserService := services.NewDocumentParserService()
	scraperService := services.NewScraperService(cfg.Scraper.Timeout, cfg.Scraper.UserAgent)

	atsService := services.NewATSService(geminiService)
	analyzerService := services.NewAnalyzerService(geminiService, atsService)
	letterService := services.NewLetterService(geminiService)
	interviewService := services.NewInterviewService(geminiService)
	learningService := services.NewLearningService(geminiService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, scraperService, parserService, cfg.Storage.MaxFileSize)
	atsHandler := handlers.NewATSHandler(atsService, parserService, cfg.Storage.MaxFileSize)
	letterHandler := handlers.NewLetterHandler(letterService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	learningHandler := handlers.NewLearningHandler(learningService)
	scrapeHandler := handlers.NewScrapeHandler(scraperService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Copilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Tag every request so generation failures can be traced through the logs.
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Request-ID", uuid.NewString())
		return c.Next()
	})

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	api.Get("/supported-languages", letterHandler.HandleSupportedLanguages)

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/review-resume", analyzeHandler.HandleReviewResume)
	api.Post("/review-resume-manual", analyzeHandler.HandleReviewResumeManual)

	api.Post("/ats-check", atsHandler.HandleATSCheck)
	api.Post("/optimize-resume", atsHandler.HandleOptimizeResume)

	api.Post("/cover-letter", letterHandler.HandleCoverLetter)
	api.Post("/motivational-letter", letterHandler.HandleMotivationalLetter)
	api.Post("/email-reply", letterHandler.HandleEmailReply)

	api.Post("/interview-questions", interviewHandler.HandleInterviewQuestions)
	api.Post("/evaluate-answers", interviewHandler.HandleEvaluateAnswers)
	api.Post("/company-research", interviewHandler.HandleCompanyResearch)
	api.Post("/interview-prep", interviewHandler.HandleInterviewPrep)

	api.Post("/learning-recommendations", learningHandler.HandleRecommendations)
	api.Post("/learning-plan", learningHandler.HandleLearningPlan)

	api.Post("/scrape-job", scrapeHandler.HandleScrapeJob)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Copilot API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze",
				"POST /api/review-resume",
				"POST /api/ats-check",
				"POST /api/cover-letter",
				"POST /api/interview-questions",
				"POST /api/learning-recommendations",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}
