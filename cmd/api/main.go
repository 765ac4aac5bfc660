package main

import (
	"context"
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

	"github.com/Kanishak333/PBL--HireEdge/internal/config"
	"github.com/Kanishak333/PBL--HireEdge/internal/handlers"
	"github.com/Kanishak333/PBL--HireEdge/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize the optional backup store + dispatcher
	var dispatcher *services.BackupDispatcher
	switch {
	case cfg.Backup.S3Bucket != "":
		store, err := services.NewS3Store(ctx, cfg.Backup)
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 backup store: %v", err)
		}
		dispatcher = services.NewBackupDispatcher(store, cfg.Backup.Concurrency, cfg.Backup.QueueSize, cfg.Backup.Timeout)
		log.Printf("✅ S3 backup store initialized (bucket %q)\n", cfg.Backup.S3Bucket)
	case cfg.Backup.LocalDir != "":
		store, err := services.NewLocalStore(cfg.Backup.LocalDir)
		if err != nil {
			log.Fatalf("❌ Failed to initialize local backup store: %v", err)
		}
		dispatcher = services.NewBackupDispatcher(store, cfg.Backup.Concurrency, cfg.Backup.QueueSize, cfg.Backup.Timeout)
		log.Printf("✅ Local backup store initialized (%s)\n", cfg.Backup.LocalDir)
	default:
		log.Println("ℹ️  No backup store configured, raw uploads will not be kept")
	}

	if dispatcher != nil {
		dispatcher.Start()
	}

	// Initialize the pipeline. A missing credential is surfaced per
	// request as a configuration error rather than refusing to boot.
	var analyzer services.AnalyzerService
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, analysis requests will fail")
	} else {
		invoker, err := services.NewGeminiInvoker(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini: %v", err)
		}
		invoker = services.NewRetryInvoker(invoker, cfg.Gemini.RetryMaxAttempts)
		log.Println("✅ Gemini AI initialized successfully")

		analyzer = services.NewAnalyzerService(
			services.NewPDFExtractor(),
			services.NewPromptBuilder(cfg.Analysis.PromptCharLimit, cfg.Analysis.TargetRole),
			invoker,
			services.NewResponseParser(cfg.Analysis.StrictRecords),
			dispatcher,
		)
		log.Println("✅ Analyzer service initialized")
	}

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Analysis.MaxFileSize, cfg.Gemini.Timeout)
	leaderboardHandler := handlers.NewLeaderboardHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HireEdge Resume Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Analysis.MaxFileSize) + 1024*1024,
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
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/leaderboard", leaderboardHandler.HandleLeaderboard)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HireEdge Resume Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze",
				"POST /api/leaderboard",
				"GET /api/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if dispatcher != nil {
			dispatcher.Stop()
		}
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
		"error": err.Error(),
		"code":  code,
	})
}
