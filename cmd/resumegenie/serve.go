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
	"github.com/spf13/cobra"

	"resumegenie/backend/internal/handlers"
	"resumegenie/backend/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Start the Fiber API server; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := buildApplication(ctx)
	if err != nil {
		return err
	}

	// Initialize Handlers
	jobHandler := handlers.NewJobHandler(app.jobRepo)
	ingestHandler := handlers.NewIngestHandler(app.pipeline)
	generateHandler := handlers.NewGenerateHandler(app.pipeline, app.appRepo)
	profileHandler := handlers.NewProfileHandler(app.cfg.Pipeline.ProfilePath)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:      "ResumeGenie API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	server.Use(recover.New())
	server.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := server.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/export", jobHandler.HandleExportJobs)
	api.Post("/ingest", ingestHandler.HandleIngest)
	// Job ids embed source URLs, so the id segment may contain slashes.
	api.Post("/generate/*", generateHandler.HandleGenerate)
	api.Get("/packages", generateHandler.HandleListPackages)
	api.Get("/packages/:id", generateHandler.HandleGetPackage)
	api.Get("/profile", profileHandler.HandleGetProfile)
	api.Post("/profile", profileHandler.HandleSaveProfile)

	// Generated resume artifacts
	server.Static("/static", app.cfg.Storage.OutputPath)

	// Root route
	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ResumeGenie API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/export",
				"POST /api/v1/ingest",
				"POST /api/v1/generate/:job_id",
				"GET /api/v1/packages?job_id=",
				"GET /api/v1/packages/:id",
				"GET /api/v1/profile",
				"POST /api/v1/profile",
			},
		})
	})

	// Periodic ingestion
	var sched *scheduler.Scheduler
	if app.cfg.Pipeline.IntervalHours > 0 {
		sched = scheduler.New(app.pipeline, app.cfg.Pipeline.IntervalHours)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		log.Println("✅ Scheduler started successfully")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if sched != nil {
			sched.Stop()
		}
		if err := server.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", app.cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := server.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
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
