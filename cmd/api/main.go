package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/config"
	"alfredoptarigan/job-posting-classifier/internal/handlers"
	applog "alfredoptarigan/job-posting-classifier/internal/logger"
	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/repositories"
	"alfredoptarigan/job-posting-classifier/internal/services"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := applog.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()
	log.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	// Initialize record storage
	store, err := initRecordStore(cfg, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize record store", zap.Error(err))
	}
	writer := services.NewRecordWriter(
		store,
		[]models.Destination{models.DestinationRegistrations, models.DestinationFeedback},
		cfg.Writer.QueueSize,
		log,
	)
	writer.Start()
	log.Info("✅ Record store initialized", zap.String("driver", cfg.Storage.Driver))

	// Initialize sessions
	ctx := context.Background()
	sessions, rdb, err := initSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Failed to initialize session store", zap.Error(err))
	}
	log.Info("✅ Session store initialized", zap.String("driver", cfg.Session.Driver))

	// Initialize services
	var fetcher services.ResourceFetcher
	if cfg.Fetch.Enabled {
		fetcher = services.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxBytes, log)
		log.Info("✅ Posting link fetcher enabled")
	}

	verifier := services.NewStaticCredentialVerifier(cfg.Auth.Username, cfg.Auth.Password)
	accountService := services.NewAccountService(verifier, writer, log)
	feedbackService := services.NewFeedbackService(writer, log)
	log.Info("✅ Services initialized successfully")

	// Initialize Handlers
	classifierHandler := handlers.NewClassifierHandler(fetcher, log)
	pages := handlers.NewPageTable(
		handlers.NewLoginHandler(accountService),
		classifierHandler,
		handlers.NewFeedbackHandler(feedbackService),
		handlers.NewRegisterHandler(accountService),
	)
	dispatcher := handlers.NewDispatcher(sessions, pages, log)
	log.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Posting Classifier API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + handlers.HeaderSessionID,
		ExposeHeaders: handlers.HeaderSessionID,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	handlers.RegisterRoutes(api, dispatcher, classifierHandler)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Posting Classifier API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/questionnaire",
				"POST /api/v1/classify",
				"POST /api/v1/pages/:page",
				"GET /api/v1/session",
				"DELETE /api/v1/session",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Error("❌ Failed to start server", zap.Error(err))
	}

	writer.Stop()
	if rdb != nil {
		rdb.Close()
	}
}

func initRecordStore(cfg *config.Config, log *zap.Logger) (services.RecordStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverCSV:
		store := services.NewCSVRecordStore(cfg.Storage.DataPath, map[models.Destination]string{
			models.DestinationRegistrations: cfg.Storage.RegistrationsFile,
			models.DestinationFeedback:      cfg.Storage.FeedbackFile,
		})
		if err := store.EnsureDataDir(); err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageDriverPostgres:
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		return services.NewDatabaseRecordStore(repositories.NewRecordRepository(db)), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func initSessionStore(ctx context.Context, cfg *config.Config) (session.Store, *redis.Client, error) {
	switch cfg.Session.Driver {
	case config.SessionDriverMemory:
		return session.NewMemoryStore(cfg.Session.TTL), nil, nil
	case config.SessionDriverRedis:
		rdb, err := config.InitRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(rdb, cfg.Session.TTL), rdb, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}
