package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/database"
	"github.com/vershina/sportclub/internal/handlers"
	"github.com/vershina/sportclub/internal/routes"
	"github.com/vershina/sportclub/pkg/utils"
	"github.com/vershina/sportclub/web"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := utils.NewLogger(cfg.AppEnv)
	defer zapLogger.Sync()

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		zapLogger.Fatal("DATABASE_URL is required")
	}
	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DBUrl); err != nil {
			zapLogger.Error("auto migration failed", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DBUrl, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// 3. Setup Fiber
	views, err := web.NewViews(web.Site{
		WhatsAppPhone: cfg.WhatsAppPhone,
		WhatsAppText:  cfg.WhatsAppText,
	})
	if err != nil {
		zapLogger.Fatal("failed to load views", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "sportclub",
		Views:        views,
		ErrorHandler: handlers.ErrorHandler(zapLogger),
		BodyLimit:    16 * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Routes
	if err := routes.RegisterRoutes(app, cfg, pool, zapLogger); err != nil {
		zapLogger.Fatal("failed to register routes", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zapLogger.Warn("shutdown", zap.Error(err))
		}
	}()

	// 4. Start Server
	zapLogger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.String("storage", string(cfg.Storage)),
		zap.Bool("serverless", cfg.Serverless),
		zap.Bool("admin_enabled", cfg.AdminEnabled()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server failed to start", zap.Error(err))
	}
}
