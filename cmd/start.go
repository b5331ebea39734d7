package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NovaUNL/Supernova-sub001/core/config"
	"github.com/NovaUNL/Supernova-sub001/core/database"
	"github.com/NovaUNL/Supernova-sub001/core/loader"
	"github.com/NovaUNL/Supernova-sub001/core/logger"
	"github.com/NovaUNL/Supernova-sub001/core/middleware/auth"
	"github.com/NovaUNL/Supernova-sub001/core/middleware/rayid"
	"github.com/NovaUNL/Supernova-sub001/core/storage"

	"github.com/NovaUNL/Supernova-sub001/feature/college"
	collegemodels "github.com/NovaUNL/Supernova-sub001/feature/college/models"
	"github.com/NovaUNL/Supernova-sub001/feature/synopses"
	synopsismodels "github.com/NovaUNL/Supernova-sub001/feature/synopses/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/NovaUNL/Supernova-sub001/docs/swagger"
)

// @title Supernova Ordering API
// @version 1.0
// @description Ordered parent/child relations and section documents for the Supernova portal.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ordering server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		// Unlike the documents, the orderings have no fallback source; the
		// server cannot run without its database.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := synopsismodels.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate synopses tables", zap.Error(err))
		}
		if err := collegemodels.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate college tables", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(synopses.NewFeature(store, cfg.Storage.Bucket, logg, db, cfg.Server.CacheTTL()))
		mgr.Register(college.NewFeature(logg, db, cfg.Server.CacheTTL()))

		// Middleware Registration
		// RayID must be first so every log line carries the request id.
		app.Use(rayid.New())

		// Request logging (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
