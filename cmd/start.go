package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lab-inventory/core/config"
	"lab-inventory/core/database"
	"lab-inventory/core/loader"
	"lab-inventory/core/logger"
	"lab-inventory/core/middleware/auth"
	"lab-inventory/core/middleware/rayid"
	"lab-inventory/core/storage"

	"lab-inventory/feature/catalog"
	"lab-inventory/feature/checkout"
	"lab-inventory/feature/ledger"
	"lab-inventory/feature/upload"

	catalogmodels "lab-inventory/feature/catalog/models"
	ledgermodels "lab-inventory/feature/ledger/models"
	uploadmodels "lab-inventory/feature/upload/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "lab-inventory/docs/swagger"
)

// @title Lab Inventory API
// @version 1.0
// @description API for tracking lab materials, checkouts and bulk imports.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the lab inventory server",
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

		// 3. Connect to Database. The catalog and ledger cannot run
		// without it, so a failure here is fatal.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(
			&catalogmodels.Material{},
			&ledgermodels.Transaction{},
			&uploadmodels.User{},
		); err != nil {
			logg.Fatal("Failed to migrate database schema", zap.Error(err))
		}
		logg.Info("Connected to inventory database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize report archive storage (optional).
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err == nil {
				err = storage.EnsureBucket(context.Background(), store, cfg.Storage)
			}
			if err != nil {
				logg.Warn("Report archive storage unavailable", zap.Error(err))
				store = nil
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Register Features
		mgr := loader.NewManager(logg)

		catalogFeature := catalog.NewFeature(db, logg)
		ledgerFeature := ledger.NewFeature(db, logg, cfg.Server.TransactionLimit)

		mgr.Register(catalogFeature)
		mgr.Register(ledgerFeature)
		mgr.Register(checkout.NewFeature(db, catalogFeature.Service().Store(), ledgerFeature.Service().Store(), logg))
		mgr.Register(upload.NewFeature(db, catalogFeature.Service().Store(), store, cfg.Storage, logg))

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
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

		// Public endpoints: health and API docs.
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Everything else requires the API key.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
