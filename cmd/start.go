package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"match-sync/core/config"
	"match-sync/core/database"
	"match-sync/core/loader"
	"match-sync/core/logger"
	"match-sync/core/middleware/auth"
	"match-sync/core/middleware/rayid"
	"match-sync/core/storage"
	"match-sync/feature/matches"
	"match-sync/feature/sync"
	"match-sync/feature/sync/feed"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// matchColumns are the columns the engine conditionally writes; verified at
// startup so a schema drift surfaces before the first pass.
var matchColumns = []string{"id", "home_team_id", "away_team_id", "match_date", "stage", "home_score", "away_score", "status"}

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync service server",
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
		// The database is the system of record the engine reconciles into;
		// without it there is nothing to serve.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to contest database", zap.String("name", cfg.Database.Name))

		if missing, err := database.VerifyColumns(db, "matches", matchColumns); err != nil {
			logg.Warn("Could not verify matches schema", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Warn("Matches table is missing expected columns", zap.Strings("columns", missing))
		}

		// 4. Initialize Snapshot Archive (Optional)
		var archive storage.Client
		if cfg.Storage.Enabled {
			archive, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			logg.Info("Feed snapshot archival enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(sync.NewFeature(feed.NewClient(cfg.Feed), db, archive, cfg.Storage.Bucket, cfg.Feed, logg))
		mgr.Register(matches.NewFeature(db, logg))

		// Middleware Registration
		// RayID first so everything downstream is traceable.
		app.Use(rayid.New())

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
