package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"match-sync/core/config"
	"match-sync/core/database"
	"match-sync/core/logger"
	"match-sync/core/storage"
	"match-sync/feature/sync"
	"match-sync/feature/sync/feed"

	"github.com/spf13/cobra"
)

var (
	syncDryRun      bool
	syncKnockout    bool
	syncTestMode    bool
	syncCompetition string
	syncDaysBack    int
)

// syncCmd runs a single reconciliation pass from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass against the feed",
	Long: `Runs a single reconciliation pass and prints the report as JSON.

Examples:
  # Sync live/finished results for the configured competition
  match-sync sync

  # Show what a results pass would change, without writing
  match-sync sync --dry-run

  # Resolve knockout placeholder teams
  match-sync sync --knockout

  # Inspect the feed pipeline against a data-rich competition
  match-sync sync --test`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute decisions without writing")
	syncCmd.Flags().BoolVar(&syncKnockout, "knockout", false, "Run the knockout teams pass instead of results")
	syncCmd.Flags().BoolVar(&syncTestMode, "test", false, "Test mode: show feed data without touching the database")
	syncCmd.Flags().StringVar(&syncCompetition, "competition", "", "Competition code override")
	syncCmd.Flags().IntVar(&syncDaysBack, "days-back", 0, "Widen the fetch window this many days into the past")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	feedClient := feed.NewClient(cfg.Feed)

	// Test mode never touches the database, so skip connecting.
	if syncTestMode {
		svc := sync.NewService(feedClient, nil, nil, "", cfg.Feed, logg)
		report, err := svc.Test(ctx, syncCompetition)
		if err != nil {
			return err
		}
		return printJSON(cmd, report)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var archive storage.Client
	if cfg.Storage.Enabled {
		archive, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	svc := sync.NewService(feedClient, sync.NewStore(db), archive, cfg.Storage.Bucket, cfg.Feed, logg)
	report, err := svc.Sync(ctx, sync.Options{
		Competition:       syncCompetition,
		DryRun:            syncDryRun,
		DaysBack:          syncDaysBack,
		SyncKnockoutTeams: syncKnockout,
	})
	if err != nil {
		return err
	}

	return printJSON(cmd, report)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
