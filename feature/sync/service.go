package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"match-sync/core/storage"
	"match-sync/feature/sync/feed"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrMissingApiKey is the configuration-fatal failure: no feed credential.
var ErrMissingApiKey = errors.New("feed API key not configured")

// FeedClient is the upstream collaborator contract consumed by the service.
type FeedClient interface {
	Matches(ctx context.Context, q feed.Query) ([]feed.Match, error)
}

// Options are the per-invocation pass parameters.
type Options struct {
	// Competition overrides the configured competition code.
	Competition string
	// DryRun computes all decisions but performs no writes.
	DryRun bool
	// DaysBack widens the fetch window into the past (default 0: today only).
	DaysBack int
	// SyncKnockoutTeams selects the knockout-resolution pass instead of the
	// result-sync pass.
	SyncKnockoutTeams bool
}

// Service runs sync passes. Each pass is a short-lived request/response
// invocation; the service keeps no state between passes beyond its injected
// dependencies.
type Service struct {
	feed    FeedClient
	store   *Store
	archive storage.Client
	bucket  string
	cfg     feed.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a sync service. archive may be nil to disable feed
// snapshot archival.
func NewService(feedClient FeedClient, store *Store, archive storage.Client, bucket string, cfg feed.Config, logger *zap.Logger) *Service {
	return &Service{
		feed:    feedClient,
		store:   store,
		archive: archive,
		bucket:  bucket,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Sync executes one reconciliation pass and returns its report. Only an
// upstream or configuration failure is returned as an error; per-record
// failures land in the report.
func (s *Service) Sync(ctx context.Context, opts Options) (*Report, error) {
	if s.cfg.ApiKey == "" {
		return nil, ErrMissingApiKey
	}

	competition := opts.Competition
	if competition == "" {
		competition = s.cfg.Competition
	}
	if competition == "" {
		competition = feed.DefaultCompetition
	}

	mode := ModeProduction
	if opts.DryRun {
		mode = ModeDryRun
	}

	if opts.SyncKnockoutTeams {
		return s.syncKnockoutTeams(ctx, competition, mode, opts.DryRun)
	}
	return s.syncResults(ctx, competition, mode, opts)
}

// syncResults pulls live and recently finished matches and reconciles their
// status and scores into the store.
func (s *Service) syncResults(ctx context.Context, competition, mode string, opts Options) (*Report, error) {
	daysBack := opts.DaysBack
	if daysBack < 0 {
		daysBack = 0
	}

	today := s.now().UTC()
	query := feed.Query{
		Competition: competition,
		Statuses:    []string{feed.StatusInPlay, feed.StatusPaused, feed.StatusFinished},
		DateFrom:    today.AddDate(0, 0, -daysBack).Format("2006-01-02"),
		DateTo:      today.AddDate(0, 0, 1).Format("2006-01-02"),
	}

	matches, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Starting result sync",
		zap.String("competition", competition),
		zap.String("mode", mode),
		zap.Int("feed_matches", len(matches)),
	)

	report := NewReport(mode, TypeResultSync, competition)
	runner := NewRunner(s.store, s.store, s.logger)
	runner.RunResults(ctx, matches, opts.DryRun, report)

	return report, nil
}

// syncKnockoutTeams pulls all knockout-stage fixtures and substitutes
// placeholder participants that have become known.
func (s *Service) syncKnockoutTeams(ctx context.Context, competition, mode string, dryRun bool) (*Report, error) {
	query := feed.Query{
		Competition: competition,
		Stages:      feed.KnockoutStages,
	}

	matches, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Starting knockout teams sync",
		zap.String("competition", competition),
		zap.String("mode", mode),
		zap.Int("feed_matches", len(matches)),
	)

	report := NewReport(mode, TypeKnockoutSync, competition)
	runner := NewRunner(s.store, s.store, s.logger)
	runner.RunKnockout(ctx, matches, dryRun, report)

	return report, nil
}

// Test fetches a data-rich competition and returns the formatted feed records
// without touching the store. Used to inspect the upstream pipeline.
func (s *Service) Test(ctx context.Context, competition string) (*TestReport, error) {
	if s.cfg.ApiKey == "" {
		return nil, ErrMissingApiKey
	}
	if competition == "" {
		competition = feed.TestCompetition
	}

	today := s.now().UTC()
	matches, err := s.fetch(ctx, feed.Query{
		Competition: competition,
		Statuses:    []string{feed.StatusInPlay, feed.StatusPaused, feed.StatusFinished},
		DateFrom:    today.Format("2006-01-02"),
		DateTo:      today.AddDate(0, 0, 1).Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	formatted := make([]TestMatch, 0, len(matches))
	for _, m := range matches {
		score := "N/A"
		if m.Score.FullTime.Home != nil {
			score = formatScore(m.Score.FullTime.Home, m.Score.FullTime.Away)
		}
		formatted = append(formatted, TestMatch{
			Date:         m.UTCDate.Format(time.RFC3339),
			HomeTeam:     m.HomeTeam.Name,
			AwayTeam:     m.AwayTeam.Name,
			Status:       m.Status,
			Score:        score,
			MappedStatus: MapStatus(m.Status),
		})
	}

	return &TestReport{
		Mode:        ModeTest,
		Competition: competition,
		Message:     "Test mode - showing feed response without updating database",
		MatchCount:  len(matches),
		Matches:     formatted,
	}, nil
}

// fetch pulls matches from the feed and, when archival is enabled, uploads
// the payload as a snapshot. Archival failure never fails the pass.
func (s *Service) fetch(ctx context.Context, query feed.Query) ([]feed.Match, error) {
	matches, err := s.feed.Matches(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archiveSnapshot(ctx, query.Competition, matches); err != nil {
			s.logger.Warn("Feed snapshot archival failed", zap.Error(err))
		}
	}

	return matches, nil
}

func (s *Service) archiveSnapshot(ctx context.Context, competition string, matches []feed.Match) error {
	payload, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	exists, err := s.archive.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check snapshot bucket: %w", err)
	}
	if !exists {
		if err := s.archive.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create snapshot bucket: %w", err)
		}
	}

	name := fmt.Sprintf("snapshots/%s/%s.json", competition, s.now().UTC().Format("20060102T150405Z"))
	_, err = s.archive.PutObject(ctx, s.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return nil
}

// Snapshots lists the archived snapshot object names for a competition.
func (s *Service) Snapshots(ctx context.Context, competition string) ([]string, error) {
	if s.archive == nil {
		return nil, errors.New("snapshot archival is not enabled")
	}

	prefix := "snapshots/"
	if competition != "" {
		prefix += competition + "/"
	}

	var names []string
	for obj := range s.archive.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}
